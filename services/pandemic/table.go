package pandemic

import (
	"fmt"

	"covidcrawl/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Signature identifies one table among many on a page by the exact
// value of its class attribute.
type Signature struct {
	Class string
}

var CasesTableSignature = Signature{Class: "wikitable plainrowheaders sortable"}
var PopulationTableSignature = Signature{Class: "wikitable sortable"}

// Row is one <tr> of a located table. Header cells and data cells are
// kept apart because the cases table carries the country name in a
// <th> while the population table uses plain <td> cells.
type Row struct {
	Header  []string
	Data    []string
	Anchors []htmlutil.Anchor
}

// ExtractTable locates the table matching sig and yields its rows.
// It never touches the network, so page layout changes can be
// reproduced with fixture documents.
func ExtractTable(doc *goquery.Document, sig Signature) ([]Row, error) {
	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		if t.AttrOr("class", "") == sig.Class {
			table = t
			return false
		}
		return true
	})
	if table == nil {
		return nil, fmt.Errorf("%w: class=%q", ErrTableNotFound, sig.Class)
	}

	var rows []Row
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := Row{Anchors: htmlutil.GetAnchors(tr)}
		for _, n := range tr.Find("th").Nodes {
			row.Header = append(row.Header, htmlutil.CellText(n))
		}
		for _, n := range tr.Find("td").Nodes {
			row.Data = append(row.Data, htmlutil.CellText(n))
		}
		rows = append(rows, row)
	})
	return rows, nil
}
