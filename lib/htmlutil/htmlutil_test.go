package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCellText(t *testing.T) {
	doc := parseFragment(t, `<table><tbody><tr>
		<td>  <a href="/wiki/Italy">Italy</a>   <sup>[a]</sup>  </td>
	</tr></tbody></table>`)

	node := doc.Find("td").Nodes[0]
	require.Equal(t, "Italy [a]", CellText(node))
}

func TestGetAnchors(t *testing.T) {
	doc := parseFragment(t, `<table><tbody><tr>
		<th><a href="/wiki/Flag_of_Italy"><img src="f.png"/></a></th>
		<th><a href="/wiki/Italy">  Italy  </a></th>
		<td><a href="#cite_note-1">[1]</a></td>
	</tr></tbody></table>`)

	anchors := GetAnchors(doc.Find("tr"))
	require.Equal(t, []Anchor{
		{Name: "", Href: "/wiki/Flag_of_Italy"},
		{Name: "Italy", Href: "/wiki/Italy"},
		{Name: "[1]", Href: "#cite_note-1"},
	}, anchors)
}
