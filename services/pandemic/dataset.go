package pandemic

import (
	"strings"

	"covidcrawl/lib/textutil"
)

type CaseRecord struct {
	Key        string
	Cases      string
	Deaths     string
	DetailLink string
}

type PopulationRecord struct {
	Key        string
	Population string
}

// CaseDataset maps sanitized country keys to their case records,
// remembering the order keys were first seen so search output stays
// stable. A duplicate key overwrites the record but keeps its
// original position.
type CaseDataset struct {
	keys    []string
	records map[string]CaseRecord
}

func (d *CaseDataset) Keys() []string {
	return d.keys
}

func (d *CaseDataset) Get(key string) (CaseRecord, bool) {
	record, ok := d.records[key]
	return record, ok
}

func (d *CaseDataset) put(record CaseRecord) {
	if _, seen := d.records[record.Key]; !seen {
		d.keys = append(d.keys, record.Key)
	}
	d.records[record.Key] = record
}

type PopulationDataset struct {
	keys    []string
	records map[string]PopulationRecord
}

func (d *PopulationDataset) Keys() []string {
	return d.keys
}

func (d *PopulationDataset) Get(key string) (PopulationRecord, bool) {
	record, ok := d.records[key]
	return record, ok
}

func (d *PopulationDataset) put(record PopulationRecord) {
	if _, seen := d.records[record.Key]; !seen {
		d.keys = append(d.keys, record.Key)
	}
	d.records[record.Key] = record
}

// BuildCaseDataset reads rows of the cases table: country name in the
// second header cell, cases and deaths in the first two data cells.
// The first row anchor pointing at a wiki article becomes the
// country's detail link. Rows with fewer than 4 data cells are
// formatting rows and produce no record.
func BuildCaseDataset(rows []Row) *CaseDataset {
	dataset := &CaseDataset{records: map[string]CaseRecord{}}
	for _, row := range rows {
		if len(row.Data) < 4 || len(row.Header) < 2 {
			continue
		}
		key := textutil.SanitizeCountry(row.Header[1])
		if key == "" {
			continue
		}

		link := ""
		for _, a := range row.Anchors {
			if strings.Contains(a.Href, "/wiki") {
				link = a.Href
				break
			}
		}

		dataset.put(CaseRecord{
			Key:        key,
			Cases:      row.Data[0],
			Deaths:     row.Data[1],
			DetailLink: link,
		})
	}
	return dataset
}

// BuildPopulationDataset reads rows of the population table: country
// name in the second data cell, population in the third. Rows with
// fewer than 3 data cells produce no record.
func BuildPopulationDataset(rows []Row) *PopulationDataset {
	dataset := &PopulationDataset{records: map[string]PopulationRecord{}}
	for _, row := range rows {
		if len(row.Data) < 3 {
			continue
		}
		key := textutil.SanitizeCountry(row.Data[1])
		if key == "" {
			continue
		}

		dataset.put(PopulationRecord{
			Key:        key,
			Population: row.Data[2],
		})
	}
	return dataset
}
