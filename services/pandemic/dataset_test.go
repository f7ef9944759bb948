package pandemic

import (
	"testing"

	"covidcrawl/lib/htmlutil"

	"github.com/stretchr/testify/require"
)

func TestBuildCaseDataset(t *testing.T) {
	doc := parseFixture(t, casesTableFixture)
	rows, err := ExtractTable(doc, CasesTableSignature)
	require.NoError(t, err)

	dataset := BuildCaseDataset(rows)
	require.Equal(t, []string{"Italy", "France"}, dataset.Keys())

	italy, ok := dataset.Get("Italy")
	require.True(t, ok)
	require.Equal(t, CaseRecord{
		Key:        "Italy",
		Cases:      "1,000",
		Deaths:     "10",
		DetailLink: "/wiki/COVID-19_pandemic_in_Italy",
	}, italy)

	// "France[note 1]" sanitizes down to the joinable key
	france, ok := dataset.Get("France")
	require.True(t, ok)
	require.Equal(t, "2,000", france.Cases)
}

func TestBuildCaseDatasetSkipsShortRows(t *testing.T) {
	rows := []Row{
		{Header: []string{"Location", "Cases"}},
		{Header: []string{"", "Italy"}, Data: []string{"1,000", "10"}},
		{Header: []string{"", "France"}, Data: []string{"2,000", "40", "1,500", "[3]"}},
		{Header: []string{"As of 12 April"}},
	}

	dataset := BuildCaseDataset(rows)
	require.Equal(t, []string{"France"}, dataset.Keys())
}

func TestBuildCaseDatasetFirstWikiLinkWins(t *testing.T) {
	rows := []Row{{
		Header: []string{"", "Italy"},
		Data:   []string{"1,000", "10", "900", "[2]"},
		Anchors: []htmlutil.Anchor{
			{Name: "", Href: "#cite_note-1"},
			{Name: "", Href: "/wiki/File:Flag_of_Italy.svg"},
			{Name: "Italy", Href: "/wiki/COVID-19_pandemic_in_Italy"},
		},
	}}

	dataset := BuildCaseDataset(rows)
	italy, _ := dataset.Get("Italy")
	require.Equal(t, "/wiki/File:Flag_of_Italy.svg", italy.DetailLink)
}

func TestBuildCaseDatasetDuplicateKeyLastWriteWins(t *testing.T) {
	rows := []Row{
		{Header: []string{"", "Italy"}, Data: []string{"1,000", "10", "900", "[2]"}},
		{Header: []string{"", "France"}, Data: []string{"2,000", "40", "1,500", "[3]"}},
		{Header: []string{"", "Italy[note 2]"}, Data: []string{"1,200", "12", "900", "[2]"}},
	}

	dataset := BuildCaseDataset(rows)
	require.Equal(t, []string{"Italy", "France"}, dataset.Keys())

	italy, _ := dataset.Get("Italy")
	require.Equal(t, "1,200", italy.Cases)
}

func TestBuildPopulationDataset(t *testing.T) {
	doc := parseFixture(t, populationTableFixture)
	rows, err := ExtractTable(doc, PopulationTableSignature)
	require.NoError(t, err)

	dataset := BuildPopulationDataset(rows)
	require.Equal(t, []string{"Italy", "France"}, dataset.Keys())

	italy, ok := dataset.Get("Italy")
	require.True(t, ok)
	require.Equal(t, "60,000,000", italy.Population)
}

func TestBuildPopulationDatasetSkipsShortRows(t *testing.T) {
	rows := []Row{
		{Header: []string{"Rank", "Country", "Population"}},
		{Data: []string{"1", "Italy"}},
		{Data: []string{"2", "France", "67,000,000"}},
	}

	dataset := BuildPopulationDataset(rows)
	require.Equal(t, []string{"France"}, dataset.Keys())
}
