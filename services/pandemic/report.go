package pandemic

import (
	"fmt"
	"io"
	"strings"
)

// ReportPath is the append-only report file for a search term.
func ReportPath(term string) string {
	return fmt.Sprintf("%ssummary.txt", strings.ToLower(term))
}

// WriteSummary appends one fixed-width report block. Numeric columns
// are right-aligned so the blocks line up when the file accumulates
// runs; rates carry one decimal place.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "\nCountry: %s\n", s.Name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Population: %29s\n", s.Population)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Total Confirmed Cases: %18s\n", s.Cases)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Total Deaths: %27s\n", s.Deaths)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Cases per 100,000 people: %17.1f\n", s.CasesPer100k)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Deaths per 100,000 people: %16.1f\n", s.DeathsPer100k)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", s.Paragraph)
	return err
}
