package pandemic

import (
	"fmt"
	"strconv"
	"strings"
)

func parseCount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

// perCapitaRates normalizes raw counts against the population,
// yielding cases and deaths per 100,000 people. A population that is
// zero, empty or unparseable can never silently become Inf or NaN.
func perCapitaRates(population, cases, deaths string) (float64, float64, error) {
	pop, err := parseCount(population)
	if err != nil {
		return 0, 0, &MetricError{Population: population, Reason: "not a number"}
	}
	if pop <= 0 {
		return 0, 0, &MetricError{Population: population, Reason: "zero or negative"}
	}
	per100k := pop / 100_000

	numCases, err := parseCount(cases)
	if err != nil {
		return 0, 0, fmt.Errorf("parse cases %q: %w", cases, err)
	}
	numDeaths, err := parseCount(deaths)
	if err != nil {
		return 0, 0, fmt.Errorf("parse deaths %q: %w", deaths, err)
	}

	return numCases / per100k, numDeaths / per100k, nil
}
