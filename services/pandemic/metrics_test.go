package pandemic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPerCapitaRates(t *testing.T) {
	casesPer, deathsPer, err := perCapitaRates("60,000,000", "1,000", "10")
	require.NoError(t, err)
	require.InDelta(t, 1.667, casesPer, 0.001)
	require.InDelta(t, 0.0167, deathsPer, 0.0001)
}

func TestPerCapitaRatesScaleLinearly(t *testing.T) {
	base, _, err := perCapitaRates("5,000,000", "100", "0")
	require.NoError(t, err)
	tripled, _, err := perCapitaRates("5,000,000", "300", "0")
	require.NoError(t, err)
	require.InDelta(t, base*3, tripled, 1e-9)
}

func TestPerCapitaRatesZeroPopulation(t *testing.T) {
	testCases := []struct {
		population string
		reason     string
	}{
		{population: "0", reason: "zero or negative"},
		{population: "", reason: "not a number"},
		{population: "unknown", reason: "not a number"},
	}

	for _, test := range testCases {
		_, _, err := perCapitaRates(test.population, "1,000", "10")

		var metricErr *MetricError
		require.ErrorAs(t, err, &metricErr, "population: %q", test.population)
		require.Equal(t, test.reason, metricErr.Reason)
	}
}

func TestPerCapitaRatesBadCounts(t *testing.T) {
	_, _, err := perCapitaRates("60,000,000", "n/a", "10")
	require.ErrorContains(t, err, "parse cases")

	_, _, err = perCapitaRates("60,000,000", "1,000", "n/a")
	require.ErrorContains(t, err, "parse deaths")
}
