package pandemic

import (
	"errors"
	"fmt"
)

var ErrTableNotFound = errors.New("no table matched signature")
var ErrParagraphNotFound = errors.New("no paragraph mentions country")

// FetchError reports a failure to retrieve a document, carrying the
// offending url.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MissingPopulationError is returned when a country from the case
// table has no entry in the population table. Suggestion holds the
// most similar population key, if any.
type MissingPopulationError struct {
	Key        string
	Suggestion string
}

func (e *MissingPopulationError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("no population entry for %q", e.Key)
	}
	return fmt.Sprintf("no population entry for %q (closest match: %q)", e.Key, e.Suggestion)
}

// MetricError reports a population value that cannot produce a
// per-100k rate: zero, empty or unparseable.
type MetricError struct {
	Population string
	Reason     string
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("population %q: %s", e.Population, e.Reason)
}
