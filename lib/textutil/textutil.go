package textutil

import (
	"strings"
)

// SanitizeCountry turns a raw country-name cell into the canonical
// key used to join datasets: footnote markers like "France[note 1]"
// are cut at the first bracket, surrounding whitespace is dropped.
func SanitizeCountry(raw string) string {
	name := strings.Trim(raw, " \n\t")
	if bracket := strings.Index(name, "["); bracket >= 0 {
		name = name[:bracket]
	}
	return strings.Trim(name, " \n\t")
}

func ContainsTerm(key, term string) bool {
	return strings.Contains(key, term)
}
