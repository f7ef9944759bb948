package pandemic

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// firstParagraphMentioning returns the text of the first <p> element
// whose text contains the country key. An empty result is reported as
// ErrParagraphNotFound instead of faulting.
func firstParagraphMentioning(doc *goquery.Document, key string) (string, error) {
	found := ""
	ok := false
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := p.Text()
		if strings.Contains(text, key) {
			found = strings.Trim(text, " \n\t")
			ok = true
			return false
		}
		return true
	})
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParagraphNotFound, key)
	}
	return found, nil
}
