package pandemic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstParagraphMentioning(t *testing.T) {
	doc := parseFixture(t,
		`<p>  </p>`,
		`<p>The pandemic reached many countries in early 2020.</p>`,
		`<p>The first case in Italy was confirmed on 31 January 2020.</p>`,
		`<p>Italy then entered a nationwide lockdown.</p>`,
	)

	paragraph, err := firstParagraphMentioning(doc, "Italy")
	require.NoError(t, err)
	require.Equal(t, "The first case in Italy was confirmed on 31 January 2020.", paragraph)
}

func TestFirstParagraphMentioningNotFound(t *testing.T) {
	doc := parseFixture(t, `<p>No relevant text here.</p>`)

	_, err := firstParagraphMentioning(doc, "Italy")
	require.ErrorIs(t, err, ErrParagraphNotFound)

	empty := parseFixture(t, `<div>no paragraphs at all</div>`)
	_, err = firstParagraphMentioning(empty, "Italy")
	require.ErrorIs(t, err, ErrParagraphNotFound)
}
