package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy removes all HTML. Used for titles and guest fields.
	StrictPolicy = bluemonday.StrictPolicy()

	// UGCPolicy keeps basic formatting. Used for descriptions.
	UGCPolicy = bluemonday.UGCPolicy()
)

// Text strips every tag from input. bluemonday entity-encodes the text it
// keeps, so the result is unescaped again: values are stored as typed and
// the page renders them with textContent.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(StrictPolicy.Sanitize(input)))
}

// HTML drops unsafe tags and attributes from input and keeps basic
// formatting. Like Text, character entities are decoded before storing.
func HTML(input string) string {
	return strings.TrimSpace(html.UnescapeString(UGCPolicy.Sanitize(input)))
}
