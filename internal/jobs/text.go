package jobs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText returns the plain text content of a rich-text field. The form
// produces HTML, so length floors are enforced on the text a reader would
// actually see, not on the markup. Input that fails to parse is returned
// trimmed as-is.
func ExtractText(html string) string {
	if !strings.Contains(html, "<") {
		return strings.TrimSpace(html)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}
