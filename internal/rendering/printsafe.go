package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// interactiveSelectors are elements that only make sense on screen.
var interactiveSelectors = []string{"script", "button", "input", "select", "textarea", "form", "iframe"}

// CheckPrintSafe verifies that markup contains the printable resume content
// and nothing interactive inside it.
func CheckPrintSafe(markup string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return &RenderError{Message: "failed to parse markup", Cause: err}
	}

	content := doc.Find("#resume-content")
	if content.Length() == 0 {
		return &RenderError{Message: "missing #resume-content"}
	}

	var offending []string
	for _, sel := range interactiveSelectors {
		if n := content.Find(sel).Length(); n > 0 {
			offending = append(offending, sel)
		}
	}
	content.Find("[onclick], [onchange], [oninput]").Each(func(_ int, s *goquery.Selection) {
		offending = append(offending, goquery.NodeName(s)+"[event handler]")
	})
	if len(offending) > 0 {
		return &PrintSafetyError{Offending: offending}
	}
	return nil
}
