package rendering

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates
var templateFS embed.FS

var htmlTemplates = template.Must(HTMLTemplates())

// HTMLTemplates parses a fresh set of the preview templates ("preview",
// "styles", "document") for embedding into other pages. Each call returns an
// independent set.
func HTMLTemplates() (*template.Template, error) {
	return template.New("rendering").ParseFS(templateFS, "templates/preview.html.tmpl", "templates/document.html.tmpl")
}

// RenderHTML writes the preview fragment for d to w.
func RenderHTML(w io.Writer, d types.ResumeData) error {
	if err := htmlTemplates.ExecuteTemplate(w, "preview", BuildView(d)); err != nil {
		return &TemplateError{Message: "failed to execute preview template", Cause: err}
	}
	return nil
}

// RenderPreview returns the preview fragment for d.
func RenderPreview(d types.ResumeData) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderDocument returns a standalone, script-free page holding the preview.
// This is what gets printed on export.
func RenderDocument(d types.ResumeData) (string, error) {
	var sb strings.Builder
	if err := htmlTemplates.ExecuteTemplate(&sb, "document", BuildView(d)); err != nil {
		return "", &TemplateError{Message: "failed to execute document template", Cause: err}
	}
	return sb.String(), nil
}
