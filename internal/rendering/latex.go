package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

// Special characters: \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// escapeURL prepares a URL for \href, where only % and # need escaping and
// braces would end the argument.
func escapeURL(u string) string {
	u = strings.NewReplacer("{", "", "}", "", `\`, "").Replace(u)
	return strings.NewReplacer("%", `\%`, "#", `\#`).Replace(u)
}

func latexContacts(v PreviewView) []string {
	var out []string
	for _, c := range []string{v.Email, v.Phone, v.Location, v.Website, v.LinkedIn} {
		if c != "" {
			out = append(out, EscapeLaTeX(c))
		}
	}
	return out
}

var latexFuncs = template.FuncMap{
	"escape":   EscapeLaTeX,
	"url":      escapeURL,
	"contacts": latexContacts,
	"join": func(items []string) string {
		escaped := make([]string, len(items))
		for i, s := range items {
			escaped[i] = EscapeLaTeX(s)
		}
		return strings.Join(escaped, ", ")
	},
}

var defaultLaTeXTemplate = template.Must(
	template.New("resume.tex.tmpl").Funcs(latexFuncs).ParseFS(templateFS, "templates/resume.tex.tmpl"),
)

// RenderLaTeX renders d with the built-in LaTeX template. The same section
// visibility rules as the HTML preview apply.
func RenderLaTeX(d types.ResumeData) (string, error) {
	return executeLaTeX(defaultLaTeXTemplate, d)
}

// RenderLaTeXWithTemplate renders d with a user supplied template file.
// The template receives a PreviewView and the escape, url, contacts and join funcs.
func RenderLaTeXWithTemplate(d types.ResumeData, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}
	return executeLaTeX(tmpl, d)
}

func executeLaTeX(tmpl *template.Template, d types.ResumeData) (string, error) {
	var result strings.Builder
	if err := tmpl.Execute(&result, BuildView(d)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Funcs(latexFuncs).Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
