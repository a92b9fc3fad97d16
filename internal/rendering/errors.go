// Package rendering projects a resume record into its preview and export documents.
package rendering

import (
	"fmt"
	"strings"
)

// TemplateError represents an error parsing or executing a template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// PrintSafetyError lists interactive elements found inside the printable document.
type PrintSafetyError struct {
	Offending []string
}

func (e *PrintSafetyError) Error() string {
	return fmt.Sprintf("document is not print-safe: found %s", strings.Join(e.Offending, ", "))
}
