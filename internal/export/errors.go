// Package export turns a resume record into downloadable documents.
package export

import "fmt"

// PDFError wraps a failure inside the headless browser.
type PDFError struct {
	Message string
	Cause   error
}

func (e *PDFError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf export failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf export failed: %s", e.Message)
}

func (e *PDFError) Unwrap() error {
	return e.Cause
}
