package export

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/singleflight"
)

// Exporter produces export documents for resume records.
type Exporter struct {
	pdf   PDFRenderer
	group singleflight.Group
}

// New creates an exporter. pdf may be nil, in which case PDF export is unavailable.
func New(pdf PDFRenderer) *Exporter {
	return &Exporter{pdf: pdf}
}

// ErrPDFUnavailable is returned by PDF when no renderer is configured.
var ErrPDFUnavailable = &PDFError{Message: "no pdf renderer configured"}

// PDF prints the standalone preview document of d. Concurrent calls with the
// same key share one browser run; callers pass session id and version as key.
// The shared run is detached from ctx, so one caller giving up does not fail
// the others; each caller still returns as soon as its own ctx is done.
func (e *Exporter) PDF(ctx context.Context, key string, d types.ResumeData) ([]byte, error) {
	if e.pdf == nil {
		return nil, ErrPDFUnavailable
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := e.group.DoChan(key, func() (any, error) {
		doc, err := rendering.RenderDocument(d)
		if err != nil {
			return nil, err
		}
		if err := rendering.CheckPrintSafe(doc); err != nil {
			return nil, err
		}
		return e.pdf.RenderPDF(flightCtx, doc)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Printf("[export] Shared PDF result for %s", key)
		}
		return res.Val.([]byte), nil
	}
}

// HTML returns the standalone print-safe document.
func (e *Exporter) HTML(d types.ResumeData) (string, error) {
	doc, err := rendering.RenderDocument(d)
	if err != nil {
		return "", err
	}
	if err := rendering.CheckPrintSafe(doc); err != nil {
		return "", err
	}
	return doc, nil
}

// LaTeX renders d with the built-in template, or with the template at
// templatePath when it is not empty.
func (e *Exporter) LaTeX(d types.ResumeData, templatePath string) (string, error) {
	if templatePath == "" {
		return rendering.RenderLaTeX(d)
	}
	return rendering.RenderLaTeXWithTemplate(d, templatePath)
}

// Key builds the singleflight key for one version of one session.
func Key(sessionID string, version uint64) string {
	return fmt.Sprintf("%s@%d", sessionID, version)
}
