package export

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFRenderer prints a standalone HTML document to PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// Paper is a page size in inches.
type Paper struct {
	Width  float64
	Height float64
}

// Supported paper sizes
var (
	Letter = Paper{Width: 8.5, Height: 11}
	A4     = Paper{Width: 8.27, Height: 11.69}
)

// PaperByName maps "a4" to A4 and anything else to Letter.
func PaperByName(name string) Paper {
	if name == "a4" {
		return A4
	}
	return Letter
}

// ChromeRenderer prints documents with a headless Chrome started per call.
type ChromeRenderer struct {
	ExecPath string        // empty uses chromedp's default lookup
	Paper    Paper         // zero value means Letter
	Timeout  time.Duration // zero means 30s
	Verbose  bool
}

// RenderPDF loads html into a blank page and prints it.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	paper := r.Paper
	if paper == (Paper{}) {
		paper = Letter
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("#resume-content", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paper.Width).
				WithPaperHeight(paper.Height).
				WithPreferCSSPageSize(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PDFError{Message: "browser rendering failed", Cause: err}
	}

	if r.Verbose {
		log.Printf("[export] Printed %d bytes in %v", len(pdf), time.Since(start))
	}
	return pdf, nil
}
