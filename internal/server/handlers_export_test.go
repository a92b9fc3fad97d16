package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPDF struct {
	out []byte
	err error
	got string
}

func (s *stubPDF) RenderPDF(_ context.Context, html string) ([]byte, error) {
	s.got = html
	return s.out, s.err
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name string
		full string
		want string
	}{
		{"plain", "Jane Doe", "Jane_Doe_resume.pdf"},
		{"punctuation", "  Zoë O'Neil ", "Zo_O_Neil_resume.pdf"},
		{"empty", "", "resume.pdf"},
		{"only symbols", "***", "resume.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := types.NewResumeData()
			d.PersonalInfo.FullName = tt.full
			assert.Equal(t, tt.want, exportFilename(d, "pdf"))
		})
	}
}

func TestHandleExportHTML(t *testing.T) {
	ts := setupTestServer(t)
	created := createResume(t, ts)
	ts.do(t, http.MethodPut, "/api/resumes/"+created.ID+"/personal-info", types.PersonalInfo{FullName: "Jane Doe"})

	w := ts.do(t, http.MethodGet, "/api/resumes/"+created.ID+"/export.html", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, `attachment; filename="Jane_Doe_resume.html"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, w.Body.String(), "Jane Doe")
	assert.NotContains(t, w.Body.String(), "<script")
}

func TestHandleExportTeX(t *testing.T) {
	ts := setupTestServer(t)
	created := createResume(t, ts)

	w := ts.do(t, http.MethodGet, "/builder/"+created.ID+"/export.tex", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/x-tex")
	assert.Contains(t, w.Body.String(), `\documentclass`)
}

func TestHandleExportPDF_NoRenderer(t *testing.T) {
	ts := setupTestServer(t)
	created := createResume(t, ts)

	w := ts.do(t, http.MethodGet, "/api/resumes/"+created.ID+"/export.pdf", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleExportPDF(t *testing.T) {
	pdf := &stubPDF{out: []byte("%PDF-1.4 stub")}
	ts := setupTestServer(t, withExporter(export.New(pdf)))
	created := createResume(t, ts)

	w := ts.do(t, http.MethodGet, "/builder/"+created.ID+"/export.pdf", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 stub", w.Body.String())
	assert.Contains(t, pdf.got, `id="resume-content"`)
}

func TestHandleExportPDF_RendererFailure(t *testing.T) {
	pdf := &stubPDF{err: &export.PDFError{Message: "chrome crashed", Cause: errors.New("boom")}}
	ts := setupTestServer(t, withExporter(export.New(pdf)))
	created := createResume(t, ts)

	w := ts.do(t, http.MethodGet, "/api/resumes/"+created.ID+"/export.pdf", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
