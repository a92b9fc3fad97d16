package server

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// exportFilename derives a download name like "Jane_Doe_resume.pdf".
func exportFilename(d types.ResumeData, ext string) string {
	name := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(d.PersonalInfo.FullName), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "resume." + ext
	}
	return fmt.Sprintf("%s_resume.%s", name, ext)
}

func setAttachment(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
}

// handleExportPDF prints the current preview to PDF. Requests for the same
// session version share one browser run.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, version := sess.Builder.Snapshot()

	pdf, err := s.exporter.PDF(r.Context(), export.Key(sess.ID, version), data)
	if err != nil {
		log.Printf("[export] PDF export failed for %s: %v", sess.ID, err)
		s.errResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	setAttachment(w, exportFilename(data, "pdf"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[export] Error writing PDF: %v", err)
	}
}

func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, _ := sess.Builder.Snapshot()

	doc, err := s.exporter.HTML(data)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	setAttachment(w, exportFilename(data, "html"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Printf("[export] Error writing HTML: %v", err)
	}
}

func (s *Server) handleExportTeX(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, _ := sess.Builder.Snapshot()

	tex, err := s.exporter.LaTeX(data, s.latexTemplate)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	setAttachment(w, exportFilename(data, "tex"))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(tex)); err != nil {
		log.Printf("[export] Error writing LaTeX: %v", err)
	}
}
