package server

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/guidance"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html.tmpl
var pageFS embed.FS

// landingDraftLimit caps the drafts listed on the landing page.
const landingDraftLimit = 10

// parsePages loads the page templates on top of the preview templates, so
// pages can invoke "preview" and "styles".
func parsePages() (*template.Template, error) {
	base, err := rendering.HTMLTemplates()
	if err != nil {
		return nil, err
	}
	return base.ParseFS(pageFS, "templates/*.html.tmpl")
}

type typeOption struct {
	Type        types.ResumeType
	Title       string
	Description string
	Selected    bool
}

type questionPanel struct {
	Key        guidance.SectionKey
	Title      string
	Questions  []string
	Expanded   bool
	ToggleHref string
}

type categoryOption struct {
	Value types.AchievementCategory
	Label string
}

type landingPage struct {
	Types         []typeOption
	DraftsEnabled bool
	Drafts        []db.DraftSummary
}

type builderPage struct {
	ID              string
	Version         uint64
	Data            types.ResumeData
	Types           []typeOption
	Questions       []questionPanel
	Expanded        guidance.SectionKey
	ProjectsTip     string
	AchievementsTip string
	Categories      []categoryOption
	Hackathon       bool
	Preview         rendering.PreviewView
	DraftsEnabled   bool
	DraftID         string
}

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// renderPage executes a page template into a buffer first so a template
// failure never leaves a half-written response.
func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("[server] Error rendering page %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("[server] Error writing page %s: %v", name, err)
	}
}

// pageError renders the error page with the status mapped from err.
func (s *Server) pageError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("[server] Internal error: %v", err)
	}
	s.renderPage(w, status, "error", errorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: err.Error(),
	})
}

func (s *Server) pageNotFound(w http.ResponseWriter, _ *http.Request, err error) {
	s.pageError(w, err)
}

func typeOptions(selected types.ResumeType) []typeOption {
	var opts []typeOption
	for _, o := range guidance.ResumeTypeOptions() {
		opts = append(opts, typeOption{Type: o.Type, Title: o.Title, Description: o.Description, Selected: o.Type == selected})
	}
	return opts
}

func categoryOptions() []categoryOption {
	opts := make([]categoryOption, 0, len(types.AchievementCategories))
	for _, c := range types.AchievementCategories {
		opts = append(opts, categoryOption{Value: c, Label: c.Label()})
	}
	return opts
}

// builderURL returns the builder page URL carrying the view-only query state.
func builderURL(id string, acc guidance.Accordion, draftID string) string {
	q := url.Values{}
	if acc.Expanded() != "" {
		q.Set("expanded", string(acc.Expanded()))
	}
	if draftID != "" {
		q.Set("draft", draftID)
	}
	u := "/builder/" + id
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func questionPanels(id string, t types.ResumeType, acc guidance.Accordion, draftID string) []questionPanel {
	qs := guidance.QuestionsFor(t)
	var panels []questionPanel
	for _, sec := range guidance.Sections() {
		panels = append(panels, questionPanel{
			Key:        sec.Key,
			Title:      sec.Title,
			Questions:  qs[sec.Key],
			Expanded:   acc.IsExpanded(sec.Key),
			ToggleHref: builderURL(id, acc.Toggle(sec.Key), draftID),
		})
	}
	return panels
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	page := landingPage{
		Types:         typeOptions(types.DefaultResumeType),
		DraftsEnabled: s.drafts != nil,
	}
	if s.drafts != nil {
		drafts, err := s.drafts.ListDrafts(r.Context(), landingDraftLimit)
		if err != nil {
			log.Printf("[server] Error listing drafts: %v", err)
		}
		page.Drafts = drafts
	}
	s.renderPage(w, http.StatusOK, "landing", page)
}

// handleMountBuilder creates a fresh session and redirects to its builder page.
func (s *Server) handleMountBuilder(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	if t := types.ResumeType(r.FormValue("resumeType")); t.IsValid() {
		sess.Builder.SetResumeType(t)
	}
	log.Printf("[server] Mounted builder session %s", sess.ID)
	http.Redirect(w, r, builderURL(sess.ID, guidance.Accordion{}, ""), http.StatusSeeOther)
}

func (s *Server) handleOpenDraftPage(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		s.pageError(w, ErrDraftsDisabled)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.pageError(w, err)
		return
	}
	draft, err := s.drafts.GetDraft(r.Context(), id)
	if err != nil {
		s.pageError(w, err)
		return
	}
	sess := s.sessions.CreateFrom(draft.Data)
	http.Redirect(w, r, builderURL(sess.ID, guidance.Accordion{}, draft.ID.String()), http.StatusSeeOther)
}

func (s *Server) handleBuilderPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	data, version := sess.Builder.Snapshot()
	q := r.URL.Query()
	acc := guidance.NewAccordion(guidance.SectionKey(q.Get("expanded")))
	draftID := q.Get("draft")

	s.renderPage(w, http.StatusOK, "builder", builderPage{
		ID:              sess.ID,
		Version:         version,
		Data:            data,
		Types:           typeOptions(data.ResumeType),
		Questions:       questionPanels(sess.ID, data.ResumeType, acc, draftID),
		Expanded:        acc.Expanded(),
		ProjectsTip:     guidance.ProjectsTip(data.ResumeType),
		AchievementsTip: guidance.AchievementsTip(data.ResumeType),
		Categories:      categoryOptions(),
		Hackathon:       data.ResumeType == types.ResumeTypeHackathon,
		Preview:         rendering.BuildView(data),
		DraftsEnabled:   s.drafts != nil,
		DraftID:         draftID,
	})
}

// sessionPage is sessionOrError for HTML handlers.
func (s *Server) sessionPage(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := middleware.GetSession(r)
	if err != nil {
		s.pageError(w, session.ErrSessionNotFound)
		return nil, false
	}
	return sess, true
}

// backToBuilder redirects to the builder page, keeping the accordion and
// draft state posted with the form.
func (s *Server) backToBuilder(w http.ResponseWriter, r *http.Request, id string) {
	acc := guidance.NewAccordion(guidance.SectionKey(r.FormValue("expanded")))
	http.Redirect(w, r, builderURL(id, acc, r.FormValue("draftId")), http.StatusSeeOther)
}

// handleUnmountBuilder discards the session. Nothing is persisted.
func (s *Server) handleUnmountBuilder(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	s.sessions.Delete(sess.ID)
	log.Printf("[server] Unmounted builder session %s", sess.ID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleTypeForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	req := types.SetResumeTypeRequest{ResumeType: types.ResumeType(r.FormValue("resumeType"))}
	if err := req.Validate(); err != nil {
		s.pageError(w, &ErrValidation{Field: "resumeType", Message: extractValidationErrors(err)})
		return
	}
	sess.Builder.SetResumeType(req.ResumeType)
	s.backToBuilder(w, r, sess.ID)
}

// handlePersonalForm applies every posted personal info field as one change.
func (s *Server) handlePersonalForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.pageError(w, &ErrValidation{Field: "form", Message: err.Error()})
		return
	}
	_, err := sess.Builder.ApplyErr(func(d types.ResumeData) (types.ResumeData, error) {
		info := d.PersonalInfo
		for _, f := range editor.PersonalFields {
			if _, posted := r.PostForm[string(f)]; !posted {
				continue
			}
			var err error
			if info, err = editor.UpdatePersonal(info, f, editor.Text(r.PostForm.Get(string(f)))); err != nil {
				return d, err
			}
		}
		return builder.WithPersonalInfo(d, info), nil
	})
	if err != nil {
		s.pageError(w, err)
		return
	}
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleSummaryForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	sess.Builder.SetSummary(r.FormValue("summary"))
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleAddSkillForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	sess.Builder.AddSkill(r.FormValue("value"))
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleRemoveSkillForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	sess.Builder.RemoveSkill(r.FormValue("value"))
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleAddEntryForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	if _, err := sess.Builder.AddEntry(editor.Section(r.PathValue("section"))); err != nil {
		s.pageError(w, err)
		return
	}
	s.backToBuilder(w, r, sess.ID)
}

// handleUpdateEntryForm saves an entry card. Text fields are applied when
// posted; an unchecked checkbox is not posted, so flags default to false.
func (s *Server) handleUpdateEntryForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	section := editor.Section(r.PathValue("section"))
	if !section.IsValid() {
		s.pageError(w, &builder.UnknownSectionError{Section: string(section)})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.pageError(w, &ErrValidation{Field: "form", Message: err.Error()})
		return
	}

	var updates []builder.FieldUpdate
	for _, field := range section.Fields() {
		kind := section.FieldKind(field)
		_, posted := r.PostForm[field]
		if kind == editor.KindText && !posted {
			continue
		}
		updates = append(updates, builder.FieldUpdate{
			Field: field,
			Value: editor.ParseFormValue(kind, r.PostForm.Get(field)),
		})
	}

	if _, err := sess.Builder.UpdateEntryFields(section, r.PathValue("entryID"), updates); err != nil {
		s.pageError(w, err)
		return
	}
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleRemoveEntryForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	if _, err := sess.Builder.RemoveEntry(editor.Section(r.PathValue("section")), r.PathValue("entryID")); err != nil {
		s.pageError(w, err)
		return
	}
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleAddTechnologyForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	sess.Builder.AddTechnology(r.PathValue("entryID"), r.FormValue("value"))
	s.backToBuilder(w, r, sess.ID)
}

func (s *Server) handleRemoveTechnologyForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	sess.Builder.RemoveTechnology(r.PathValue("entryID"), r.FormValue("value"))
	s.backToBuilder(w, r, sess.ID)
}

// handleSaveDraftForm saves the record and returns to the builder with the
// draft id attached, so later saves overwrite the same draft.
func (s *Server) handleSaveDraftForm(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionPage(w, r)
	if !ok {
		return
	}
	if s.drafts == nil {
		s.pageError(w, ErrDraftsDisabled)
		return
	}
	id, err := draftIDParam(r)
	if err != nil {
		s.pageError(w, err)
		return
	}

	data, _ := sess.Builder.Snapshot()
	draft, err := s.drafts.SaveDraft(r.Context(), id, data)
	if err != nil {
		s.pageError(w, err)
		return
	}
	log.Printf("[server] Saved draft %s for session %s", draft.ID, sess.ID)

	acc := guidance.NewAccordion(guidance.SectionKey(r.FormValue("expanded")))
	http.Redirect(w, r, builderURL(sess.ID, acc, draft.ID.String())+"#saved", http.StatusSeeOther)
}

// handlePreviewFragment returns the preview markup alone.
func (s *Server) handlePreviewFragment(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, version := sess.Builder.Snapshot()
	html, err := rendering.RenderPreview(data)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Resume-Version", strconv.FormatUint(version, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("[server] Error writing preview: %v", err)
	}
}
