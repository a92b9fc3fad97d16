package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jonathan/resume-builder/internal/builder"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/guidance"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxResumeBody caps request bodies; a full resume record is far smaller.
const maxResumeBody = 1 << 20

// ResumeResponse is returned by every resume endpoint that reads or changes the record.
type ResumeResponse struct {
	ID      string           `json:"id"`
	Version uint64           `json:"version"`
	Resume  types.ResumeData `json:"resume"`
	EntryID string           `json:"entryId,omitempty"`
}

// QuestionSection is one guided-questions section in API responses.
type QuestionSection struct {
	Key       guidance.SectionKey `json:"key"`
	Title     string              `json:"title"`
	Questions []string            `json:"questions"`
}

func (s *Server) resumeResponse(w http.ResponseWriter, status int, sess *session.Session, entryID string) {
	data, version := sess.Builder.Snapshot()
	s.jsonResponse(w, status, ResumeResponse{ID: sess.ID, Version: version, Resume: data, EntryID: entryID})
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxResumeBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	return nil
}

// sessionOrError fetches the session resolved by the middleware.
func (s *Server) sessionOrError(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := middleware.GetSession(r)
	if err != nil {
		s.errResponse(w, session.ErrSessionNotFound)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleResumeTypes(w http.ResponseWriter, _ *http.Request) {
	type option struct {
		Type        types.ResumeType `json:"type"`
		Title       string           `json:"title"`
		Description string           `json:"description"`
	}
	opts := []option{}
	for _, o := range guidance.ResumeTypeOptions() {
		opts = append(opts, option{Type: o.Type, Title: o.Title, Description: o.Description})
	}
	s.jsonResponse(w, http.StatusOK, opts)
}

// handleCreateResume mounts a new builder session. An optional JSON body
// seeds it with an imported record.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxResumeBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var sess *session.Session
	if len(body) == 0 {
		sess = s.sessions.Create()
	} else {
		data, err := schemas.DecodeResume(body)
		if err != nil {
			s.errResponse(w, err)
			return
		}
		sess = s.sessions.CreateFrom(data)
	}
	s.resumeResponse(w, http.StatusCreated, sess, "")
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	s.resumeResponse(w, http.StatusOK, sess, "")
}

// handleImportResume replaces the whole record with a schema-validated body.
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxResumeBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	data, err := schemas.DecodeResume(body)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	sess.Builder.Replace(data)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	s.sessions.Delete(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	var info types.PersonalInfo
	if err := decodeJSON(r, &info); err != nil {
		s.errResponse(w, err)
		return
	}
	sess.Builder.SetPersonalInfo(info)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handlePatchPersonalInfo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	var req types.UpdateFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	v, err := editor.ParseJSONValue(editor.KindText, req.Value)
	if err != nil {
		s.errResponse(w, &ErrValidation{Field: "value", Message: err.Error()})
		return
	}
	if _, err := sess.Builder.UpdatePersonal(editor.PersonalField(req.Field), v); err != nil {
		s.errResponse(w, err)
		return
	}
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handleSetSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	var req types.SetSummaryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	sess.Builder.SetSummary(req.Summary)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

// handleSetResumeType switches the type. Entered data is never dropped.
func (s *Server) handleSetResumeType(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	var req types.SetResumeTypeRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	sess.Builder.SetResumeType(req.ResumeType)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

// itemValue reads {"value": ...} from the body, falling back to ?value= for
// clients that cannot send a DELETE body.
func itemValue(r *http.Request) (string, error) {
	if v := r.URL.Query().Get("value"); v != "" {
		return v, nil
	}
	var req types.ItemRequest
	if err := decodeJSON(r, &req); err != nil {
		return "", err
	}
	return req.Value, nil
}

func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	skill, err := itemValue(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	sess.Builder.AddSkill(skill)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	skill, err := itemValue(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	sess.Builder.RemoveSkill(skill)
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	id, err := sess.Builder.AddEntry(editor.Section(r.PathValue("section")))
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.resumeResponse(w, http.StatusCreated, sess, id)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	section := editor.Section(r.PathValue("section"))
	if !section.IsValid() {
		s.errResponse(w, &builder.UnknownSectionError{Section: string(section)})
		return
	}

	var req types.UpdateFieldRequest
	if err := decodeJSON(r, &req); err != nil {
		s.errResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	v, err := editor.ParseJSONValue(section.FieldKind(req.Field), req.Value)
	if err != nil {
		s.errResponse(w, &ErrValidation{Field: "value", Message: err.Error()})
		return
	}

	entryID := r.PathValue("entryID")
	if _, err := sess.Builder.UpdateEntry(section, entryID, req.Field, v); err != nil {
		s.errResponse(w, err)
		return
	}
	s.resumeResponse(w, http.StatusOK, sess, entryID)
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	if _, err := sess.Builder.RemoveEntry(editor.Section(r.PathValue("section")), r.PathValue("entryID")); err != nil {
		s.errResponse(w, err)
		return
	}
	s.resumeResponse(w, http.StatusOK, sess, "")
}

func (s *Server) handleAddTechnology(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	tech, err := itemValue(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	entryID := r.PathValue("entryID")
	sess.Builder.AddTechnology(entryID, tech)
	s.resumeResponse(w, http.StatusOK, sess, entryID)
}

func (s *Server) handleRemoveTechnology(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	tech, err := itemValue(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	entryID := r.PathValue("entryID")
	sess.Builder.RemoveTechnology(entryID, tech)
	s.resumeResponse(w, http.StatusOK, sess, entryID)
}

// handleQuestions returns the guided questions for the session's current type.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, _ := sess.Builder.Snapshot()
	qs := guidance.QuestionsFor(data.ResumeType)

	sections := make([]QuestionSection, 0, len(qs))
	for _, sec := range guidance.Sections() {
		sections = append(sections, QuestionSection{Key: sec.Key, Title: sec.Title, Questions: qs[sec.Key]})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumeType": data.ResumeType,
		"sections":   sections,
	})
}

func (s *Server) handleGuidance(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	data, _ := sess.Builder.Snapshot()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumeType": data.ResumeType,
		"tips":       guidance.Tips(data.ResumeType),
	})
}
