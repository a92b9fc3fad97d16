package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
)

// DraftResponse is a saved draft with its full record.
type DraftResponse struct {
	Draft *db.Draft `json:"draft"`
}

// parseDraftID reads the {draftID} path value.
func parseDraftID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("draftID"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "draftID", Message: "invalid draft ID"}
	}
	return id, nil
}

// draftIDParam reads an optional draft id to overwrite from the query or form.
func draftIDParam(r *http.Request) (uuid.UUID, error) {
	raw := r.FormValue("draftId")
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "draftId", Message: "invalid draft ID"}
	}
	return id, nil
}

// handleSaveDraft stores the session's record. ?draftId= overwrites an
// existing draft, otherwise a new one is created.
func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionOrError(w, r)
	if !ok {
		return
	}
	if s.drafts == nil {
		s.errResponse(w, ErrDraftsDisabled)
		return
	}
	id, err := draftIDParam(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	data, _ := sess.Builder.Snapshot()
	draft, err := s.drafts.SaveDraft(r.Context(), id, data)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DraftResponse{Draft: draft})
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		s.errResponse(w, ErrDraftsDisabled)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.errResponse(w, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	drafts, err := s.drafts.ListDrafts(r.Context(), limit)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	if drafts == nil {
		drafts = []db.DraftSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"drafts": drafts,
		"count":  len(drafts),
	})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		s.errResponse(w, ErrDraftsDisabled)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	draft, err := s.drafts.GetDraft(r.Context(), id)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DraftResponse{Draft: draft})
}

// handleOpenDraft mounts a new builder session seeded from a saved draft.
func (s *Server) handleOpenDraft(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		s.errResponse(w, ErrDraftsDisabled)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	draft, err := s.drafts.GetDraft(r.Context(), id)
	if err != nil {
		s.errResponse(w, err)
		return
	}
	sess := s.sessions.CreateFrom(draft.Data)
	s.resumeResponse(w, http.StatusCreated, sess, "")
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	if s.drafts == nil {
		s.errResponse(w, ErrDraftsDisabled)
		return
	}
	id, err := parseDraftID(r)
	if err != nil {
		s.errResponse(w, err)
		return
	}

	if err := s.drafts.DeleteDraft(r.Context(), id); err != nil {
		s.errResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
