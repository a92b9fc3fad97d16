package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrDraftNotFound is returned when no draft has the requested id.
var ErrDraftNotFound = errors.New("draft not found")

// Draft is a saved copy of a resume record.
type Draft struct {
	ID         uuid.UUID        `json:"id"`
	Title      string           `json:"title"`
	ResumeType types.ResumeType `json:"resume_type"`
	Data       types.ResumeData `json:"data"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// DraftSummary is a draft without its record, used for listings.
type DraftSummary struct {
	ID         uuid.UUID        `json:"id"`
	Title      string           `json:"title"`
	ResumeType types.ResumeType `json:"resume_type"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// DraftTitle derives a listing title from the record: the full name when set,
// otherwise a generic label.
func DraftTitle(d types.ResumeData) string {
	if d.PersonalInfo.FullName != "" {
		return d.PersonalInfo.FullName
	}
	return "Untitled resume"
}
