package db

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftTitle(t *testing.T) {
	d := types.NewResumeData()
	assert.Equal(t, "Untitled resume", DraftTitle(d))

	d.PersonalInfo.FullName = "Jane Doe"
	assert.Equal(t, "Jane Doe", DraftTitle(d))
}

func TestDraftSummary_JSONFields(t *testing.T) {
	s := DraftSummary{ID: uuid.New(), Title: "Jane", ResumeType: types.ResumeTypeJob}
	b, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "resume_type")
	assert.Contains(t, m, "updated_at")
	assert.Equal(t, "job", m["resume_type"])
}
