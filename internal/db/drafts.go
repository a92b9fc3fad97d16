package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

// SaveDraft inserts or overwrites a draft. A nil id creates a new draft.
// The record is stored as JSON exactly as it serializes.
func (db *DB) SaveDraft(ctx context.Context, id uuid.UUID, data types.ResumeData) (*Draft, error) {
	if id == uuid.Nil {
		id = uuid.New()
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	draft := &Draft{
		ID:         id,
		Title:      DraftTitle(data),
		ResumeType: data.ResumeType,
		Data:       data.Clone(),
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_drafts (id, title, resume_type, data)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET title = $2, resume_type = $3, data = $4, updated_at = NOW()
		 RETURNING created_at, updated_at`,
		id, draft.Title, string(data.ResumeType), jsonBytes,
	).Scan(&draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save draft %s: %w", id, err)
	}
	return draft, nil
}

// GetDraft retrieves a draft by id. Returns ErrDraftNotFound if absent.
func (db *DB) GetDraft(ctx context.Context, id uuid.UUID) (*Draft, error) {
	var (
		draft   Draft
		rt      string
		rawJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, resume_type, data, created_at, updated_at
		 FROM resume_drafts WHERE id = $1`,
		id,
	).Scan(&draft.ID, &draft.Title, &rt, &rawJSON, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}

	if err := json.Unmarshal(rawJSON, &draft.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft %s: %w", id, err)
	}
	draft.Data = draft.Data.Normalize()
	draft.ResumeType = types.ResumeType(rt)
	return &draft, nil
}

// ListDrafts returns draft summaries, most recently updated first.
func (db *DB) ListDrafts(ctx context.Context, limit int) ([]DraftSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, title, resume_type, updated_at
		 FROM resume_drafts ORDER BY updated_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := []DraftSummary{}
	for rows.Next() {
		var (
			s  DraftSummary
			rt string
		)
		if err := rows.Scan(&s.ID, &s.Title, &rt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		s.ResumeType = types.ResumeType(rt)
		drafts = append(drafts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return drafts, nil
}

// DeleteDraft removes a draft. Returns ErrDraftNotFound if nothing was deleted.
func (db *DB) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resume_drafts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}
