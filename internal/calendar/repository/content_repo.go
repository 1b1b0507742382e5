package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

// ContentRepository mutates the embedded content list of a single project.
// Every method issues exactly one UPDATE whose SET expression rewrites the
// JSONB array server-side, so concurrent editors never race a client-side
// read-modify-write.
type ContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new content-mutation repository.
func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Add appends a new content item to the end of the project's list and
// returns it with its server-assigned id.
func (r *ContentRepository) Add(ctx context.Context, projectID string, draft domain.ContentDraft) (*domain.Content, error) {
	if _, err := uuid.Parse(projectID); err != nil {
		return nil, domain.ErrNotFound
	}
	if draft.PublishDate.IsZero() {
		return nil, fmt.Errorf("publishDate: %w", domain.ErrValidation)
	}

	content := contentFromDraft(draft)
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	// Appending an object to a jsonb array yields a new array with the
	// object as its last element.
	const q = `
UPDATE projects
SET contents = contents || $2::jsonb
WHERE id = $1::uuid;
`
	if err := r.execOnProject(ctx, q, projectID, string(raw)); err != nil {
		return nil, err
	}
	return &content, nil
}

// Update applies a partial field patch to the matching embedded item.
// An unmatched contentID is an idempotent no-op; ErrNotFound is returned
// only when the project itself is absent.
func (r *ContentRepository) Update(ctx context.Context, projectID, contentID string, patch domain.ContentPatch) error {
	if _, err := uuid.Parse(projectID); err != nil {
		return domain.ErrNotFound
	}

	raw, err := json.Marshal(patch.Fields())
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}

	// Merge the patch into the matching element only, keeping the array
	// order stable via the ordinality of the unnested elements.
	const q = `
UPDATE projects
SET contents = (
	SELECT COALESCE(jsonb_agg(
		CASE WHEN e->>'id' = $2 THEN e || $3::jsonb ELSE e END
		ORDER BY ord), '[]'::jsonb)
	FROM jsonb_array_elements(contents) WITH ORDINALITY AS t(e, ord)
)
WHERE id = $1::uuid;
`
	return r.execOnProject(ctx, q, projectID, contentID, string(raw))
}

// Remove deletes the matching embedded item. Same no-op semantics as Update
// when contentID does not match anything.
func (r *ContentRepository) Remove(ctx context.Context, projectID, contentID string) error {
	if _, err := uuid.Parse(projectID); err != nil {
		return domain.ErrNotFound
	}

	const q = `
UPDATE projects
SET contents = (
	SELECT COALESCE(jsonb_agg(e ORDER BY ord), '[]'::jsonb)
	FROM jsonb_array_elements(contents) WITH ORDINALITY AS t(e, ord)
	WHERE e->>'id' <> $2
)
WHERE id = $1::uuid;
`
	return r.execOnProject(ctx, q, projectID, contentID)
}

func (r *ContentRepository) execOnProject(ctx context.Context, q string, args ...any) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update contents: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
