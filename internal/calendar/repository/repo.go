package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

// ProjectRepository provides persistence operations for whole projects.
// Each project is stored as a single row with its content list in a JSONB
// column, so every operation here touches exactly one document.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a new project. Name and platform are required; contents
// default to an empty list and any initial contents get server-assigned ids.
func (r *ProjectRepository) Create(ctx context.Context, name string, platform domain.Platform, description string, initial []domain.ContentDraft) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name: %w", domain.ErrValidation)
	}
	if !platform.Valid() {
		return nil, fmt.Errorf("platform: %w", domain.ErrValidation)
	}

	contents := make([]domain.Content, 0, len(initial))
	for _, d := range initial {
		contents = append(contents, contentFromDraft(d))
	}
	raw, err := json.Marshal(contents)
	if err != nil {
		return nil, fmt.Errorf("marshal contents: %w", err)
	}

	const q = `
INSERT INTO projects (name, description, platform, contents)
VALUES ($1, $2, $3, $4::jsonb)
RETURNING id::text, created_at;
`
	p := domain.Project{
		Name:        name,
		Description: description,
		Platform:    platform,
		Contents:    contents,
	}
	err = r.db.QueryRowContext(ctx, q, name, description, string(platform), raw).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

// Get returns the project with the given id. Malformed ids are reported as
// not found rather than as a driver error.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}

	const q = `
SELECT id::text, name, COALESCE(description, ''), platform, created_at, contents
FROM projects
WHERE id = $1::uuid;
`
	var p domain.Project
	var raw []byte
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Platform, &p.CreatedAt, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if err := json.Unmarshal(raw, &p.Contents); err != nil {
		return nil, fmt.Errorf("decode contents: %w", err)
	}
	if p.Contents == nil {
		p.Contents = []domain.Content{}
	}
	return &p, nil
}

// List returns all projects in store order. Callers must not assume any
// particular ordering.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id::text, name, COALESCE(description, ''), platform, created_at, contents
FROM projects;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		var raw []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Platform, &p.CreatedAt, &raw); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if err := json.Unmarshal(raw, &p.Contents); err != nil {
			return nil, fmt.Errorf("decode contents: %w", err)
		}
		if p.Contents == nil {
			p.Contents = []domain.Content{}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete removes the project and its embedded contents in one statement.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}

	const q = `DELETE FROM projects WHERE id = $1::uuid;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
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

func contentFromDraft(d domain.ContentDraft) domain.Content {
	return domain.Content{
		ID:                  uuid.NewString(),
		PublishDate:         d.PublishDate,
		ContentType:         d.ContentType,
		Copy:                d.Copy,
		Status:              d.Status,
		LinkToAsset:         d.LinkToAsset,
		LinkToPublishedPost: d.LinkToPublishedPost,
	}
}
