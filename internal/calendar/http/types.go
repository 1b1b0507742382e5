package http

import (
	"context"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
	"github.com/planloom/planloom-backend/internal/calendar/service"
)

// Service is the slice of the calendar service the HTTP layer depends on.
type Service interface {
	CreateProject(ctx context.Context, in service.CreateProjectInput) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AddContent(ctx context.Context, projectID string, draft domain.ContentDraft) (*domain.Content, error)
	UpdateContent(ctx context.Context, projectID, contentID string, patch domain.ContentPatch) error
	RemoveContent(ctx context.Context, projectID, contentID string) error
}

// Handler bundles the dependencies for calendar HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}
