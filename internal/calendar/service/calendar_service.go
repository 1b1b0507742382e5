package service

import (
	"context"
	"log"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
	"github.com/planloom/planloom-backend/internal/calendar/repository"
)

// CalendarService handles project and content business logic. The store is
// the single source of truth; the optional list cache is read-through and
// dropped after every mutation.
type CalendarService struct {
	projects *repository.ProjectRepository
	contents *repository.ContentRepository
	cache    *repository.ListCache // nil when Redis is not configured
}

// CreateProjectInput carries the caller-supplied fields of a new project.
type CreateProjectInput struct {
	Name        string
	Platform    domain.Platform
	Description string
	Contents    []domain.ContentDraft
}

// NewCalendarService creates a new calendar service. cache may be nil.
func NewCalendarService(projects *repository.ProjectRepository, contents *repository.ContentRepository, cache *repository.ListCache) *CalendarService {
	return &CalendarService{
		projects: projects,
		contents: contents,
		cache:    cache,
	}
}

// CreateProject creates a new project.
func (s *CalendarService) CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error) {
	p, err := s.projects.Create(ctx, in.Name, in.Platform, in.Description, in.Contents)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return p, nil
}

// GetProject returns a single project by id.
func (s *CalendarService) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.Get(ctx, id)
}

// ListProjects returns all projects, served from the cache when possible.
func (s *CalendarService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("project list cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, projects); err != nil {
			log.Printf("project list cache write failed: %v", err)
		}
	}
	return projects, nil
}

// DeleteProject removes a project and all its embedded content.
func (s *CalendarService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// AddContent appends a content item to a project.
func (s *CalendarService) AddContent(ctx context.Context, projectID string, draft domain.ContentDraft) (*domain.Content, error) {
	c, err := s.contents.Add(ctx, projectID, draft)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

// UpdateContent patches a content item in place.
func (s *CalendarService) UpdateContent(ctx context.Context, projectID, contentID string, patch domain.ContentPatch) error {
	if err := s.contents.Update(ctx, projectID, contentID, patch); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// RemoveContent removes a content item from a project.
func (s *CalendarService) RemoveContent(ctx context.Context, projectID, contentID string) error {
	if err := s.contents.Remove(ctx, projectID, contentID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// WarmCache primes the project-list cache. Used by the cron warmer.
func (s *CalendarService) WarmCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, projects)
}

// Cache failures must never fail a mutation that already hit the store.
func (s *CalendarService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("project list cache invalidate failed: %v", err)
	}
}
