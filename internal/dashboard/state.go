package dashboard

import (
	"context"
	"log"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
	"github.com/planloom/planloom-backend/internal/calendar/query"
)

// ProjectLister is the slice of the API client the state coordinator needs.
type ProjectLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// State holds the dashboard's view of the world: the full project list, the
// selected project and the active platform filter. It is an explicit
// container passed to whoever renders it, not ambient global state, and it
// assumes a single session (no internal locking). All mutation happens
// through the API; state only re-synchronizes via Refresh.
type State struct {
	api ProjectLister

	projects   []domain.Project
	selectedID string
	platform   domain.Platform
}

// NewState creates an empty state with the platform filter set to All.
func NewState(api ProjectLister) *State {
	return &State{
		api:      api,
		projects: []domain.Project{},
		platform: domain.PlatformAll,
	}
}

// Load performs the initial fetch. A failure degrades to an empty project
// list instead of propagating, so the dashboard still renders.
func (s *State) Load(ctx context.Context) {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		log.Printf("failed to fetch projects: %v", err)
		s.projects = []domain.Project{}
		s.selectedID = ""
		return
	}
	s.projects = projects
	s.selectedID = ""
}

// Refresh re-fetches the full project list after a mutation and selects
// selectID (empty clears the selection). On error the previous state is kept.
func (s *State) Refresh(ctx context.Context, selectID string) error {
	projects, err := s.api.ListProjects(ctx)
	if err != nil {
		log.Printf("failed to refresh projects: %v", err)
		return err
	}
	s.projects = projects
	s.selectedID = selectID
	return nil
}

// Projects returns the full, unfiltered project list.
func (s *State) Projects() []domain.Project {
	return s.projects
}

// VisibleProjects returns the project list under the active platform filter.
func (s *State) VisibleProjects() []domain.Project {
	return query.FilterByPlatform(s.projects, s.platform)
}

// SelectProject changes the selection; the platform filter is untouched.
func (s *State) SelectProject(id string) {
	s.selectedID = id
}

// SelectedProject returns the selected project, or nil when nothing is
// selected or the selection no longer exists.
func (s *State) SelectedProject() *domain.Project {
	if s.selectedID == "" {
		return nil
	}
	for i := range s.projects {
		if s.projects[i].ID == s.selectedID {
			return &s.projects[i]
		}
	}
	return nil
}

// Platform returns the active platform filter.
func (s *State) Platform() domain.Platform {
	return s.platform
}

// SetPlatform changes the platform filter. When the current selection no
// longer matches, the first project on the new platform is selected, or the
// selection is cleared when none match.
func (s *State) SetPlatform(platform domain.Platform) {
	s.platform = platform
	if platform == domain.PlatformAll {
		return
	}

	selected := s.SelectedProject()
	if selected == nil || selected.Platform == platform {
		return
	}

	for _, p := range s.projects {
		if p.Platform == platform {
			s.selectedID = p.ID
			return
		}
	}
	s.selectedID = ""
}
