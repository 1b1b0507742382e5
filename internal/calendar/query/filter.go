package query

import (
	"sort"
	"strings"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

// FilterByPlatform returns the projects targeting the given platform.
// PlatformAll is the identity filter.
func FilterByPlatform(projects []domain.Project, platform domain.Platform) []domain.Project {
	if platform == domain.PlatformAll {
		return projects
	}
	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Platform == platform {
			out = append(out, p)
		}
	}
	return out
}

// FilterContents returns the content items whose copy contains search
// (case-insensitive) and whose status matches the filter. StatusAll passes
// everything; both predicates are ANDed.
func FilterContents(contents []domain.Content, search string, status domain.Status) []domain.Content {
	search = strings.ToLower(search)
	out := make([]domain.Content, 0, len(contents))
	for _, c := range contents {
		if !strings.Contains(strings.ToLower(c.Copy), search) {
			continue
		}
		if status != domain.StatusAll && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortByPublishDate returns a new slice sorted ascending by publish date.
// The sort is stable: items with equal dates keep their relative order.
func SortByPublishDate(contents []domain.Content) []domain.Content {
	out := make([]domain.Content, len(contents))
	copy(out, contents)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishDate.Before(out[j].PublishDate)
	})
	return out
}
