package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
)

func TestFilterByPlatform(t *testing.T) {
	projects := []domain.Project{
		{ID: "a", Platform: domain.PlatformInstagram},
		{ID: "b", Platform: domain.PlatformFacebook},
		{ID: "c", Platform: domain.PlatformInstagram},
	}

	t.Run("All is the identity filter", func(t *testing.T) {
		assert.Equal(t, projects, FilterByPlatform(projects, domain.PlatformAll))
	})

	t.Run("exact platform match", func(t *testing.T) {
		got := FilterByPlatform(projects, domain.PlatformInstagram)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
	})

	t.Run("no matching platform yields empty, not an error", func(t *testing.T) {
		got := FilterByPlatform(projects, domain.PlatformTikTok)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFilterContents(t *testing.T) {
	contents := []domain.Content{
		{ID: "one", Copy: "Big Launch Teaser", Status: domain.StatusDraft},
		{ID: "two", Copy: "behind the scenes", Status: domain.StatusPublished},
		{ID: "three", Copy: "launch day recap", Status: domain.StatusPublished},
	}

	t.Run("search is case-insensitive on copy", func(t *testing.T) {
		got := FilterContents(contents, "LAUNCH", domain.StatusAll)
		require.Len(t, got, 2)
	})

	t.Run("status All passes everything", func(t *testing.T) {
		got := FilterContents(contents, "", domain.StatusAll)
		assert.Len(t, got, 3)
	})

	t.Run("predicates are ANDed", func(t *testing.T) {
		got := FilterContents(contents, "launch", domain.StatusPublished)
		require.Len(t, got, 1)
		assert.Equal(t, "launch day recap", got[0].Copy)
	})
}

func TestSortByPublishDate(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("ascending by publish date", func(t *testing.T) {
		got := SortByPublishDate([]domain.Content{
			{ID: "late", PublishDate: day(20)},
			{ID: "early", PublishDate: day(1)},
			{ID: "mid", PublishDate: day(10)},
		})
		require.Len(t, got, 3)
		assert.Equal(t, "early", got[0].ID)
		assert.Equal(t, "mid", got[1].ID)
		assert.Equal(t, "late", got[2].ID)
	})

	t.Run("ties keep their relative input order", func(t *testing.T) {
		got := SortByPublishDate([]domain.Content{
			{ID: "first", PublishDate: day(5)},
			{ID: "second", PublishDate: day(5)},
			{ID: "earlier", PublishDate: day(1)},
		})
		assert.Equal(t, []string{"earlier", "first", "second"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("input order is untouched", func(t *testing.T) {
		in := []domain.Content{
			{ID: "b", PublishDate: day(9)},
			{ID: "a", PublishDate: day(2)},
		}
		_ = SortByPublishDate(in)
		assert.Equal(t, "b", in[0].ID)
	})
}
