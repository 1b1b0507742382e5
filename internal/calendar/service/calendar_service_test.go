package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planloom/planloom-backend/internal/calendar/domain"
	"github.com/planloom/planloom-backend/internal/calendar/repository"
)

const cacheKey = "calendar:projects"

func setupService(t *testing.T) (*CalendarService, sqlmock.Sqlmock, *sql.DB, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewCalendarService(
		repository.NewProjectRepository(db),
		repository.NewContentRepository(db),
		repository.NewListCache(client, 5*time.Minute),
	)
	return svc, mock, db, mr
}

func listRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "platform", "created_at", "contents"}).
		AddRow("7b8a8a34-3a75-4f10-9a3e-2f8e7b8a2000", "Launch", "", "Instagram", time.Now(), []byte(`[]`))
}

func TestCalendarService_ListProjects(t *testing.T) {
	svc, mock, _, mr := setupService(t)
	ctx := context.Background()

	t.Run("first read primes the cache, second is served from it", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM projects`).WillReturnRows(listRows())

		first, err := svc.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.True(t, mr.Exists(cacheKey))

		// No second SQL expectation: a store hit here would fail the test.
		second, err := svc.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, first[0].Name, second[0].Name)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCalendarService_MutationsInvalidateCache(t *testing.T) {
	ctx := context.Background()

	t.Run("create project drops the cached list", func(t *testing.T) {
		svc, mock, _, mr := setupService(t)

		mock.ExpectQuery(`SELECT .+ FROM projects`).WillReturnRows(listRows())
		_, err := svc.ListProjects(ctx)
		require.NoError(t, err)
		require.True(t, mr.Exists(cacheKey))

		mock.ExpectQuery(`INSERT INTO projects`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
				AddRow("7b8a8a34-3a75-4f10-9a3e-2f8e7b8a2001", time.Now()))

		_, err = svc.CreateProject(ctx, CreateProjectInput{Name: "New", Platform: domain.PlatformTikTok})
		require.NoError(t, err)
		assert.False(t, mr.Exists(cacheKey))
	})

	t.Run("content update drops the cached list", func(t *testing.T) {
		svc, mock, _, mr := setupService(t)

		mock.ExpectQuery(`SELECT .+ FROM projects`).WillReturnRows(listRows())
		_, err := svc.ListProjects(ctx)
		require.NoError(t, err)
		require.True(t, mr.Exists(cacheKey))

		mock.ExpectExec(`UPDATE projects`).WillReturnResult(sqlmock.NewResult(0, 1))

		status := domain.StatusPublished
		err = svc.UpdateContent(ctx, "7b8a8a34-3a75-4f10-9a3e-2f8e7b8a2000", "c-1", domain.ContentPatch{Status: &status})
		require.NoError(t, err)
		assert.False(t, mr.Exists(cacheKey))
	})

	t.Run("failed mutation leaves the cache alone", func(t *testing.T) {
		svc, mock, _, mr := setupService(t)

		mock.ExpectQuery(`SELECT .+ FROM projects`).WillReturnRows(listRows())
		_, err := svc.ListProjects(ctx)
		require.NoError(t, err)

		mock.ExpectExec(`DELETE FROM projects`).WillReturnResult(sqlmock.NewResult(0, 0))

		err = svc.DeleteProject(ctx, "7b8a8a34-3a75-4f10-9a3e-2f8e7b8a2000")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.True(t, mr.Exists(cacheKey))
	})
}

func TestCalendarService_WarmCache(t *testing.T) {
	svc, mock, _, mr := setupService(t)

	mock.ExpectQuery(`SELECT .+ FROM projects`).WillReturnRows(listRows())

	require.NoError(t, svc.WarmCache(context.Background()))
	assert.True(t, mr.Exists(cacheKey))
}
