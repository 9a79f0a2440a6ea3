package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/repository"
)

func newTestUser(email string) *domain.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.User{
		ID:           uuid.New().String(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakehashfortestingpurposesonly",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	ctx := context.Background()
	repo := repository.NewPostgresUserRepository(tdb.Pool)

	t.Run("Create and GetByID", func(t *testing.T) {
		tdb.TruncateTables(t, "users")

		user := newTestUser("alex@example.com")
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
	})

	t.Run("Create with duplicate email returns conflict", func(t *testing.T) {
		tdb.TruncateTables(t, "users")

		require.NoError(t, repo.Create(ctx, newTestUser("dup@example.com")))

		err := repo.Create(ctx, newTestUser("dup@example.com"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		tdb.TruncateTables(t, "users")

		user := newTestUser("findme@example.com")
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.GetByEmail(ctx, "findme@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		_, err = repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Update persists changes", func(t *testing.T) {
		tdb.TruncateTables(t, "users")

		user := newTestUser("update@example.com")
		require.NoError(t, repo.Create(ctx, user))

		user.Name = "Renamed"
		user.Role = domain.RoleModerator
		user.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, repo.Update(ctx, user))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, domain.RoleModerator, got.Role)
	})

	t.Run("Update of missing row returns not found", func(t *testing.T) {
		tdb.TruncateTables(t, "users")

		ghost := newTestUser("ghost@example.com")
		err := repo.Update(ctx, ghost)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
