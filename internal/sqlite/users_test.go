package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/user"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	want := &user.User{
		ID:        "u1",
		Email:     "agent@example.com",
		Role:      user.RoleAgent,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, want))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, want.Email, got.Email)
	require.Equal(t, user.RoleAgent, got.Role)
}

func TestUserRepository_GetNotFound(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_List(t *testing.T) {
	db := NewTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &user.User{ID: "u1", Email: "a@example.com", Role: user.RoleBuyer}))
	require.NoError(t, repo.Create(ctx, &user.User{ID: "u2", Email: "b@example.com", Role: user.RoleSeller}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
