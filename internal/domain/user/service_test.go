package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estatoai/estato/internal/domain/user"
	"github.com/estatoai/estato/internal/repository/mocks"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	svc := user.NewService(repo, "admin@estatoai.com", nil)

	u, err := svc.Register(ctx, "agent@example.com", "Agent")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, user.RoleAgent, u.Role)
	require.False(t, u.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestUserService_RegisterDefaultsToBuyer(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)

	svc := user.NewService(repo, "admin@estatoai.com", nil)

	u, err := svc.Register(ctx, "someone@example.com", "")
	require.NoError(t, err)
	require.Equal(t, user.RoleBuyer, u.Role)
}

func TestUserService_RegisterRequiresEmail(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, "admin@estatoai.com", nil)
	_, err := svc.Register(context.Background(), "", user.RoleBuyer)
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestUserService_IsAdmin(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, "admin@estatoai.com", nil)

	require.True(t, svc.IsAdmin("admin@estatoai.com"))
	require.True(t, svc.IsAdmin("ADMIN@ESTATOAI.COM"))
	require.False(t, svc.IsAdmin("someone@example.com"))
	require.False(t, svc.IsAdmin(""))
}

func TestRoleGates(t *testing.T) {
	require.False(t, user.User{Role: user.RoleBuyer}.CanListProperty())
	require.True(t, user.User{Role: user.RoleSeller}.CanListProperty())
	require.True(t, user.User{Role: user.RoleAgent}.CanListProperty())
	require.True(t, user.User{Role: user.RoleBoth}.CanListProperty())

	require.True(t, user.User{Role: user.RoleAgent}.CanViewInventory())
	require.False(t, user.User{Role: user.RoleSeller}.CanViewInventory())
}
