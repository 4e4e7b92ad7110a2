package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/internal/club/domain"
)

func TestCreateFirstAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the first admin exactly once", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "deploy-secret"}

		user, err := svc.CreateFirstAdmin(ctx, "deploy-secret",
			"admin@example.com", "Ada Admin", "password123")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, user.Role)

		_, err = svc.CreateFirstAdmin(ctx, "deploy-secret",
			"second@example.com", "Second Admin", "password123")
		require.ErrorIs(t, err, ErrBootstrapDone)
	})

	t.Run("wrong token", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "deploy-secret"}

		_, err := svc.CreateFirstAdmin(ctx, "guess",
			"admin@example.com", "Ada Admin", "password123")
		require.ErrorIs(t, err, ErrBootstrapToken)
	})

	t.Run("empty configured token disables bootstrap", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t)}

		_, err := svc.CreateFirstAdmin(ctx, "",
			"admin@example.com", "Ada Admin", "password123")
		require.ErrorIs(t, err, ErrBootstrapToken)
	})

	t.Run("validation", func(t *testing.T) {
		svc := &BootstrapService{Store: newTestStore(t), Token: "deploy-secret"}

		_, err := svc.CreateFirstAdmin(ctx, "deploy-secret",
			"not-an-email", "Ada Admin", "password123")
		require.ErrorIs(t, err, ErrInvalidRequest)

		_, err = svc.CreateFirstAdmin(ctx, "deploy-secret",
			"admin@example.com", "Ada Admin", "short")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}
