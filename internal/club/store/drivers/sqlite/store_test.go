package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/idx"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func pendingInvitation(email string) domain.Invitation {
	return domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: "fingerprint-" + email,
		Role:      domain.RoleAthlete,
		Status:    domain.InvitationPending,
		CreatedBy: "admin-1",
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
}

func TestInvitationsRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		got, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, inv.Email, got.Email)
		require.Equal(t, inv.TokenHash, got.TokenHash)
		require.Equal(t, domain.InvitationPending, got.Status)
		require.Nil(t, got.AcceptedAt)
		require.Empty(t, got.AcceptedBy)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("lookup by email and fingerprint requires both to match", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		_, err := st.Invitations().FindPendingByEmailAndTokenHash(ctx, inv.Email, inv.TokenHash)
		require.NoError(t, err)

		_, err = st.Invitations().FindPendingByEmailAndTokenHash(ctx, inv.Email, "other-hash")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Invitations().FindPendingByEmailAndTokenHash(ctx, "other@example.com", inv.TokenHash)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rotate replaces fingerprint and expiry", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		newExpiry := time.Now().UTC().Add(48 * time.Hour)
		require.NoError(t, st.Invitations().RotateInvitationToken(ctx, inv.ID, "new-hash", newExpiry))

		got, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, "new-hash", got.TokenHash)
		require.WithinDuration(t, newExpiry, got.ExpiresAt, time.Second)

		err = st.Invitations().RotateInvitationToken(ctx, idx.New().String(), "x", newExpiry)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("accepted lookup excludes the record from pending queries", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))
		require.NoError(t, st.Invitations().MarkInvitationAccepted(ctx, inv.ID, "user-1"))

		got, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, got.Status)
		require.Equal(t, "user-1", got.AcceptedBy)
		require.NotNil(t, got.AcceptedAt)

		_, err = st.Invitations().FindPendingByEmail(ctx, inv.Email)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

		require.NoError(t, st.Invitations().DeleteInvitation(ctx, inv.ID))
		require.NoError(t, st.Invitations().DeleteInvitation(ctx, inv.ID))

		_, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		st := newTestStore(t)
		first := pendingInvitation("a@example.com")
		second := pendingInvitation("b@example.com")
		require.NoError(t, st.Invitations().CreateInvitation(ctx, first))
		require.NoError(t, st.Invitations().CreateInvitation(ctx, second))

		list, err := st.Invitations().ListInvitations(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		// Same created_at second; the id tiebreak keeps insertion order stable
		// because ULIDs sort by time.
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
	})
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		st := newTestStore(t)

		empty, err := st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)

		u := domain.User{
			ID:           idx.New().String(),
			Email:        "swim@example.com",
			Name:         "Sam Swimmer",
			PasswordHash: "phc-string",
			Role:         domain.RoleAthlete,
		}
		require.NoError(t, st.Users().CreateUser(ctx, u))

		got, err := st.Users().GetUserByEmail(ctx, "swim@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, domain.RoleAthlete, got.Role)

		byID, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)

		empty, err = st.Users().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})

	t.Run("duplicate email is rejected by the schema", func(t *testing.T) {
		st := newTestStore(t)
		u := domain.User{
			ID: idx.New().String(), Email: "swim@example.com",
			Name: "Sam", PasswordHash: "x", Role: domain.RoleAthlete,
		}
		require.NoError(t, st.Users().CreateUser(ctx, u))

		dup := u
		dup.ID = idx.New().String()
		require.Error(t, st.Users().CreateUser(ctx, dup))
	})

	t.Run("missing user", func(t *testing.T) {
		st := newTestStore(t)
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit on nil", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")

		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Invitations().CreateInvitation(ctx, inv)
		})
		require.NoError(t, err)

		_, err = st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		st := newTestStore(t)
		inv := pendingInvitation("swim@example.com")
		boom := errors.New("boom")

		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
