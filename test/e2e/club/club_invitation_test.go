package club_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/pkg/clubsdk"
)

// TestInvitationLifecycle walks the whole membership flow against a live
// container: bootstrap, invite, verify, register, login, and the admin
// management operations around it.
func TestInvitationLifecycle(t *testing.T) {
	baseURL, container := setupClubContainer(t)
	client := clubsdk.NewClient(baseURL)
	ctx := t.Context()

	admin := bootstrapAdmin(t, client)

	const (
		athleteEmail = "athlete@example.com"
		athleteName  = "Sam Swimmer"
		athletePass  = "Swim123!pass"
	)

	t.Run("admin invites a batch with per-email outcomes", func(t *testing.T) {
		resp, err := admin.CreateInvitations(ctx,
			[]string{athleteEmail, "not-an-email"}, "athlete")
		require.NoError(t, err)
		require.Equal(t, []string{athleteEmail}, resp.Succeeded)
		require.Len(t, resp.Failed, 1)
		require.Equal(t, "not-an-email", resp.Failed[0].Email)
		require.NotEmpty(t, resp.Failed[0].Reason)
	})

	t.Run("duplicate pending invitation is reported as failed", func(t *testing.T) {
		resp, err := admin.CreateInvitations(ctx, []string{athleteEmail}, "athlete")
		require.NoError(t, err)
		require.Empty(t, resp.Succeeded)
		require.Len(t, resp.Failed, 1)
	})

	t.Run("invitation appears in the admin list", func(t *testing.T) {
		resp, err := admin.ListInvitations(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Invitations, 1)

		inv := resp.Invitations[0]
		require.Equal(t, athleteEmail, inv.Email)
		require.Equal(t, "athlete", inv.Role)
		require.Equal(t, "pending", inv.Status)
		require.False(t, inv.Expired)
	})

	token := latestInviteToken(t, container, athleteEmail)

	t.Run("emailed link verifies", func(t *testing.T) {
		resp, err := client.VerifyInvitation(ctx, token, athleteEmail)
		require.NoError(t, err)
		require.Equal(t, athleteEmail, resp.Email)
		require.Equal(t, "athlete", resp.Role)
		require.NotEmpty(t, resp.InvitationID)
	})

	t.Run("wrong email does not verify", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx, token, "other@example.com")
		assertAPIError(t, err, http.StatusUnauthorized, "verify with wrong email")
	})

	t.Run("resend rotates the link", func(t *testing.T) {
		list, err := admin.ListInvitations(ctx)
		require.NoError(t, err)
		require.NoError(t, admin.ResendInvitation(ctx, list.Invitations[0].ID))

		// Old link is dead, new one verifies.
		_, err = client.VerifyInvitation(ctx, token, athleteEmail)
		assertAPIError(t, err, http.StatusUnauthorized, "verify with rotated-out token")

		token = latestInviteToken(t, container, athleteEmail)
		_, err = client.VerifyInvitation(ctx, token, athleteEmail)
		require.NoError(t, err)
	})

	t.Run("invitee registers and the role comes from the invitation", func(t *testing.T) {
		resp, err := client.Register(ctx, token, athleteEmail, athleteName, athletePass)
		require.NoError(t, err)
		require.Equal(t, athleteEmail, resp.User.Email)
		require.Equal(t, "athlete", resp.User.Role)

		list, err := admin.ListInvitations(ctx)
		require.NoError(t, err)
		require.Equal(t, "accepted", list.Invitations[0].Status)
		require.Equal(t, resp.User.ID, list.Invitations[0].AcceptedBy)
	})

	t.Run("the used link cannot be replayed", func(t *testing.T) {
		_, err := client.Register(ctx, token, athleteEmail, athleteName, athletePass)
		assertAPIError(t, err, http.StatusUnauthorized, "register with used token")
	})

	t.Run("new member can log in but cannot manage invitations", func(t *testing.T) {
		member, err := client.Login(ctx, athleteEmail, athletePass)
		require.NoError(t, err)
		require.Equal(t, "athlete", member.User.Role)

		_, err = member.CreateInvitations(ctx, []string{"friend@example.com"}, "supporter")
		assertAPIError(t, err, http.StatusForbidden, "non-admin creating invitations")

		_, err = member.ListInvitations(ctx)
		assertAPIError(t, err, http.StatusForbidden, "non-admin listing invitations")
	})

	t.Run("unauthenticated invitation management is rejected", func(t *testing.T) {
		anonymous := client.NewSessionFromToken("not-a-real-token")
		_, err := anonymous.ListInvitations(ctx)
		assertAPIError(t, err, http.StatusUnauthorized, "invalid bearer token")
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		resp, err := admin.CreateInvitations(ctx, []string{"delete-me@example.com"}, "supporter")
		require.NoError(t, err)
		require.Len(t, resp.Succeeded, 1)

		list, err := admin.ListInvitations(ctx)
		require.NoError(t, err)

		var id string
		for _, inv := range list.Invitations {
			if inv.Email == "delete-me@example.com" {
				id = inv.ID
			}
		}
		require.NotEmpty(t, id)

		require.NoError(t, admin.DeleteInvitation(ctx, id))
		require.NoError(t, admin.DeleteInvitation(ctx, id))

		after, err := admin.ListInvitations(ctx)
		require.NoError(t, err)
		for _, inv := range after.Invitations {
			require.NotEqual(t, id, inv.ID)
		}
	})

	t.Run("invited email with an existing account is rejected", func(t *testing.T) {
		resp, err := admin.CreateInvitations(ctx, []string{athleteEmail}, "athlete")
		require.NoError(t, err)
		require.Empty(t, resp.Succeeded)
		require.Len(t, resp.Failed, 1)
	})
}

// TestRegisterValidation covers the request validation surface of the public
// registration endpoints.
func TestRegisterValidation(t *testing.T) {
	baseURL, _ := setupClubContainer(t)
	client := clubsdk.NewClient(baseURL)
	ctx := t.Context()

	t.Run("verify with unknown token", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx,
			"0000000000000000000000000000000000000000000000000000000000000000",
			"nobody@example.com")
		assertAPIError(t, err, http.StatusUnauthorized, "verify with unknown token")
	})

	t.Run("verify with missing fields", func(t *testing.T) {
		_, err := client.VerifyInvitation(ctx, "", "")
		assertAPIError(t, err, http.StatusBadRequest, "verify with missing fields")
	})

	t.Run("register with short password", func(t *testing.T) {
		_, err := client.Register(ctx,
			"0000000000000000000000000000000000000000000000000000000000000000",
			"nobody@example.com", "No Body", "short")
		assertAPIError(t, err, http.StatusBadRequest, "register with short password")
	})
}
