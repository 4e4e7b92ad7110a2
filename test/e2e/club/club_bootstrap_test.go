package club_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/pkg/clubsdk"
)

func TestBootstrap(t *testing.T) {
	baseURL, _ := setupClubContainer(t)
	client := clubsdk.NewClient(baseURL)
	ctx := t.Context()

	t.Run("wrong token is rejected", func(t *testing.T) {
		_, err := client.Bootstrap(ctx, "wrong-token", adminEmail, adminName, adminPassword)
		assertAPIError(t, err, http.StatusUnauthorized, "bootstrap with wrong token")
	})

	t.Run("first admin can be created and log in", func(t *testing.T) {
		session := bootstrapAdmin(t, client)
		require.Equal(t, adminEmail, session.User.Email)
		require.Equal(t, "admin", session.User.Role)
		require.NotEmpty(t, session.Token())
	})

	t.Run("bootstrap is closed after the first admin exists", func(t *testing.T) {
		_, err := client.Bootstrap(ctx, bootstrapToken, "second@example.com", "Second Admin", adminPassword)
		assertAPIError(t, err, http.StatusConflict, "second bootstrap")
	})

	t.Run("login with wrong password fails", func(t *testing.T) {
		_, err := client.Login(ctx, adminEmail, "wrong-password")
		assertAPIError(t, err, http.StatusUnauthorized, "login with wrong password")
	})
}
