package club_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marlinswim/clubgate/pkg/clubsdk"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, _ := setupClubContainer(t)
	client := clubsdk.NewClient(baseURL)

	t.Run("livez", func(t *testing.T) {
		health, err := client.Livez(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
		require.NotEmpty(t, health.Uptime)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.Readyz(t.Context())
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
	})
}
