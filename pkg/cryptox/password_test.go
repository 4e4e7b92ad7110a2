package cryptox

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	SetPepperPath(filepath.Join(t.TempDir(), "pepper"))

	t.Run("round trip verifies", func(t *testing.T) {
		hash, err := HashPassword("Sw1mF@st!")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

		require.NoError(t, VerifyPassword("Sw1mF@st!", hash))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		hash, err := HashPassword("correct")
		require.NoError(t, err)

		require.ErrorIs(t, VerifyPassword("incorrect", hash), ErrPasswordMismatch)
	})

	t.Run("salts make hashes unique", func(t *testing.T) {
		a, err := HashPassword("same-password")
		require.NoError(t, err)
		b, err := HashPassword("same-password")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("malformed hashes are rejected", func(t *testing.T) {
		require.Error(t, VerifyPassword("x", "not-a-phc-string"))
		require.Error(t, VerifyPassword("x", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"))
	})
}
