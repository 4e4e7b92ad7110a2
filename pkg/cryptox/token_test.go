package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces hex of twice the byte length", func(t *testing.T) {
		token, err := GenerateToken(InviteTokenSize)
		require.NoError(t, err)
		require.Len(t, token, 2*InviteTokenSize)

		_, err = hex.DecodeString(token)
		require.NoError(t, err)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := GenerateToken(0)
		require.Error(t, err)

		_, err = GenerateToken(-5)
		require.Error(t, err)
	})

	t.Run("successive tokens differ", func(t *testing.T) {
		a, err := GenerateToken(InviteTokenSize)
		require.NoError(t, err)
		b, err := GenerateToken(InviteTokenSize)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, FingerprintToken("abc"), FingerprintToken("abc"))
	})

	t.Run("differs per token", func(t *testing.T) {
		require.NotEqual(t, FingerprintToken("abc"), FingerprintToken("abd"))
	})

	t.Run("is hex encoded sha256", func(t *testing.T) {
		fp := FingerprintToken("anything")
		require.Len(t, fp, 64)
		_, err := hex.DecodeString(fp)
		require.NoError(t, err)
	})
}

func TestConstantTimeEquals(t *testing.T) {
	t.Parallel()

	require.True(t, ConstantTimeEquals("same", "same"))
	require.False(t, ConstantTimeEquals("same", "other"))
	require.False(t, ConstantTimeEquals("same", "sam"))
}
