package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEdDSASignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralSignerEdDSA("clubgate-key-001")
	require.NoError(t, err)
	require.Equal(t, "EdDSA", signer.Alg())

	verifier := NewVerifierEdDSA(signer.PublicKey(), "clubgate")

	t.Run("valid token round trips", func(t *testing.T) {
		claims := NewSessionClaims(
			"user-123", "admin", "coach@swim.org", "Coach",
			time.Hour, "clubgate", time.Now().UTC(),
		)

		tokenStr, err := signer.Sign(claims)
		require.NoError(t, err)

		parsed, err := verifier.Verify(tokenStr)
		require.NoError(t, err)
		require.Equal(t, "user-123", parsed.Subject)
		require.Equal(t, "admin", parsed.Role)
		require.Equal(t, "coach@swim.org", parsed.Email)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		claims := NewSessionClaims(
			"user-123", "athlete", "kid@swim.org", "Kid",
			time.Hour, "clubgate", time.Now().UTC().Add(-2*time.Hour),
		)

		tokenStr, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(tokenStr)
		require.Error(t, err)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		claims := NewSessionClaims(
			"user-123", "athlete", "kid@swim.org", "Kid",
			time.Hour, "someone-else", time.Now().UTC(),
		)

		tokenStr, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(tokenStr)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("rejects tokens signed by a different key", func(t *testing.T) {
		other, err := NewEphemeralSignerEdDSA("other-key")
		require.NoError(t, err)

		claims := NewSessionClaims(
			"user-123", "athlete", "kid@swim.org", "Kid",
			time.Hour, "clubgate", time.Now().UTC(),
		)
		tokenStr, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(tokenStr)
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestClaimsValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	fresh := NewSessionClaims("u", "supporter", "", "", time.Minute, "clubgate", now)
	require.NoError(t, fresh.ValidateExpiry())

	stale := NewSessionClaims("u", "supporter", "", "", time.Minute, "clubgate", now.Add(-time.Hour))
	require.ErrorIs(t, stale.ValidateExpiry(), ErrExpired)

	future := NewSessionClaims("u", "supporter", "", "", time.Minute, "clubgate", now.Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), ErrNotYetValid)
}
