package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/cryptox"
	"github.com/marlinswim/clubgate/pkg/jwtx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// login endpoint cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService issues session tokens for registered members.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Issuer string

	// TokenTTL overrides jwtx.DefaultAccessTokenTTL when non-zero.
	TokenTTL time.Duration
}

// Session is a freshly issued login session.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL != 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Login verifies the password and mints a signed session token carrying the
// user's role. A mismatch and an unknown email are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidRequest
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempted with unknown email")
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempted with wrong password", slog.String("user_id", user.ID))
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.Any("error", err))
		return Session{}, err
	}

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims(
		user.ID, user.Role.String(), user.Email, user.Name,
		s.ttl(), s.Issuer, now,
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	log.Info("session issued",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}
