package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/cryptox"
	"github.com/marlinswim/clubgate/pkg/idx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

var (
	// ErrBootstrapDone means at least one user already exists, so the
	// bootstrap endpoint is permanently closed.
	ErrBootstrapDone = errors.New("bootstrap already completed")

	// ErrBootstrapToken means the shared bootstrap secret did not match.
	ErrBootstrapToken = errors.New("invalid bootstrap token")
)

// BootstrapService creates the very first administrator. Every later account
// goes through the invitation flow; this exists only because someone has to
// send the first invitation.
type BootstrapService struct {
	Store store.Store

	// Token is the shared secret from deployment config. Empty disables
	// bootstrap entirely.
	Token string
}

// CreateFirstAdmin creates the initial admin account, gated on the deployment
// secret and on the user table being empty. The empty check and the insert
// run in one transaction so two racing calls cannot both succeed.
func (s *BootstrapService) CreateFirstAdmin(
	ctx context.Context,
	token, email, name, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if s.Token == "" || !cryptox.ConstantTimeEquals(token, s.Token) {
		log.Warn("bootstrap attempted with invalid token")
		return domain.User{}, ErrBootstrapToken
	}

	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidRequest
	}
	if name == "" || len(password) < MinPasswordLength {
		return domain.User{}, ErrInvalidRequest
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapDone
		}
		return tx.Users().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapDone) {
			log.Warn("bootstrap attempted after completion")
			return domain.User{}, ErrBootstrapDone
		}
		log.Error("bootstrap transaction failed", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("first administrator created", slog.String("user_id", user.ID))
	return user, nil
}
