package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/cryptox"
	"github.com/marlinswim/clubgate/pkg/idx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// MinPasswordLength keeps obviously weak passwords out. Anything longer is
// the user's business; argon2id does the rest.
const MinPasswordLength = 8

var ErrAccountExists = errors.New("an account already exists for this email")

// RegistrationService turns a verified invitation into a member account. It
// owns the only write path that creates non-bootstrap users.
type RegistrationService struct {
	Store       store.Store
	Invitations *InvitationService
}

// Register validates the invitation, creates the account and accepts the
// invitation in a single transaction. The role comes from the invitation, not
// the request, so an invitee cannot self-select a role.
func (s *RegistrationService) Register(
	ctx context.Context,
	token, email, name, password string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || len(password) < MinPasswordLength {
		return domain.User{}, ErrInvalidRequest
	}

	verified, err := s.Invitations.VerifyInvitation(ctx, token, email)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        verified.Email,
		Name:         name,
		PasswordHash: hash,
		Role:         verified.Role,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check inside the transaction; the pre-creation check in the
		// invitation service is advisory only.
		if _, err := tx.Users().GetUserByEmail(ctx, user.Email); err == nil {
			return ErrAccountExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}

		return acceptInvitation(ctx, tx, verified.ID, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrAccountExists) ||
			errors.Is(err, ErrInvitationNotPending) ||
			errors.Is(err, ErrInvitationExpired) ||
			errors.Is(err, ErrInvitationNotFound) {
			return domain.User{}, err
		}
		log.Error("registration transaction failed",
			slog.String("invitation_id", verified.ID),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("member registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
		slog.String("invitation_id", verified.ID),
	)

	return user, nil
}
