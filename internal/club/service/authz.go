package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// ErrForbidden is returned when an authenticated caller lacks the admin role.
var ErrForbidden = errors.New("administrator role required")

// AuthzService answers "is this caller an administrator?". The session token
// already carries a role claim; the store lookup is the fallback for tokens
// minted before the claim existed or for callers whose role changed since
// login.
type AuthzService struct {
	Store store.Store
}

// IsAdmin checks the claimed role first and consults the user store only when
// the claim is absent. A non-admin claim is trusted as-is; a role upgrade
// takes effect on the next login, which is the cheaper tradeoff at club scale.
func (s *AuthzService) IsAdmin(ctx context.Context, callerID, claimedRole string) (bool, error) {
	if claimedRole != "" {
		return claimedRole == domain.RoleAdmin.String(), nil
	}

	user, err := s.Store.Users().GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		slogx.FromContext(ctx).Error("failed to resolve caller role",
			slog.String("user_id", callerID),
			slog.Any("error", err),
		)
		return false, err
	}

	return user.Role == domain.RoleAdmin, nil
}

// RequireAdmin is IsAdmin with the decision folded into an error, for call
// sites that have nothing useful to do with a boolean.
func (s *AuthzService) RequireAdmin(ctx context.Context, callerID, claimedRole string) error {
	ok, err := s.IsAdmin(ctx, callerID, claimedRole)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
