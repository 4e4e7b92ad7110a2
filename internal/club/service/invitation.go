package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/marlinswim/clubgate/internal/club/domain"
	clubmail "github.com/marlinswim/clubgate/internal/club/mail"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/cryptox"
	"github.com/marlinswim/clubgate/pkg/idx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// DefaultInviteTTL is how long an invitation link stays valid, counted from
// creation and restarted on every resend.
const DefaultInviteTTL = 7 * 24 * time.Hour

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationNotPending = errors.New("invitation is not pending")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrInvitationInvalid    = errors.New("invitation token or email is invalid")
	ErrDispatchFailed       = errors.New("invitation email could not be delivered")
)

// Per-item failure reasons surfaced in batch create results.
const (
	reasonInvalidEmail   = "invalid email address"
	reasonAccountExists  = "an account already exists for this email"
	reasonAlreadyPending = "an invitation is already pending for this email"
	reasonStoreFailure   = "could not persist invitation"
	reasonDispatchFailed = "invitation email could not be delivered"
)

// InvitationService owns the invitation lifecycle: batch creation, resend,
// deletion, listing, verification and acceptance.
type InvitationService struct {
	Store  store.Store
	Mailer clubmail.Mailer

	// BaseURL is the public origin embedded in registration links.
	BaseURL string

	// InviteTTL overrides DefaultInviteTTL when non-zero. Tests use a
	// negative TTL to mint already-expired invitations.
	InviteTTL time.Duration
}

// BatchResult reports per-email outcomes of a batch create. Entries appear in
// input order, though callers should not depend on that.
type BatchResult struct {
	Succeeded []string
	Failed    []FailedInvitation
}

type FailedInvitation struct {
	Email  string
	Reason string
}

// VerifiedInvitation is what a successful verification exposes to the
// registration flow: just enough to drive account creation.
type VerifiedInvitation struct {
	ID    string
	Email string
	Role  domain.Role
}

func (s *InvitationService) ttl() time.Duration {
	if s.InviteTTL != 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

// CreateInvitations issues one invitation per email, independently. A failure
// on one email never aborts the rest; the result carries both lists. Emails
// whose owner already has an account, or already has a pending invitation,
// are reported as failed. The existence check and the insert are not atomic;
// at club scale the duplicate-pending race is accepted (see AcceptInvitation
// for where it self-corrects).
func (s *InvitationService) CreateInvitations(
	ctx context.Context,
	emails []string,
	role domain.Role,
	createdBy string,
) (BatchResult, error) {
	log := slogx.FromContext(ctx)

	if len(emails) == 0 {
		return BatchResult{}, ErrInvalidRequest
	}
	if role == "" {
		role = domain.RoleSupporter
	}
	if !role.Invitable() {
		log.Warn("attempted to create invitation with non-invitable role",
			slog.String("role", role.String()),
		)
		return BatchResult{}, ErrInvalidRequest
	}

	var result BatchResult
	for _, raw := range emails {
		email := strings.TrimSpace(raw)

		reason, ok := s.createOne(ctx, email, role, createdBy)
		if !ok {
			result.Failed = append(result.Failed, FailedInvitation{Email: email, Reason: reason})
			continue
		}
		result.Succeeded = append(result.Succeeded, email)
	}

	log.Info("invitation batch processed",
		slog.Int("succeeded", len(result.Succeeded)),
		slog.Int("failed", len(result.Failed)),
		slog.String("role", role.String()),
		slog.String("created_by", createdBy),
	)

	return result, nil
}

// createOne handles a single email of a batch. Returns a failure reason, or
// ok=true on success.
func (s *InvitationService) createOne(
	ctx context.Context,
	email string,
	role domain.Role,
	createdBy string,
) (reason string, ok bool) {
	log := slogx.FromContext(ctx)

	if _, err := mail.ParseAddress(email); err != nil {
		return reasonInvalidEmail, false
	}

	// Reject emails that already have an account.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return reasonAccountExists, false
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for existing account", slog.Any("error", err))
		return reasonStoreFailure, false
	}

	// At most one pending invitation per email.
	if _, err := s.Store.Invitations().FindPendingByEmail(ctx, email); err == nil {
		return reasonAlreadyPending, false
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for pending invitation", slog.Any("error", err))
		return reasonStoreFailure, false
	}

	token, err := cryptox.GenerateToken(cryptox.InviteTokenSize)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return reasonStoreFailure, false
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: cryptox.FingerprintToken(token),
		Role:      role,
		Status:    domain.InvitationPending,
		CreatedBy: createdBy,
		ExpiresAt: time.Now().UTC().Add(s.ttl()),
	}

	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return reasonStoreFailure, false
	}

	// The invitation survives a delivery failure; resend recovers from it.
	if err := s.dispatchInvite(ctx, inv, token); err != nil {
		log.Warn("invitation persisted but email dispatch failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return reasonDispatchFailed, false
	}

	log.Debug("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("role", role.String()),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return "", true
}

// ResendInvitation rotates the token and expiry of a pending invitation and
// re-dispatches the email. The previous token stops verifying the moment the
// new fingerprint is persisted.
func (s *InvitationService) ResendInvitation(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	if id == "" {
		return ErrInvalidRequest
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	if inv.Status != domain.InvitationPending {
		log.Warn("attempted to resend non-pending invitation",
			slog.String("invitation_id", inv.ID),
			slog.String("status", string(inv.Status)),
		)
		return ErrInvitationNotPending
	}

	token, err := cryptox.GenerateToken(cryptox.InviteTokenSize)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return err
	}

	inv.TokenHash = cryptox.FingerprintToken(token)
	inv.ExpiresAt = time.Now().UTC().Add(s.ttl())

	if err := s.Store.Invitations().RotateInvitationToken(ctx, inv.ID, inv.TokenHash, inv.ExpiresAt); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to rotate invitation token",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.dispatchInvite(ctx, inv, token); err != nil {
		// Token already rotated; the admin sees the failure and can resend
		// again.
		log.Warn("invitation rotated but email dispatch failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return ErrDispatchFailed
	}

	log.Info("invitation resent",
		slog.String("invitation_id", inv.ID),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return nil
}

// DeleteInvitation hard-deletes an invitation. Deleting an id that does not
// exist is a silent no-op: DELETE is idempotent here.
func (s *InvitationService) DeleteInvitation(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidRequest
	}

	if err := s.Store.Invitations().DeleteInvitation(ctx, id); err != nil {
		slogx.FromContext(ctx).Error("failed to delete invitation",
			slog.String("invitation_id", id),
			slog.Any("error", err),
		)
		return err
	}

	slogx.FromContext(ctx).Info("invitation deleted", slog.String("invitation_id", id))
	return nil
}

// ListInvitations returns every invitation, newest first. No pagination; the
// club roster is small and the admin UI shows the full list.
func (s *InvitationService) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitations(ctx)
}

// VerifyInvitation is the pre-authentication check behind the registration
// link. It matches email and token fingerprint against a pending record,
// enforces lazy expiry, and never mutates anything, so it can be retried
// freely.
func (s *InvitationService) VerifyInvitation(
	ctx context.Context,
	token, email string,
) (VerifiedInvitation, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if token == "" || email == "" {
		return VerifiedInvitation{}, ErrInvalidRequest
	}

	fingerprint := cryptox.FingerprintToken(token)
	inv, err := s.Store.Invitations().FindPendingByEmailAndTokenHash(ctx, email, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("verification attempted with invalid token or email")
			return VerifiedInvitation{}, ErrInvitationInvalid
		}
		log.Error("failed to look up invitation", slog.Any("error", err))
		return VerifiedInvitation{}, err
	}

	if inv.Expired(time.Now().UTC()) {
		log.Warn("verification attempted with expired invitation",
			slog.String("invitation_id", inv.ID),
			slog.Time("expires_at", inv.ExpiresAt),
		)
		return VerifiedInvitation{}, ErrInvitationExpired
	}

	// Older records may predate the role column; default conservatively.
	role := inv.Role
	if role == "" {
		role = domain.RoleSupporter
	}

	return VerifiedInvitation{ID: inv.ID, Email: inv.Email, Role: role}, nil
}

// AcceptInvitation is the single mutating transition out of pending. It is
// called by the registration flow after the account exists, so it requires no
// administrator privilege.
func (s *InvitationService) AcceptInvitation(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return ErrInvalidRequest
	}
	return acceptInvitation(ctx, s.Store, id, userID)
}

// acceptInvitation runs against either the root store or a transaction, so
// registration can accept atomically with user creation.
func acceptInvitation(ctx context.Context, st store.Store, id, userID string) error {
	log := slogx.FromContext(ctx)

	inv, err := st.Invitations().GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	if inv.Status != domain.InvitationPending {
		log.Warn("attempted to accept non-pending invitation",
			slog.String("invitation_id", inv.ID),
			slog.String("status", string(inv.Status)),
		)
		return ErrInvitationNotPending
	}

	if inv.Expired(time.Now().UTC()) {
		log.Warn("attempted to accept expired invitation",
			slog.String("invitation_id", inv.ID),
			slog.Time("expires_at", inv.ExpiresAt),
		)
		return ErrInvitationExpired
	}

	if err := st.Invitations().MarkInvitationAccepted(ctx, inv.ID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to mark invitation accepted",
			slog.String("invitation_id", inv.ID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", userID),
	)

	return nil
}

// RegistrationLink builds the emailed link: the invitee lands on the register
// page with the token and their (url-encoded) email pre-filled.
func (s *InvitationService) RegistrationLink(token, email string) string {
	return fmt.Sprintf("%s/register?token=%s&email=%s",
		strings.TrimRight(s.BaseURL, "/"), token, url.QueryEscape(email))
}

func (s *InvitationService) dispatchInvite(ctx context.Context, inv domain.Invitation, token string) error {
	days := int(s.ttl().Hours() / 24)
	link := s.RegistrationLink(token, inv.Email)

	body := fmt.Sprintf(
		"Hello,\n\n"+
			"You have been invited to join the club as a %s.\n\n"+
			"Follow this link to create your account:\n\n  %s\n\n"+
			"The link is valid for %d days. If you were not expecting this "+
			"invitation you can ignore this email.\n",
		inv.Role, link, days,
	)

	return s.Mailer.Send(ctx, clubmail.Message{
		To:      inv.Email,
		Subject: "Your club membership invitation",
		Body:    body,
	})
}
