package store

import (
	"context"
	"errors"
	"time"

	"github.com/marlinswim/clubgate/internal/club/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns separate and let services be
// tested against an alternative driver without touching their code.
type Store interface {
	Invitations() Invitations
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos, plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Invitations interface {
	// CreateInvitation inserts a new pending invitation (id provided by the
	// app via ULID; token_hash is the SHA-256 fingerprint of the raw token).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// FindPendingByEmail returns the pending invitation for an email, if any.
	// Used to enforce one-pending-per-email at creation time.
	FindPendingByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// FindPendingByEmailAndTokenHash is the verification lookup: both email
	// and fingerprint must match a pending record exactly.
	FindPendingByEmailAndTokenHash(ctx context.Context, email, tokenHash string) (domain.Invitation, error)

	// RotateInvitationToken replaces token_hash and expires_at on resend and
	// bumps updated_at.
	RotateInvitationToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error

	// MarkInvitationAccepted flips status to accepted and records who
	// accepted and when. Only valid from pending; callers check state first.
	MarkInvitationAccepted(ctx context.Context, id, acceptedBy string) error

	// DeleteInvitation hard-deletes a record. Deleting a missing id is not
	// an error.
	DeleteInvitation(ctx context.Context, id string) error

	// ListInvitations returns every invitation, newest first by created_at.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used for login and for the "account already exists"
	// check during invitation creation.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty reports whether no users exist yet (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}
