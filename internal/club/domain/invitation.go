package domain

import "time"

// InvitationStatus is a persisted lifecycle state. Expiry is never a status:
// it is computed from ExpiresAt at check time, and deletion is a hard delete.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Invitation authorizes one email address to self-register with a
// pre-assigned role. The raw token is never stored; TokenHash holds its
// SHA-256 fingerprint, so rotating the token on resend implicitly invalidates
// the previous one.
type Invitation struct {
	ID        string
	Email     string
	TokenHash string
	Role      Role
	Status    InvitationStatus
	CreatedBy string
	ExpiresAt time.Time

	AcceptedAt *time.Time
	AcceptedBy string // empty until accepted

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invitation's expiry has passed at the given
// instant. Callers decide what to do about it; nothing sweeps expired rows.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
