package clubsdk

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// CreateInvitationsRequest invites a batch of email addresses with a shared
// role. Role defaults to "supporter" when empty.
type CreateInvitationsRequest struct {
	Emails []string `json:"emails"`
	Role   string   `json:"role,omitempty"`
}

// FailedInvitation explains why one email of a batch was not invited.
type FailedInvitation struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// CreateInvitationsResponse reports per-email outcomes. A batch never fails
// as a whole; callers inspect both lists.
type CreateInvitationsResponse struct {
	Succeeded []string           `json:"succeeded"`
	Failed    []FailedInvitation `json:"failed"`
}

// Invitation is the admin-facing view of an invitation. The token never
// appears here; it only ever exists in the emailed link.
type Invitation struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	Expired    bool       `json:"expired"`
	CreatedBy  string     `json:"created_by"`
	ExpiresAt  time.Time  `json:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	AcceptedBy string     `json:"accepted_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ListInvitationsResponse holds every invitation, newest first.
type ListInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

// VerifyRequest checks an emailed registration link before showing the
// registration form.
type VerifyRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// VerifyResponse confirms a link is usable and reveals the role it grants.
type VerifyResponse struct {
	InvitationID string `json:"invitation_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// AcceptRequest marks an invitation accepted on behalf of an existing user.
// The id comes from a prior verify call. Most callers use Register instead,
// which folds account creation and acceptance into one call.
type AcceptRequest struct {
	InvitationID string `json:"invitation_id"`
	UserID       string `json:"user_id"`
}

// RegisterRequest creates an account from a valid invitation link.
type RegisterRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// User is the public view of a member account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// RegisterResponse returns the freshly created account.
type RegisterResponse struct {
	User User `json:"user"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and its expiry.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// BootstrapRequest creates the first administrator, gated on the deployment
// bootstrap token.
type BootstrapRequest struct {
	BootstrapToken string `json:"bootstrap_token"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Password       string `json:"password"`
}

// BootstrapResponse returns the created administrator.
type BootstrapResponse struct {
	User User `json:"user"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
