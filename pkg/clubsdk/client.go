package clubsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a clubgate instance. The zero-dependency constructor covers
// unauthenticated operations; Login returns a Session for admin calls.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with a sensible request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Session is an authenticated client bound to a login token. Tokens are
// short-lived and there is no refresh flow; when a call fails with
// ErrorCodeUnauthorized, log in again.
type Session struct {
	client *Client
	token  string

	// User is the account the session was issued for.
	User User

	// ExpiresAt is when the token lapses.
	ExpiresAt time.Time
}

// Login authenticates and returns a Session for subsequent admin calls.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     out.Token,
		User:      out.User,
		ExpiresAt: out.ExpiresAt,
	}, nil
}

// NewSessionFromToken wraps an existing session token, for callers that
// persisted one themselves.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// Token exposes the raw session token, e.g. to store it across restarts.
func (s *Session) Token() string { return s.token }
