package clubsdk

import (
	"context"
	"net/http"
)

// VerifyInvitation checks a registration link before showing the signup form.
// It never mutates anything and may be retried freely.
func (c *Client) VerifyInvitation(ctx context.Context, token, email string) (*VerifyResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/register/verify", VerifyRequest{
		Token: token,
		Email: email,
	})
	if err != nil {
		return nil, err
	}

	var out VerifyResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation marks an invitation accepted for an already existing user.
// Register is the usual path; this exists for integrations that create
// accounts elsewhere. The invitation id comes from VerifyInvitation.
func (c *Client) AcceptInvitation(ctx context.Context, invitationID, userID string) error {
	resp, err := c.postJSON(ctx, "/v1/register/accept", AcceptRequest{
		InvitationID: invitationID,
		UserID:       userID,
	})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Register creates an account from a valid invitation link and accepts the
// invitation in the same call.
func (c *Client) Register(ctx context.Context, token, email, name, password string) (*RegisterResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/register", RegisterRequest{
		Token:    token,
		Email:    email,
		Name:     name,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var out RegisterResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
