package clubsdk

import (
	"context"
	"net/http"
)

// CreateInvitations invites a batch of emails. The call succeeds whenever the
// batch was processed; inspect the response for per-email failures.
func (s *Session) CreateInvitations(ctx context.Context, emails []string, role string) (*CreateInvitationsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invitations", CreateInvitationsRequest{
		Emails: emails,
		Role:   role,
	})
	if err != nil {
		return nil, err
	}

	var out CreateInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns every invitation, newest first.
func (s *Session) ListInvitations(ctx context.Context) (*ListInvitationsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invitations", nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendInvitation rotates the invitation's token and sends a fresh email.
// The previously emailed link stops working.
func (s *Session) ResendInvitation(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/invitations/"+id+"/resend", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteInvitation removes an invitation. Deleting an unknown id succeeds.
func (s *Session) DeleteInvitation(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/invitations/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
