package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/domain"
	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type InvitationsCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Invitations
//	@Description	Invite a batch of email addresses with a shared role. Each email is processed
//	@Description	independently; the response lists which succeeded and which failed with a reason.
//	@Description	Role defaults to "supporter" when omitted. Admin-only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.CreateInvitationsRequest	true	"Emails and role"
//	@Success		200		{object}	clubsdk.CreateInvitationsResponse	"succeeded, failed"
//	@Failure		400		{object}	clubsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	clubsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	clubsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.CreateInvitationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	if len(req.Emails) == 0 {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "emails is required").WriteError(w)
		return
	}

	result, err := h.InvitationService.CreateInvitations(
		ctx, req.Emails, domain.Role(req.Role), httpx.UserIDFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest, "role must be athlete or supporter").WriteError(w)
			return
		}
		log.Error("failed to create invitations", "err", err)
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	resp := clubsdk.CreateInvitationsResponse{
		Succeeded: result.Succeeded,
		Failed:    make([]clubsdk.FailedInvitation, 0, len(result.Failed)),
	}
	if resp.Succeeded == nil {
		resp.Succeeded = []string{}
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, clubsdk.FailedInvitation{
			Email:  f.Email,
			Reason: f.Reason,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
