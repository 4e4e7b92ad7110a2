package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/pkg/clubsdk"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

type RegisterVerifyHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Verify Invitation
//	@Description	Check an emailed registration link. Both the token and the email must match
//	@Description	a pending, unexpired invitation. Verification is read-only and can be
//	@Description	retried; the registration UI calls it before showing the signup form.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.VerifyRequest	true	"Token and email from the link"
//	@Success		200		{object}	clubsdk.VerifyResponse	"invitation_id, email, role"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		410		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/register/verify [post].
func (h *RegisterVerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	verified, err := h.InvitationService.VerifyInvitation(ctx, req.Token, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest, "token and email are required").WriteError(w)
		case errors.Is(err, service.ErrInvitationInvalid):
			clubsdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrInvitationExpired):
			clubsdk.ErrExpired.WriteError(w)
		default:
			log.Error("failed to verify invitation", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.VerifyResponse{
		InvitationID: verified.ID,
		Email:        verified.Email,
		Role:         verified.Role.String(),
	})
}
