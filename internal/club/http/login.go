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

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Authenticate with email and password and receive a short-lived session
//	@Description	token. Unknown emails and wrong passwords return the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.LoginRequest	true	"Email and password"
//	@Success		200		{object}	clubsdk.LoginResponse	"token, expires_at, user"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clubsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "Invalid JSON body").WriteError(w)
		return
	}

	session, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRequest):
			clubsdk.NewAPIError(http.StatusBadRequest,
				clubsdk.ErrorCodeInvalidRequest, "email and password are required").WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			clubsdk.NewAPIError(http.StatusUnauthorized,
				clubsdk.ErrorCodeUnauthorized, "Invalid email or password").WriteError(w)
		default:
			log.Error("failed to log in", "err", err)
			clubsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, clubsdk.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User: clubsdk.User{
			ID:    session.User.ID,
			Email: session.User.Email,
			Name:  session.User.Name,
			Role:  session.User.Role.String(),
		},
	})
}
