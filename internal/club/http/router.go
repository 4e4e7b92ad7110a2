package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/pkg/httpx"
	"github.com/marlinswim/clubgate/pkg/jwtx"
	"github.com/marlinswim/clubgate/pkg/slogx"

	_ "github.com/marlinswim/clubgate/api/club" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	InvitationService   *service.InvitationService
	RegistrationService *service.RegistrationService
	AuthService         *service.AuthService
	AuthzService        *service.AuthzService
	BootstrapService    *service.BootstrapService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerRegistration()
	r.registerAuth()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			ClubGate API
//	@version		0.1.0
//	@description	Invitation-gated registration and login service for a swim club.
//	@description
//	@description	Membership is invitation-only: administrators invite email addresses, invitees
//	@description	follow an emailed link to register, and accounts inherit the invitation's role.
//
//	@contact.name	Marlin Swim Club
//	@contact.url	https://github.com/marlinswim/clubgate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	createHandler := &InvitationsCreateHandler{InvitationService: r.InvitationService}
	listHandler := &InvitationsListHandler{InvitationService: r.InvitationService}
	resendHandler := &InvitationsResendHandler{InvitationService: r.InvitationService}
	deleteHandler := &InvitationsDeleteHandler{InvitationService: r.InvitationService}

	// All invitation management is admin-only, moderate rate limit by user.
	adminChain := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			RequireAdmin(r.AuthzService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("POST /v1/invitations", adminChain(createHandler))
	r.Mux.Handle("GET /v1/invitations", adminChain(listHandler))
	r.Mux.Handle("POST /v1/invitations/{id}/resend", adminChain(resendHandler))
	r.Mux.Handle("DELETE /v1/invitations/{id}", adminChain(deleteHandler))
}

func (r *Router) registerRegistration() {
	verifyHandler := &RegisterVerifyHandler{InvitationService: r.InvitationService}
	acceptHandler := &RegisterAcceptHandler{InvitationService: r.InvitationService}
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}

	// Public endpoints handling secret tokens: strict rate limit by IP so
	// tokens cannot be brute forced.
	r.Mux.Handle("POST /v1/register/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/register/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// Strict rate limit by IP to slow down credential stuffing.
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Lenient rate limits; monitoring systems may poll frequently.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
