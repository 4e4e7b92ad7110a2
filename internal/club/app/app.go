package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/marlinswim/clubgate/internal/club/http"
	"github.com/marlinswim/clubgate/internal/club/mail"
	"github.com/marlinswim/clubgate/internal/club/service"
	"github.com/marlinswim/clubgate/internal/club/store"
	"github.com/marlinswim/clubgate/internal/club/store/drivers/sqlite"
	"github.com/marlinswim/clubgate/pkg/cryptox"
	"github.com/marlinswim/clubgate/pkg/jwtx"
	"github.com/marlinswim/clubgate/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the clubgate service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer jwtx.Signer
	mailer mail.Mailer

	invitationService   *service.InvitationService
	registrationService *service.RegistrationService
	authService         *service.AuthService
	authzService        *service.AuthzService
	bootstrapService    *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "clubgate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initSigner(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("clubgate starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down clubgate...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("clubgate stopped")
	return nil
}

func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initSigner() error {
	if app.cfg.SigningKeyFile != "" {
		pemKey, err := os.ReadFile(app.cfg.SigningKeyFile)
		if err != nil {
			return fmt.Errorf("failed to read signing key: %w", err)
		}
		signer, err := jwtx.NewSignerEdDSA("club-1", pemKey)
		if err != nil {
			return fmt.Errorf("failed to load signing key: %w", err)
		}
		app.signer = signer
		app.logger.Info("loaded persistent signing key", "kid", signer.KID())
		return nil
	}

	// Sessions signed with an ephemeral key do not survive a restart; members
	// just log in again.
	signer, err := jwtx.NewEphemeralSignerEdDSA("club-ephemeral")
	if err != nil {
		return fmt.Errorf("failed to generate signing key: %w", err)
	}
	app.signer = signer
	app.logger.Info("generated ephemeral signing key", "kid", signer.KID())
	return nil
}

func (app *Application) initMailer() {
	if app.cfg.SMTPHost != "" {
		app.mailer = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     app.cfg.SMTPHost,
			Port:     app.cfg.SMTPPort,
			Username: app.cfg.SMTPUsername,
			Password: app.cfg.SMTPPassword,
			From:     app.cfg.SMTPFrom,
		})
		app.logger.Info("smtp mailer configured", "host", app.cfg.SMTPHost)
		return
	}

	app.mailer = &mail.LogMailer{Logger: app.logger}
	app.logger.Info("no SMTP relay configured, invitation emails will be logged")
}

func (app *Application) initServices() {
	app.invitationService = &service.InvitationService{
		Store:     app.db,
		Mailer:    app.mailer,
		BaseURL:   app.cfg.BaseURL,
		InviteTTL: app.cfg.InviteTTL,
	}

	app.registrationService = &service.RegistrationService{
		Store:       app.db,
		Invitations: app.invitationService,
	}

	app.authService = &service.AuthService{
		Store:    app.db,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.SessionTTL,
	}

	app.authzService = &service.AuthzService{Store: app.db}

	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
}

func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifierEdDSA(app.signer.PublicKey(), app.cfg.Issuer)

	router := httpapi.NewRouter(verifier, BuildVersion, app.db, app.logger)
	router.InvitationService = app.invitationService
	router.RegistrationService = app.registrationService
	router.AuthService = app.authService
	router.AuthzService = app.authzService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
