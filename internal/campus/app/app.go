package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/drafting"
	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	campusmail "github.com/aussiebroadwan/campus/internal/campus/mail"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the campus service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	catalog  *catalog.Catalog
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	drafter  drafting.Drafter
	mailer   campusmail.Sender

	// Services
	authService         *service.AuthService
	eventService        *service.EventService
	achievementService  *service.AchievementService
	resultService       *service.ResultService
	analyticsService    *service.AnalyticsService
	reportService       *service.ReportService
	annualReportService *service.AnnualReportService
	scheduler           *service.Scheduler

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	app.catalog = cat

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.signer, app.verifier, err = InitTokenKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}

	if err := app.initOutbound(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.bootstrapAdmin(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.scheduler.Start()

	app.logger.Info("campus service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		app.scheduler.Stop()
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down campus service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Waits for a running job to finish
	app.scheduler.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("campus service stopped")
	return nil
}

// LoadCatalog returns the built-in departments unless DEPARTMENTS_FILE names
// a replacement.
func LoadCatalog(cfg Config) (*catalog.Catalog, error) {
	if cfg.DepartmentsFile == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(cfg.DepartmentsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	return cat, nil
}

// OpenStore opens the database file and applies migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	db, err := sqlite.NewStore(sqlite.FileDSN(cfg.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initOutbound picks the drafter and mailer. Both fall back to local
// implementations when no API key is configured.
func (app *Application) initOutbound() error {
	drafter, err := NewDrafter(context.Background(), app.cfg)
	if err != nil {
		return err
	}
	app.drafter = drafter
	if app.cfg.GeminiAPIKey == "" {
		app.logger.Info("GEMINI_API_KEY not set, drafting reports offline")
	}

	mailer, err := NewMailer(app.cfg)
	if err != nil {
		return err
	}
	app.mailer = mailer
	if app.cfg.SendGridAPIKey == "" {
		app.logger.Info("SENDGRID_API_KEY not set, logging mail to the console")
	}
	return nil
}

// NewDrafter returns the Gemini drafter when an API key is configured and the
// offline drafter otherwise.
func NewDrafter(ctx context.Context, cfg Config) (drafting.Drafter, error) {
	if cfg.GeminiAPIKey == "" {
		return drafting.OfflineDrafter{}, nil
	}
	gemini, err := drafting.NewGeminiDrafter(ctx, drafting.GeminiConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return nil, err
	}
	if cfg.DraftFallback {
		return drafting.Fallback{Primary: gemini, Secondary: drafting.OfflineDrafter{}}, nil
	}
	return gemini, nil
}

// NewMailer returns SendGrid when an API key is configured and the console
// sender otherwise.
func NewMailer(cfg Config) (campusmail.Sender, error) {
	from, err := mail.ParseAddress(cfg.MailFrom)
	if err != nil {
		return nil, fmt.Errorf("MAIL_FROM: %w", err)
	}
	if cfg.SendGridAPIKey == "" {
		return campusmail.NewConsole(*from, "[Campus] "), nil
	}
	return campusmail.NewSendGrid(campusmail.SendGridConfig{
		APIKey:        cfg.SendGridAPIKey,
		From:          *from,
		SubjectPrefix: "[Campus] ",
	}), nil
}

// bootstrapAdmin seeds the first college admin from BOOTSTRAP_ADMIN_* when
// no admin exists yet.
func (app *Application) bootstrapAdmin() error {
	if app.cfg.BootstrapAdminEmail == "" || app.cfg.BootstrapAdminPassword == "" {
		return nil
	}

	ctx := slogx.WithContext(context.Background(), app.logger)
	user, err := app.authService.Bootstrap(ctx, app.cfg.BootstrapAdminEmail, "", app.cfg.BootstrapAdminPassword)
	switch {
	case errors.Is(err, service.ErrAlreadyBootstrapped):
		app.logger.Info("bootstrap skipped, an admin already exists")
		return nil
	case err != nil:
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	app.logger.Info("bootstrapped college admin", "user_id", user.ID)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	app.authService = &service.AuthService{
		Store:    app.db,
		Catalog:  app.catalog,
		Signer:   app.signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.eventService = &service.EventService{Store: app.db, Catalog: app.catalog}
	app.achievementService = &service.AchievementService{Store: app.db, Catalog: app.catalog}
	app.resultService = &service.ResultService{
		Store:      app.db,
		Catalog:    app.catalog,
		UploadsDir: app.cfg.UploadsDir,
	}
	app.analyticsService = &service.AnalyticsService{
		Store:    app.db,
		Catalog:  app.catalog,
		PassMark: app.cfg.PassMark,
	}
	app.reportService = &service.ReportService{
		Store:         app.db,
		Drafter:       app.drafter,
		Dir:           app.cfg.ReportsDir,
		PublicBaseURL: app.cfg.PublicBaseURL,
	}
	app.annualReportService = &service.AnnualReportService{
		Store:         app.db,
		Events:        app.eventService,
		Achievements:  app.achievementService,
		Analytics:     app.analyticsService,
		Drafter:       app.drafter,
		Dir:           app.cfg.AnnualReportsDir,
		PublicBaseURL: app.cfg.PublicBaseURL,
	}

	scheduler, err := service.NewScheduler(app.db, app.eventService, app.mailer, app.logger, service.SchedulerConfig{
		StatusSpec:   app.cfg.StatusCron,
		ReminderSpec: app.cfg.ReminderCron,
		LeadDays:     app.cfg.ReminderLeadDays,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize scheduler: %w", err)
	}
	app.scheduler = scheduler
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.verifier, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.Catalog = app.catalog
	router.AuthService = app.authService
	router.EventService = app.eventService
	router.AchievementService = app.achievementService
	router.ResultService = app.resultService
	router.AnalyticsService = app.analyticsService
	router.ReportService = app.reportService
	router.AnnualReportService = app.annualReportService
	router.ReportsDir = app.cfg.ReportsDir
	router.AnnualReportsDir = app.cfg.AnnualReportsDir
	router.MaxUploadBytes = app.cfg.MaxUploadBytes

	router.Use(cors.New(cors.Options{
		AllowedOrigins: app.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         600,
	}).Handler)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
