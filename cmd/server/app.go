package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/speakcoach/speakcoach-api/internal/config"
	"github.com/speakcoach/speakcoach-api/internal/platform/gemini"
	"github.com/speakcoach/speakcoach-api/internal/platform/postgres"
	"github.com/speakcoach/speakcoach-api/internal/platform/sendgrid"
	"github.com/speakcoach/speakcoach-api/internal/scheduler"
	"github.com/speakcoach/speakcoach-api/internal/scoring"
	"github.com/speakcoach/speakcoach-api/internal/service"
)

// application holds the assembled dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	sessionService  *service.SessionService
	reminderService *service.ReminderService
	promptService   *service.PromptService
	userService     *service.UserService

	scheduler *scheduler.Scheduler
}

// newApplication connects to the database, applies migrations, and wires
// every layer together.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	reminderStore := postgres.NewPostgresReminderStore(db, logger)
	promptStore := postgres.NewPostgresPromptStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create feedback generator: %w", err)
	}

	mailer, err := sendgrid.New(sendgrid.ConfigFromMail(cfg.Mail), logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}

	engine := scoring.NewEngine(nil)

	sessionService, err := service.NewSessionService(sessionStore, generator, engine, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reminderService, err := service.NewReminderService(reminderStore, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	promptService, err := service.NewPromptService(promptStore, generator, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	userService, err := service.NewUserService(userStore, 0, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reminderScheduler, err := scheduler.New(reminderStore, mailer, logger, scheduler.Config{
		Interval: time.Duration(cfg.Scheduler.IntervalSeconds) * time.Second,
		Subject:  cfg.Scheduler.Subject,
		Message:  cfg.Scheduler.Message,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create reminder scheduler: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		sessionService:  sessionService,
		reminderService: reminderService,
		promptService:   promptService,
		userService:     userService,
		scheduler:       reminderScheduler,
	}, nil
}

// setupDatabase establishes the database connection and configures the
// connection pool.
func setupDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}

// start runs the reminder scheduler and the HTTP server until a shutdown
// signal arrives, then drains both.
func (app *application) start(ctx context.Context) error {
	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	schedulerDone := make(chan struct{})
	if app.config.Scheduler.Enabled {
		go func() {
			defer close(schedulerDone)
			app.scheduler.Run(serverCtx)
		}()
	} else {
		app.logger.Info("reminder scheduler disabled by configuration")
		close(schedulerDone)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case sig := <-shutdownCh:
		app.logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		app.logger.Error("server failed", "error", err)
		cancel()
		<-schedulerDone
		return err
	}

	// Stop taking new requests, then stop the scheduler.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", "error", err)
		cancel()
		<-schedulerDone
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	cancel()
	<-schedulerDone

	app.logger.Info("server shutdown completed")
	return nil
}

// cleanup releases held resources. Safe to call once after start returns.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
