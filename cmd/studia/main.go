package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dcastillo/studia/internal/api"
	"github.com/dcastillo/studia/internal/config"
	"github.com/dcastillo/studia/internal/domain"
	"github.com/dcastillo/studia/internal/log"
	"github.com/dcastillo/studia/internal/service"
	"github.com/dcastillo/studia/internal/state"
	"github.com/dcastillo/studia/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("studia %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("studia requires an interactive terminal")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting studia", "version", Version)

	// Shared token store, seeded from the persisted session when present
	tokens := api.NewTokenStore(cfg.Session.Token)

	// API client and per-entity services
	client := api.NewClient(cfg.API.URL, tokens, logger)
	authAPI := api.NewAuthService(client)
	careerAPI := api.NewCareerService(client)
	courseAPI := api.NewCourseService(client)
	deliverableAPI := api.NewDeliverableService(client)
	taskAPI := api.NewTaskService(client)
	sessionAPI := api.NewSessionService(client)

	// In-memory state shared between the async flows and the view
	store := state.NewStore()

	// Orchestrators
	authSvc := service.NewAuthService(authAPI, tokens, config.Sessions{}, logger)
	careerSvc := service.NewCareerService(careerAPI, store, logger)
	courseSvc := service.NewCourseService(courseAPI, store, logger)
	deliverableSvc := service.NewDeliverableService(deliverableAPI, store, logger)
	taskSvc := service.NewTaskService(taskAPI, store, logger)
	sessionSvc := service.NewSessionService(sessionAPI, store, logger)

	// Restore the account identity for a persisted session so the app
	// can skip the login screen
	if cfg.HasSession() {
		authSvc.SetUser(domain.User{ID: cfg.Session.UserID, Name: cfg.Session.Username})
		logger.Info("restored session", "user", cfg.Session.UserID)
	}

	// Create TUI model
	model := tui.NewModel(store, authSvc, careerSvc, courseSvc, deliverableSvc, taskSvc, sessionSvc, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
