package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/jimpyjack/stream-donations/internal/config"
	"github.com/jimpyjack/stream-donations/internal/gmail"
	"github.com/jimpyjack/stream-donations/internal/handler"
	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/parse"
	"github.com/jimpyjack/stream-donations/internal/poller"
	"github.com/jimpyjack/stream-donations/internal/repository"
	"github.com/jimpyjack/stream-donations/internal/repository/memory"
	"github.com/jimpyjack/stream-donations/internal/repository/postgres"
	"github.com/jimpyjack/stream-donations/internal/router"
	"github.com/jimpyjack/stream-donations/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Config validation failed:", err)
	}

	appLogger := logger.New()

	// Initialize repositories (postgres when DATABASE_URL is set, in-memory
	// otherwise)
	var donationRepo repository.DonationRepository
	var settingsRepo repository.SettingsRepository

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := postgres.InitializeDatabase(db); err != nil {
			log.Fatal("Failed to initialize database:", err)
		}

		donationRepo = postgres.NewPostgresDonationRepository(db)
		settingsRepo = postgres.NewPostgresSettingsRepository(db)

		appLogger.Info("Using PostgreSQL repositories")
	} else {
		donationRepo = memory.NewInMemoryDonationRepository()
		settingsRepo = memory.NewInMemorySettingsRepository()

		appLogger.Info("Using in-memory repositories")
	}

	// Mail transport
	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to resolve timezone:", err)
	}
	mailClient, err := gmail.NewClient(cfg.GmailAccessToken, location, cfg.MaxSearchResults, appLogger)
	if err != nil {
		log.Fatal("Failed to create Gmail client:", err)
	}

	// Initialize services
	pollService := service.NewPollService(donationRepo, mailClient, parse.Providers(), appLogger)
	donationService := service.NewDonationService(donationRepo, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)
	rouletteService := service.NewRouletteService(settingsRepo, appLogger)

	// Background poll job; manual /api/poll triggers may overlap with it
	pollJob := poller.NewPollJob(pollService, time.Duration(cfg.PollIntervalSeconds)*time.Second, appLogger)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	pollHandler := handler.NewPollHandler(pollService, e.Logger)
	donationHandler := handler.NewDonationHandler(donationService, e.Logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, e.Logger)
	soundbiteHandler := handler.NewSoundbiteHandler(settingsService, cfg.MediaDir, e.Logger)
	rouletteHandler := handler.NewRouletteHandler(rouletteService, e.Logger)

	router.SetupRoutes(e, pollHandler, donationHandler, settingsHandler, soundbiteHandler, rouletteHandler)

	// Serve alert sounds and soundbites to the overlay
	e.Static("/media", cfg.MediaDir)

	go pollJob.Start()
	defer pollJob.Stop()

	appLogger.Info("Starting server on port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		appLogger.Error("Failed to start server:", err)
	}
}
