package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	_ "fundline/docs" // swagger docs

	"fundline/internal/auth"
	"fundline/internal/cache"
	"fundline/internal/config"
	"fundline/internal/db"
	"fundline/internal/handler"
	"fundline/internal/model"
	"fundline/internal/repository"
	"fundline/internal/router"
	"fundline/internal/service"
)

// @title Startup Fundraising Platform API
// @version 1.0
// @description CRUD backend for a fundraising marketplace connecting startups and investors.
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.AdminAction{},
			&model.Report{},
			&model.Interest{},
			&model.InvestorProfile{},
			&model.StartupPitch{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.StartupPitch{},
		&model.InvestorProfile{},
		&model.Interest{},
		&model.Report{},
		&model.AdminAction{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	pitchRepo := repository.NewPitchRepository(gormDB)
	profileRepo := repository.NewInvestorProfileRepository(gormDB)
	interestRepo := repository.NewInterestRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	adminActionRepo := repository.NewAdminActionRepository(gormDB)

	// Initialize services
	auditLogger := service.NewAuditLogger(adminActionRepo)
	registrationService := service.NewRegistrationService(userRepo, pitchRepo, profileRepo, cacheClient, auditLogger)
	pitchService := service.NewPitchService(pitchRepo, interestRepo, userRepo, cacheClient, auditLogger)
	interestService := service.NewInterestService(pitchRepo, userRepo, interestRepo, cacheClient)
	reportService := service.NewReportService(reportRepo)
	analyticsService := service.NewAnalyticsService(userRepo, pitchRepo, interestRepo)

	// Initialize handlers
	diagnosticHandler := handler.NewDiagnosticHandler(gormDB)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	pitchHandler := handler.NewPitchHandler(pitchService, interestService)
	reportHandler := handler.NewReportHandler(reportService)
	adminHandler := handler.NewAdminHandler(registrationService, pitchService, analyticsService)

	// Register routes
	router.Register(
		e,
		auth.AllowAll{},
		diagnosticHandler,
		registrationHandler,
		pitchHandler,
		reportHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
