package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fundline/internal/config"
	"fundline/internal/db"
	"fundline/internal/model"
	"fundline/internal/repository"
	"fundline/internal/service"
)

type seedStartup struct {
	registration service.StartupRegistration
	approve      bool
}

type seedInterest struct {
	startupEmail  string
	investorEmail string
	message       string
	amount        string
}

var seedInvestors = []service.InvestorRegistration{
	{Email: "alice@sequoiaventures.example", FullName: "Alice Moran", Company: "Sequoia Ventures"},
	{Email: "bob@nordcap.example", FullName: "Bob Lindqvist", Company: "Nord Capital"},
	{Email: "chen@angelsyndicate.example", FullName: "Chen Wu", Company: "Angel Syndicate"},
}

var seedStartups = []seedStartup{
	{
		registration: service.StartupRegistration{
			Email:              "founder@voltaic.example",
			CompanyName:        "Voltaic Energy",
			ProductDescription: "Grid-scale flow batteries for renewable storage.",
			ImageURLs:          []string{"https://cdn.voltaic.example/cell.jpg"},
			PreviousFunding:    "Seed round of $1.2M in 2024",
			FullName:           "Dana Reyes",
		},
		approve: true,
	},
	{
		registration: service.StartupRegistration{
			Email:              "founder@platewise.example",
			CompanyName:        "Platewise",
			ProductDescription: "Meal logistics platform for independent restaurants.",
			ImageURLs:          []string{"https://cdn.platewise.example/app.png", "https://cdn.platewise.example/fleet.png"},
			FullName:           "Omar Haddad",
		},
		approve: true,
	},
	{
		registration: service.StartupRegistration{
			Email:              "founder@quietloom.example",
			CompanyName:        "Quietloom",
			ProductDescription: "Acoustic textile panels from recycled fibers.",
			FullName:           "Mia Tanaka",
		},
	},
}

var seedInterests = []seedInterest{
	{startupEmail: "founder@voltaic.example", investorEmail: "alice@sequoiaventures.example", message: "Interested in leading the round.", amount: "250000"},
	{startupEmail: "founder@voltaic.example", investorEmail: "bob@nordcap.example", amount: "100000"},
	{startupEmail: "founder@platewise.example", investorEmail: "chen@angelsyndicate.example", message: "Happy to intro restaurant groups.", amount: "50000"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.StartupPitch{},
		&model.InvestorProfile{},
		&model.Interest{},
		&model.Report{},
		&model.AdminAction{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	pitchRepo := repository.NewPitchRepository(gormDB)
	profileRepo := repository.NewInvestorProfileRepository(gormDB)
	interestRepo := repository.NewInterestRepository(gormDB)
	adminActionRepo := repository.NewAdminActionRepository(gormDB)

	registrationService := service.NewRegistrationService(userRepo, pitchRepo, profileRepo, nil, nil)
	pitchService := service.NewPitchService(pitchRepo, interestRepo, userRepo, nil, nil)
	interestService := service.NewInterestService(pitchRepo, userRepo, interestRepo, nil)

	ctx := context.Background()

	admin, err := registrationService.BootstrapAdmin(ctx, "admin@fundline.example", "Platform Admin")
	if err != nil {
		log.Fatalf("Failed to bootstrap admin: %v", err)
	}

	investorIDs := make(map[string]uuid.UUID, len(seedInvestors))
	for _, inv := range seedInvestors {
		res, err := registrationService.RegisterInvestor(ctx, inv)
		if err != nil {
			log.Fatalf("Failed to register investor %s: %v", inv.Email, err)
		}
		investorIDs[inv.Email] = res.UserID
	}

	startupIDs := make(map[string]uuid.UUID, len(seedStartups))
	approved := 0
	for _, su := range seedStartups {
		res, err := registrationService.RegisterStartup(ctx, su.registration)
		if err != nil {
			log.Fatalf("Failed to register startup %s: %v", su.registration.CompanyName, err)
		}
		startupIDs[su.registration.Email] = res.StartupID
		if su.approve {
			if err := pitchService.Moderate(ctx, res.StartupID, model.PitchStatusApproved); err != nil {
				log.Fatalf("Failed to approve %s: %v", su.registration.CompanyName, err)
			}
			approved++
		}
	}

	for _, in := range seedInterests {
		amount, err := decimal.NewFromString(in.amount)
		if err != nil {
			log.Fatalf("Invalid seed amount %q: %v", in.amount, err)
		}
		_, err = interestService.ExpressInterest(
			ctx,
			startupIDs[in.startupEmail],
			investorIDs[in.investorEmail].String(),
			in.message,
			amount,
		)
		if err != nil {
			log.Fatalf("Failed to record interest from %s: %v", in.investorEmail, err)
		}
	}

	// Audit the seed run itself
	if err := adminActionRepo.Create(ctx, &model.AdminAction{
		AdminUserID: &admin.UserID,
		Action:      "seed_demo_data",
		At:          time.Now().UTC(),
	}); err != nil {
		log.Printf("Warning: failed to record seed audit entry: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Investors registered: %d", len(seedInvestors))
	log.Printf("  - Startups registered: %d (%d approved)", len(seedStartups), approved)
	log.Printf("  - Interests recorded: %d", len(seedInterests))
}
