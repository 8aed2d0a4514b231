package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-content-api/api"
	"github.com/rpupo63/portfolio-content-api/auth"
	"github.com/rpupo63/portfolio-content-api/config"
	"github.com/rpupo63/portfolio-content-api/database"
	"github.com/rpupo63/portfolio-content-api/models"
	"github.com/rpupo63/portfolio-content-api/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	settings, err := config.Load(config.New())
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(settings)
	log.Info().Str("environment", settings.Environment).Str("dbType", settings.Database.Type).Msg("Initializing app...")

	db, err := database.Open(settings.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	currentDB := database.New(db)

	// If generating models, run generation and exit
	if settings.GenerateModels {
		log.Info().Str("outPath", settings.GeneratedModelsOutputPath).Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, settings.GeneratedModelsOutputPath); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if settings.GenerateColumnReport {
		log.Info().Msg("Generating column mismatch report...")
		mismatches, err := models.GenerateColumnMismatchReport(db)
		if err != nil {
			log.Fatal().Err(err).Msg("Error generating column report")
		}
		for table, columns := range mismatches {
			log.Warn().Str("table", table).Strs("columns", columns).Msg("column mismatch")
		}
		return
	}

	if settings.AutoMigrate {
		if err := currentDB.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Error migrating database")
		}
	}

	if settings.SeedDatabase {
		seedTemplate(currentDB, settings)
	}

	server, err := api.NewServer(currentDB, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Listen for interrupt signals to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	reason := server.Run(stop, 30*time.Second)
	log.Info().Msgf("Closing server: %v", reason)
}

// setupLogging configures the global zerolog logger: console output outside production, JSON inside
func setupLogging(settings config.Settings) {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if settings.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}

func seedTemplate(db database.Database, settings config.Settings) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := services.NewSeeder(db, auth.NewPasswordService())
	created, err := seeder.SeedTemplate(ctx, uuid.MustParse(settings.TemplateUserID), settings.SeedPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Error seeding template user")
	}
	if created {
		log.Info().Str("userId", settings.TemplateUserID).Msg("Seeded template user")
	} else {
		log.Info().Msg("Template user already present, skipping seed")
	}
}
