package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TemplateUserID is the id of the seeded account whose content new users receive
const TemplateUserID = "808ceb8b-8da6-440c-952d-2d5c23b070e0"

const (
	devJWTSecret     = "dev-secret-change-me-in-production"
	minJWTSecretSize = 16
)

type Settings struct {
	Environment string
	LogLevel    string

	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AcceptedOrigins []string

	Database DatabaseSettings
	JWT      JWTSettings

	DefaultUserID             string
	TemplateUserID            string
	CloneTemplateOnRegister   bool
	SeedDatabase              bool
	SeedPassword              string
	AutoMigrate               bool
	GenerateModels            bool
	GenerateColumnReport      bool
	GeneratedModelsOutputPath string
}

type DatabaseSettings struct {
	Type         string // postgres, supa or sqlite
	DSN          string
	ReplicaDSNs  []string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
	SlowQuery    time.Duration
}

type JWTSettings struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// Load builds Settings from an environment map as returned by New
func Load(c map[string]string) (Settings, error) {
	s := Settings{
		Environment: GetString(c, "APP_ENV", "development"),
		LogLevel:    GetString(c, "LOG_LEVEL", "info"),

		Port:         GetString(c, "PORT", "8080"),
		ReadTimeout:  time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,

		AcceptedOrigins: GetList(c, "ACCEPTED_ORIGINS"),

		Database: DatabaseSettings{
			Type:         GetString(c, "DB_TYPE", "postgres"),
			DSN:          databaseDSN(c),
			ReplicaDSNs:  GetList(c, "DB_REPLICA_DSNS"),
			SQLitePath:   GetString(c, "SQLITE_PATH", "portfolio.db"),
			MaxOpenConns: GetInt(c, "DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: GetInt(c, "DB_MAX_IDLE_CONNS", 5),
			SlowQuery:    GetDuration(c, "DB_SLOW_QUERY_THRESHOLD", 2*time.Second),
		},
		JWT: JWTSettings{
			Secret: GetString(c, "JWT_SECRET", devJWTSecret),
			Expiry: GetDuration(c, "JWT_EXPIRY", time.Hour),
			Issuer: GetString(c, "JWT_ISSUER", "portfolio-content-api"),
		},

		DefaultUserID:             GetString(c, "DEFAULT_USER_ID", TemplateUserID),
		TemplateUserID:            GetString(c, "TEMPLATE_USER_ID", TemplateUserID),
		CloneTemplateOnRegister:   GetBool(c, "REGISTRATION_CLONE_TEMPLATE", true),
		SeedDatabase:              GetBool(c, "SEED_DATABASE", false),
		SeedPassword:              GetString(c, "SEED_PASSWORD", "portfolio123"),
		AutoMigrate:               GetBool(c, "AUTO_MIGRATE", true),
		GenerateModels:            GetBool(c, "GENERATE_MODELS", false),
		GenerateColumnReport:      GetBool(c, "GENERATE_COLUMN_REPORT", false),
		GeneratedModelsOutputPath: GetString(c, "GENERATED_MODELS_PATH", "./generated"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config validation failed: %w", err)
	}
	return s, nil
}

func (s Settings) IsProduction() bool {
	return s.Environment == "production"
}

func (s Settings) Validate() error {
	switch s.Database.Type {
	case "postgres", "supa", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", s.Database.Type)
	}

	if s.JWT.Expiry <= 0 {
		return errors.New("JWT_EXPIRY must be positive")
	}
	if len(s.JWT.Secret) < minJWTSecretSize {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretSize)
	}

	if _, err := uuid.Parse(s.TemplateUserID); err != nil {
		return fmt.Errorf("TEMPLATE_USER_ID is not a valid uuid: %w", err)
	}

	if s.IsProduction() {
		if s.JWT.Secret == devJWTSecret {
			return errors.New("JWT_SECRET must be set in production")
		}
		if s.Database.Type != "sqlite" && s.Database.DSN == "" {
			return errors.New("DATABASE_URL must be set in production")
		}
	}
	return nil
}

// databaseDSN prefers DATABASE_URL and otherwise assembles the supabase connection string
func databaseDSN(c map[string]string) string {
	if dsn := GetString(c, "DATABASE_URL", ""); dsn != "" {
		return dsn
	}
	if GetString(c, "DB_TYPE", "") != "supa" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		GetString(c, "SUPABASE_DB_HOST", ""),
		GetString(c, "SUPABASE_DB_USER", ""),
		GetString(c, "SUPABASE_DB_PASSWORD", ""),
		GetString(c, "SUPABASE_DB_NAME", ""),
		GetString(c, "SUPABASE_DB_PORT", "5432"),
	)
}
