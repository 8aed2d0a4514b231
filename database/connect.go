package database

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/rpupo63/portfolio-content-api/config"
)

// gormLogWriter routes GORM's logger output through zerolog
type gormLogWriter struct{}

func (gormLogWriter) Printf(format string, args ...interface{}) {
	log.Warn().Str("component", "gorm").Msgf(format, args...)
}

// Open connects to the database described by cfg. Postgres and supabase
// connections register read replicas when any are configured.
func Open(cfg config.DatabaseSettings) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger: logger.New(gormLogWriter{}, logger.Config{
			SlowThreshold:             cfg.SlowQuery,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		}),
	}

	switch cfg.Type {
	case "postgres", "supa":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("no connection string for DB_TYPE %q", cfg.Type)
		}
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
			return nil, fmt.Errorf("enabling uuid-ossp extension: %w", err)
		}

		if len(cfg.ReplicaDSNs) > 0 {
			replicas := make([]gorm.Dialector, 0, len(cfg.ReplicaDSNs))
			for _, dsn := range cfg.ReplicaDSNs {
				replicas = append(replicas, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
			}
			resolver := dbresolver.Register(dbresolver.Config{
				Replicas: replicas,
				Policy:   dbresolver.RandomPolicy{},
			}).SetMaxOpenConns(cfg.MaxOpenConns).SetMaxIdleConns(cfg.MaxIdleConns)
			if err := db.Use(resolver); err != nil {
				return nil, fmt.Errorf("registering read replicas: %w", err)
			}
			log.Info().Int("replicas", len(replicas)).Msg("read replicas registered")
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		return db, nil

	case "sqlite":
		return openSQLite(sqliteDSN(cfg.SQLitePath), gormCfg)

	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.Type)
	}
}

// OpenInMemory returns a private in-memory SQLite database with the schema
// migrated. Every call gets its own database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := openSQLite(sqliteDSN(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := New(db).Migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(dsn string, gormCfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one connection also keeps an in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	}
	if strings.Contains(path, "_foreign_keys") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
