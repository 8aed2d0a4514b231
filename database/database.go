package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type Database struct {
	db               *gorm.DB
	userRepo         *UserRepo
	aboutRepo        *AboutRepo
	skillRepo        *SkillRepo
	projectRepo      *ProjectRepo
	projectSkillRepo *ProjectSkillRepo
	languageRepo     *LanguageRepo
	achievementRepo  *AchievementRepo
	contactRepo      *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:               db,
		userRepo:         NewUserRepo(db),
		aboutRepo:        NewAboutRepo(db),
		skillRepo:        NewSkillRepo(db),
		projectRepo:      NewProjectRepo(db),
		projectSkillRepo: NewProjectSkillRepo(db),
		languageRepo:     NewLanguageRepo(db),
		achievementRepo:  NewAchievementRepo(db),
		contactRepo:      NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

func (d Database) LanguageRepo() *LanguageRepo {
	return d.languageRepo
}

func (d Database) AchievementRepo() *AchievementRepo {
	return d.achievementRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// Transaction runs fn against a Database bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Inside fn
// only the passed Database may be used.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Migrate creates or updates every table
func (d Database) Migrate() error {
	if err := d.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}

func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
