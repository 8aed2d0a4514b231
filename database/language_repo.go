package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type LanguageRepo struct {
	db *gorm.DB
}

func NewLanguageRepo(db *gorm.DB) *LanguageRepo {
	return &LanguageRepo{db}
}

func (r *LanguageRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Language, error) {
	var languages []*models.Language
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&languages).Error
	return languages, err
}

func (r *LanguageRepo) Add(ctx context.Context, languages ...*models.Language) error {
	db := r.db.WithContext(ctx)
	for _, item := range languages {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *LanguageRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Language{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
