package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db}
}

func (r *AchievementRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Achievement, error) {
	var achievements []*models.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepo) Add(ctx context.Context, achievements ...*models.Achievement) error {
	db := r.db.WithContext(ctx)
	for _, item := range achievements {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *AchievementRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Achievement{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
