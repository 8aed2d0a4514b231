package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindByUserID returns all skills of a user in insertion order
func (r *SkillRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) FindByUserIDAndCategory(ctx context.Context, userID uuid.UUID, category models.SkillCategory) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("created_at, id").
		Find(&skills).Error
	return skills, err
}

// Add inserts skills one row at a time so created_at keeps their order
func (r *SkillRepo) Add(ctx context.Context, skills ...*models.Skill) error {
	db := r.db.WithContext(ctx)
	for _, item := range skills {
		if err := db.Create(item).Error; err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a skill and its project links
func (r *SkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id).Error
}

func (r *SkillRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Skill{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}
