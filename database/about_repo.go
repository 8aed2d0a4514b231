package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindByUserID returns the about record of a user
func (r *AboutRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.About, error) {
	var about models.About
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&about).Error
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// Add inserts a new about record into the database
func (r *AboutRepo) Add(ctx context.Context, about *models.About) error {
	return r.db.WithContext(ctx).Create(about).Error
}

// UpdateFields writes only the given columns of the user's about record.
// Returns gorm.ErrRecordNotFound when the user has no about record.
func (r *AboutRepo) UpdateFields(ctx context.Context, userID uuid.UUID, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&models.About{}).Where("user_id = ?", userID).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
