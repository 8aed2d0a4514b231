package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-content-api/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

func (r *ContactRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// AddOpportunities appends names after any existing opportunities of the contact
func (r *ContactRepo) AddOpportunities(ctx context.Context, contactID uuid.UUID, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	offset, err := r.nextPosition(ctx, &models.ContactOpportunity{}, contactID)
	if err != nil {
		return err
	}

	rows := make([]*models.ContactOpportunity, 0, len(names))
	for i, name := range names {
		rows = append(rows, &models.ContactOpportunity{Name: name, Position: offset + i, ContactID: contactID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// AddLocationInfo appends names after any existing location notes of the contact
func (r *ContactRepo) AddLocationInfo(ctx context.Context, contactID uuid.UUID, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	offset, err := r.nextPosition(ctx, &models.ContactLocationInfo{}, contactID)
	if err != nil {
		return err
	}

	rows := make([]*models.ContactLocationInfo, 0, len(names))
	for i, name := range names {
		rows = append(rows, &models.ContactLocationInfo{Name: name, Position: offset + i, ContactID: contactID})
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *ContactRepo) FindOpportunities(ctx context.Context, contactID uuid.UUID) ([]*models.ContactOpportunity, error) {
	var rows []*models.ContactOpportunity
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("position, id").
		Find(&rows).Error
	return rows, err
}

func (r *ContactRepo) FindLocationInfo(ctx context.Context, contactID uuid.UUID) ([]*models.ContactLocationInfo, error) {
	var rows []*models.ContactLocationInfo
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
		Order("position, id").
		Find(&rows).Error
	return rows, err
}

func (r *ContactRepo) nextPosition(ctx context.Context, model interface{}, contactID uuid.UUID) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(model).Where("contact_id = ?", contactID).Count(&n).Error
	return int(n), err
}
