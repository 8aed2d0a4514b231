package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base holds the identifier and timestamps shared by every table
type Base struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}

// BeforeCreate assigns a fresh UUID when the caller did not set one.
// IDs are generated here rather than by gen_random_uuid() so the same models
// work against postgres and sqlite.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All lists every model in dependency order, used by auto-migration and code generation
func All() []interface{} {
	return []interface{}{
		&User{},
		&About{},
		&Skill{},
		&Project{},
		&ProjectSkill{},
		&Language{},
		&Achievement{},
		&Contact{},
		&ContactOpportunity{},
		&ContactLocationInfo{},
	}
}
