package models

import "github.com/google/uuid"

// Achievement is a headline figure such as "CI/CD Pipeline: GitHub Actions"
type Achievement struct {
	Base
	Title    string    `json:"title" db:"title" gorm:"type:text;not null"`
	Value    string    `json:"value" db:"value" gorm:"type:text;not null"`
	Subtitle *string   `json:"subtitle" db:"subtitle" gorm:"type:text"`
	UserID   uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_achievements_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
