package models

import "github.com/google/uuid"

// Language is a spoken language of a user
type Language struct {
	Base
	Name     string    `json:"name" db:"name" gorm:"type:text;not null"`
	Level    string    `json:"level" db:"level" gorm:"type:text;not null"`
	IsNative *bool     `json:"isNative,omitempty" db:"is_native"`
	UserID   uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_languages_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}
