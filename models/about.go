package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CtaButtons holds the labels of the two call-to-action buttons on the hero section
type CtaButtons struct {
	Projects string `json:"projects"`
	Contact  string `json:"contact"`
}

// StatItem is one labelled counter on the hero section
type StatItem struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Stats groups the three hero counters
type Stats struct {
	Projects     StatItem `json:"projects"`
	Technologies StatItem `json:"technologies"`
	Languages    StatItem `json:"languages"`
}

// About is the single bio record of a user
type About struct {
	Base
	FullName         string                         `json:"fullName" db:"full_name" gorm:"type:text;not null"`
	Location         string                         `json:"location" db:"location" gorm:"type:text;not null"`
	Biography        string                         `json:"biography" db:"biography" gorm:"type:text;not null"`
	PageDescription  string                         `json:"pageDescription" db:"page_description" gorm:"type:text;not null"`
	MetaDescription  string                         `json:"metaDescription" db:"meta_description" gorm:"type:text;not null"`
	HeroTitle        string                         `json:"heroTitle" db:"hero_title" gorm:"type:text;not null"`
	HeroSubtitle     string                         `json:"heroSubtitle" db:"hero_subtitle" gorm:"type:text;not null"`
	AvatarURL        string                         `json:"avatarUrl" db:"avatar_url" gorm:"type:text;not null"`
	RelocationStatus string                         `json:"relocationStatus" db:"relocation_status" gorm:"type:text;not null"`
	CtaButtons       datatypes.JSONType[CtaButtons] `json:"ctaButtons" db:"cta_buttons" gorm:"not null"`
	Stats            datatypes.JSONType[Stats]      `json:"stats" db:"stats" gorm:"not null"`
	UserID           uuid.UUID                      `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_about_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName keeps the singular table name used by the existing schema
func (About) TableName() string {
	return "about"
}
