package models

import "github.com/google/uuid"

// Contact is the contact page of a user
type Contact struct {
	Base
	Email               string    `json:"email" db:"email" gorm:"type:text;not null"`
	Linkedin            string    `json:"linkedin" db:"linkedin" gorm:"type:text;not null"`
	Github              string    `json:"github" db:"github" gorm:"type:text;not null"`
	Whatsapp            *string   `json:"whatsapp" db:"whatsapp" gorm:"type:text"`
	MetaDescription     string    `json:"metaDescription" db:"meta_description" gorm:"type:text;not null"`
	PageTitle           string    `json:"pageTitle" db:"page_title" gorm:"type:text;not null"`
	HeroTitle           string    `json:"heroTitle" db:"hero_title" gorm:"type:text;not null"`
	LetsTalkTitle       string    `json:"letsTalkTitle" db:"lets_talk_title" gorm:"type:text;not null"`
	LetsTalkDescription string    `json:"letsTalkDescription" db:"lets_talk_description" gorm:"type:text;not null"`
	AvailabilityTitle   string    `json:"availabilityTitle" db:"availability_title" gorm:"type:text;not null"`
	CurrentStatusTitle  string    `json:"currentStatusTitle" db:"current_status_title" gorm:"type:text;not null"`
	LocationTitle       string    `json:"locationTitle" db:"location_title" gorm:"type:text;not null"`
	UserID              uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_contact_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Contact) TableName() string {
	return "contact"
}

// ContactOpportunity is a kind of work the user is looking for
type ContactOpportunity struct {
	Base
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`
	ContactID uuid.UUID `json:"contactId" db:"contact_id" gorm:"type:uuid;not null;index:idx_contact_opportunities_contact_id"`

	Contact *Contact `json:"-" gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
}

// ContactLocationInfo is a location or availability note on the contact page
type ContactLocationInfo struct {
	Base
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`
	ContactID uuid.UUID `json:"contactId" db:"contact_id" gorm:"type:uuid;not null;index:idx_contact_location_info_contact_id"`

	Contact *Contact `json:"-" gorm:"foreignKey:ContactID;references:ID;constraint:OnDelete:CASCADE"`
}

func (ContactLocationInfo) TableName() string {
	return "contact_location_info"
}
