package models

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SkillCategory is the closed set of groups a skill can belong to
type SkillCategory string

const (
	SkillCategoryLanguages    SkillCategory = "languages"
	SkillCategoryFrontend     SkillCategory = "frontend"
	SkillCategoryBackend      SkillCategory = "backend"
	SkillCategoryDatabases    SkillCategory = "databases"
	SkillCategoryDevops       SkillCategory = "devops"
	SkillCategoryIntegrations SkillCategory = "integrations"
	SkillCategoryPractices    SkillCategory = "practices"
)

// SkillCategories returns every category in display order
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		SkillCategoryLanguages,
		SkillCategoryFrontend,
		SkillCategoryBackend,
		SkillCategoryDatabases,
		SkillCategoryDevops,
		SkillCategoryIntegrations,
		SkillCategoryPractices,
	}
}

// SkillCategoryNames returns the categories as plain strings
func SkillCategoryNames() []string {
	categories := SkillCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Skill is a named technology or practice of a user
type Skill struct {
	Base
	Name     string        `json:"name" db:"name" gorm:"type:text;not null"`
	Category SkillCategory `json:"category" db:"category" gorm:"type:text;not null;default:'practices';check:chk_skills_category,category IN ('languages','frontend','backend','databases','devops','integrations','practices')"`
	UserID   uuid.UUID     `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_skills_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if !s.Category.Valid() {
		return fmt.Errorf("invalid skill category %q", s.Category)
	}
	return nil
}
