package models

import "github.com/google/uuid"

// Project represents a portfolio project of a user
type Project struct {
	Base
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	GithubURL   string    `json:"githubUrl" db:"github_url" gorm:"type:text;not null"`
	DemoURL     *string   `json:"demoUrl" db:"demo_url" gorm:"type:text"`
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	UserID      uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;index:idx_projects_user_id"`

	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectSkill links a project to one of its owner's skills
type ProjectSkill struct {
	Base
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_project_skill_project_id;uniqueIndex:idx_project_skill_unique"`
	SkillID   uuid.UUID `json:"skillId" db:"skill_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_skill_unique"`
	Position  int       `json:"position" db:"position" gorm:"not null;default:0"`

	Project *Project `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Skill   *Skill   `json:"-" gorm:"foreignKey:SkillID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectTechnology is a ProjectSkill row joined with its skill. Not a table.
type ProjectTechnology struct {
	ProjectID uuid.UUID
	SkillID   uuid.UUID
	Name      string
	Category  SkillCategory
	Position  int
}
