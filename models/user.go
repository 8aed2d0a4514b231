package models

// User owns one About, at most one Contact, and any number of skills, projects,
// languages and achievements. Deleting a user cascades to all of them.
type User struct {
	Base
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	Username string `json:"username" db:"username" gorm:"type:text;not null"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`
	IsActive bool   `json:"isActive" db:"is_active" gorm:"not null;default:true"`
}

// UserSummary is the public view of a user returned by the auth endpoints
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	IsActive bool   `json:"isActive"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID.String(),
		Email:    u.Email,
		Username: u.Username,
		IsActive: u.IsActive,
	}
}
