package models

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type AuthProvider string

const (
	ProviderCredentials AuthProvider = "credentials"
	ProviderGoogle      AuthProvider = "google"
)

type User struct {
	ID           uint         `json:"id" gorm:"primarykey"`
	Name         string       `json:"name"`
	Email        string       `json:"email" gorm:"uniqueIndex;not null"`
	Image        string       `json:"image"`
	Password     *string      `json:"-"`
	GoogleSub    *string      `json:"-" gorm:"uniqueIndex"`
	AuthProvider AuthProvider `json:"auth_provider" gorm:"default:'credentials'"`
	Role         UserRole     `json:"role" gorm:"default:'user'"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session is the server-side record behind an issued token. The token's
// jti is the session ID.
type Session struct {
	ID        string     `json:"id" gorm:"primarykey;size:36"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	UserAgent string     `json:"user_agent"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Author is the public projection of a user attached to comments and reviews.
type Author struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
