package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent      = "student"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

type User struct {
	gorm.Model

	LoginID      string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	CollegeName  string
	Skills       string
	LastLoginAt  *time.Time

	// Relationships
	Projects     []Project     `gorm:"foreignKey:OrgID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Applications []Application `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignments  []Assignment  `gorm:"foreignKey:StudentID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func ValidRegistrationRole(role string) bool {
	return role == RoleStudent || role == RoleOrganization
}
