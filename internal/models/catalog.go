package models

import "gorm.io/gorm"

// Static learning-catalog content, seeded at migration time.

type Course struct {
	gorm.Model

	Code             string `gorm:"uniqueIndex;not null"`
	Title            string `gorm:"not null"`
	ShortDescription string `gorm:"not null"`
	ImageURL         string
	DetailPath       string
	Category         string
	Organization     string
	Level            string
	Duration         string
	ExternalURL      string
	IsActive         bool `gorm:"default:true"`
}

type GigBook struct {
	gorm.Model

	Title    string `gorm:"not null"`
	Topic    string
	Provider string
	Link     string `gorm:"not null"`
}

type TrialProject struct {
	gorm.Model

	Code             string `gorm:"uniqueIndex;not null"`
	Title            string `gorm:"not null"`
	ShortDescription string `gorm:"not null"`
	Domain           string
	SkillsRequired   string
	Difficulty       string
	EstimatedHours   int
	BudgetRange      string
}
