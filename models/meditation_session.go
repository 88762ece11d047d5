package models

import (
	"time"

	"gorm.io/gorm"
)

type MeditationSession struct {
	gorm.Model
	Duration  int       `gorm:"not null" json:"duration"` // in minutes
	Type      string    `json:"type"`                     // breathing, mindfulness, guided, other
	Notes     string    `json:"notes"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
}
