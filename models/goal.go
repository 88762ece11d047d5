package models

import (
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	gorm.Model
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"` // work, personal, health, fitness, other
	TargetValue  *int       `json:"targetValue"`
	CurrentValue int        `json:"currentValue"`
	Unit         string     `json:"unit"`
	Deadline     *time.Time `json:"deadline"`
	Completed    bool       `json:"completed"`
	Priority     string     `json:"priority"` // low, medium, high
	UserID       uint       `gorm:"index;not null" json:"userId"`
}
