package models

import (
	"time"

	"gorm.io/gorm"
)

type HydrationEntry struct {
	gorm.Model
	Amount    int       `gorm:"not null" json:"amount"` // in ml
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
}
