package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Darkphantom323/LifePulse/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// appLocation is the timezone every "today" calculation runs in.
// Defaults to the server's local zone; override with APP_TIMEZONE.
var appLocation = time.Local

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file found, relying on environment")
	}

	initTimezone()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Goal{},
		&models.HydrationEntry{},
		&models.MeditationSession{},
		&models.ScheduleEvent{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func initTimezone() {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		return
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("Invalid APP_TIMEZONE %q: %v", tz, err)
	}
	appLocation = loc
}

// Location returns the configured calendar timezone.
func Location() *time.Location {
	return appLocation
}

// SetLocation overrides the calendar timezone. Tests use it to pin a zone.
func SetLocation(loc *time.Location) {
	appLocation = loc
}
