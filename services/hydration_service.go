package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
	"github.com/Darkphantom323/LifePulse/utils"

	"gorm.io/gorm"
)

// HydrationSummary bundles a set of entries with their reduced totals.
type HydrationSummary struct {
	Entries     []models.HydrationEntry `json:"entries"`
	TotalAmount int                     `json:"totalAmount"`
	EntryCount  int                     `json:"entryCount"`
}

func AddHydrationEntry(userID uint, amount int) (*models.HydrationEntry, error) {
	entry := models.HydrationEntry{
		Amount:    amount,
		Timestamp: nowFunc().In(config.Location()),
		UserID:    userID,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	EmitActivity(userID, "hydration.logged", &entry)
	return &entry, nil
}

func GetTodayHydrationEntries(userID uint) ([]models.HydrationEntry, error) {
	start, end := utils.DayWindow(nowFunc().In(config.Location()))
	return hydrationEntriesBetween(userID, start, end)
}

// GetHydrationEntries returns entries filtered the way the API exposes them:
// today only, an explicit YYYY-MM-DD range, or everything.
func GetHydrationEntries(userID uint, today bool, startDate, endDate string) (*HydrationSummary, error) {
	var entries []models.HydrationEntry
	var err error

	switch {
	case today:
		start, end := utils.DayWindow(nowFunc().In(config.Location()))
		entries, err = hydrationEntriesBetween(userID, start, end)
	case startDate != "" && endDate != "":
		var start, end time.Time
		start, end, err = parseDateRange(startDate, endDate)
		if err != nil {
			return nil, err
		}
		entries, err = hydrationEntriesBetween(userID, start, end)
	default:
		err = config.DB.
			Where("user_id = ?", userID).
			Order("timestamp DESC").
			Find(&entries).Error
	}
	if err != nil {
		return nil, err
	}

	return summarizeHydration(entries), nil
}

// GetHydrationDayStats reduces one calendar day's entries. An empty date means
// today.
func GetHydrationDayStats(userID uint, date string) (*HydrationSummary, error) {
	day := nowFunc().In(config.Location())
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, config.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
		}
		day = parsed
	}

	start, end := utils.DayWindow(day)
	entries, err := hydrationEntriesBetween(userID, start, end)
	if err != nil {
		return nil, err
	}
	return summarizeHydration(entries), nil
}

func DeleteHydrationEntry(entryID, userID uint) error {
	var entry models.HydrationEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	return config.DB.Delete(&entry).Error
}

// DeleteLastHydrationEntry removes the user's newest entry, the undo action
// for an accidental log.
func DeleteLastHydrationEntry(userID uint) error {
	var entry models.HydrationEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("no hydration entries to delete")
		}
		return err
	}
	return config.DB.Delete(&entry).Error
}

func hydrationEntriesBetween(userID uint, start, end time.Time) ([]models.HydrationEntry, error) {
	var entries []models.HydrationEntry
	err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp DESC").
		Find(&entries).Error
	return entries, err
}

func summarizeHydration(entries []models.HydrationEntry) *HydrationSummary {
	total := 0
	for _, e := range entries {
		total += e.Amount
	}
	return &HydrationSummary{
		Entries:     entries,
		TotalAmount: total,
		EntryCount:  len(entries),
	}
}

// parseDateRange converts an inclusive YYYY-MM-DD pair into a half-open
// timestamp interval in the app timezone.
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	loc := config.Location()
	start, err := time.ParseInLocation("2006-01-02", startDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: use YYYY-MM-DD", startDate)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: use YYYY-MM-DD", endDate)
	}
	return start, end.AddDate(0, 0, 1), nil
}
