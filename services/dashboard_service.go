package services

import (
	"errors"
	"sync"
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"
	"github.com/Darkphantom323/LifePulse/utils"

	"gorm.io/gorm"
)

// nowFunc is the clock for every "today" calculation. Tests replace it to pin
// the calendar day.
var nowFunc = time.Now

const (
	// DefaultHydrationGoal is the daily hydration target in ml.
	DefaultHydrationGoal = 2000
	// DefaultMeditationGoal is the daily meditation target in minutes.
	DefaultMeditationGoal = 20

	recentItemsLimit = 5
)

type GoalStats struct {
	Total      int64   `json:"total"`
	Completed  int64   `json:"completed"`
	Active     int64   `json:"active"`
	Percentage float64 `json:"percentage"`
}

type HydrationStats struct {
	Amount     int     `json:"amount"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
}

type MeditationStats struct {
	Minutes  int `json:"minutes"`
	Sessions int `json:"sessions"`
	Goal     int `json:"goal"`
}

type ScheduleStats struct {
	Total    int64 `json:"total"`
	Upcoming int64 `json:"upcoming"`
	Past     int64 `json:"past"`
}

type TodayStats struct {
	Goals      GoalStats       `json:"goals"`
	Hydration  HydrationStats  `json:"hydration"`
	Meditation MeditationStats `json:"meditation"`
	Schedule   ScheduleStats   `json:"schedule"`
}

type DashboardResponse struct {
	Today          TodayStats             `json:"today"`
	RecentGoals    []models.Goal          `json:"recentGoals"`
	UpcomingEvents []models.ScheduleEvent `json:"upcomingEvents"`
}

// GetDashboard assembles the consolidated daily view for a user. The clock is
// read once and the resulting day window is shared by every collector, so one
// response never mixes two different ideas of "today". The collectors read
// disjoint tables and run concurrently; the first store failure fails the
// whole request.
func GetDashboard(userID uint) (*DashboardResponse, error) {
	// a token can outlive its user; an unknown principal is an error, not an
	// empty dashboard
	var user models.User
	if err := config.DB.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := nowFunc().In(config.Location())
	start, end := utils.DayWindow(now)

	var (
		goals      GoalStats
		hydration  HydrationStats
		meditation MeditationStats
		schedule   ScheduleStats
		recent     []models.Goal
		upcoming   []models.ScheduleEvent

		wg   sync.WaitGroup
		errs [6]error
	)

	wg.Add(6)
	go func() {
		defer wg.Done()
		goals, errs[0] = collectGoalStats(userID)
	}()
	go func() {
		defer wg.Done()
		hydration, errs[1] = collectHydrationStats(userID, start, end)
	}()
	go func() {
		defer wg.Done()
		meditation, errs[2] = collectMeditationStats(userID, start, end)
	}()
	go func() {
		defer wg.Done()
		schedule, errs[3] = collectScheduleStats(userID, start, end, now)
	}()
	go func() {
		defer wg.Done()
		errs[4] = config.DB.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(recentItemsLimit).
			Find(&recent).Error
	}()
	go func() {
		defer wg.Done()
		errs[5] = config.DB.
			Where("user_id = ? AND start_time >= ?", userID, now).
			Order("start_time ASC").
			Limit(recentItemsLimit).
			Find(&upcoming).Error
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &DashboardResponse{
		Today: TodayStats{
			Goals:      goals,
			Hydration:  hydration,
			Meditation: meditation,
			Schedule:   schedule,
		},
		RecentGoals:    recent,
		UpcomingEvents: upcoming,
	}, nil
}

// collectGoalStats counts goals over the user's full history, not just today.
// Goals are not inherently daily, so the completion ratio is all-time.
func collectGoalStats(userID uint) (GoalStats, error) {
	var total, completed int64
	if err := config.DB.Model(&models.Goal{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return GoalStats{}, err
	}
	if err := config.DB.Model(&models.Goal{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return GoalStats{}, err
	}

	var percentage float64
	if total > 0 {
		percentage = float64(completed) / float64(total) * 100
	}

	return GoalStats{
		Total:      total,
		Completed:  completed,
		Active:     total - completed,
		Percentage: percentage,
	}, nil
}

func collectHydrationStats(userID uint, start, end time.Time) (HydrationStats, error) {
	var entries []models.HydrationEntry
	if err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Find(&entries).Error; err != nil {
		return HydrationStats{}, err
	}

	amount := 0
	for _, e := range entries {
		amount += e.Amount
	}

	goal := DefaultHydrationGoal
	var percentage float64
	if goal > 0 {
		// intentionally uncapped: drinking 3L against a 2L goal reads as 150%
		percentage = float64(amount) / float64(goal) * 100
	}

	return HydrationStats{
		Amount:     amount,
		Goal:       goal,
		Percentage: percentage,
	}, nil
}

func collectMeditationStats(userID uint, start, end time.Time) (MeditationStats, error) {
	var sessions []models.MeditationSession
	if err := config.DB.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Find(&sessions).Error; err != nil {
		return MeditationStats{}, err
	}

	minutes := 0
	for _, s := range sessions {
		minutes += s.Duration
	}

	return MeditationStats{
		Minutes:  minutes,
		Sessions: len(sessions),
		Goal:     DefaultMeditationGoal,
	}, nil
}

func collectScheduleStats(userID uint, start, end, now time.Time) (ScheduleStats, error) {
	var total, upcoming int64
	if err := config.DB.Model(&models.ScheduleEvent{}).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, start, end).
		Count(&total).Error; err != nil {
		return ScheduleStats{}, err
	}
	if err := config.DB.Model(&models.ScheduleEvent{}).
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, now, end).
		Count(&upcoming).Error; err != nil {
		return ScheduleStats{}, err
	}

	return ScheduleStats{
		Total:    total,
		Upcoming: upcoming,
		Past:     total - upcoming,
	}, nil
}
