package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGoal(t *testing.T, userID uint, title string, completed bool, createdAt time.Time) *models.Goal {
	t.Helper()
	goal := &models.Goal{
		Title:     title,
		Category:  "health",
		Completed: completed,
		UserID:    userID,
	}
	goal.CreatedAt = createdAt
	require.NoError(t, config.DB.Create(goal).Error)
	return goal
}

func createHydration(t *testing.T, userID uint, amount int, ts time.Time) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.HydrationEntry{
		Amount:    amount,
		Timestamp: ts,
		UserID:    userID,
	}).Error)
}

func createMeditation(t *testing.T, userID uint, duration int, ts time.Time) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.MeditationSession{
		Duration:  duration,
		Type:      "breathing",
		Timestamp: ts,
		UserID:    userID,
	}).Error)
}

func createEvent(t *testing.T, userID uint, title string, start time.Time) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.ScheduleEvent{
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Category:  "personal",
		UserID:    userID,
	}).Error)
}

func TestDashboardGoalStats(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "goals@example.com")
	createGoal(t, user.ID, "run", true, now.Add(-72*time.Hour))
	createGoal(t, user.ID, "read", true, now.Add(-48*time.Hour))
	createGoal(t, user.ID, "meditate", false, now.Add(-24*time.Hour))

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	stats := dash.Today.Goals
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Completed)
	assert.Equal(t, int64(1), stats.Active)
	assert.InDelta(t, 66.67, stats.Percentage, 0.01)
}

func TestDashboardHydrationStats(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "hydration@example.com")
	createHydration(t, user.ID, 500, now.Add(-3*time.Hour))
	createHydration(t, user.ID, 750, now.Add(-1*time.Hour))
	// yesterday's entry must not count
	createHydration(t, user.ID, 1000, now.Add(-24*time.Hour))

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	stats := dash.Today.Hydration
	assert.Equal(t, 1250, stats.Amount)
	assert.Equal(t, 2000, stats.Goal)
	assert.InDelta(t, 62.5, stats.Percentage, 0.001)
}

func TestDashboardHydrationPercentageUncapped(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "overachiever@example.com")
	createHydration(t, user.ID, 3000, now.Add(-time.Hour))

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, dash.Today.Hydration.Percentage, 0.001)
}

func TestDashboardMeditationStats(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "meditation@example.com")
	createMeditation(t, user.ID, 10, now.Add(-6*time.Hour))
	createMeditation(t, user.ID, 15, now.Add(-2*time.Hour))
	createMeditation(t, user.ID, 30, now.Add(-30*time.Hour)) // yesterday

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	stats := dash.Today.Meditation
	assert.Equal(t, 25, stats.Minutes)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 20, stats.Goal)
}

func TestDashboardScheduleStats(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "schedule@example.com")
	createEvent(t, user.ID, "standup", now.Add(-3*time.Hour))   // today, past
	createEvent(t, user.ID, "review", now.Add(2*time.Hour))     // today, upcoming
	createEvent(t, user.ID, "dinner", now.Add(7*time.Hour))     // today, upcoming
	createEvent(t, user.ID, "flight", now.Add(26*time.Hour))    // tomorrow
	createEvent(t, user.ID, "dentist", now.Add(-30*time.Hour))  // yesterday

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	stats := dash.Today.Schedule
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Upcoming)
	assert.Equal(t, int64(1), stats.Past)
}

func TestDashboardEmptyUser(t *testing.T) {
	setupTestDB(t)
	setNow(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	user := createTestUser(t, "empty@example.com")

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	assert.Equal(t, GoalStats{}, dash.Today.Goals)
	assert.Equal(t, HydrationStats{Goal: 2000}, dash.Today.Hydration)
	assert.Equal(t, MeditationStats{Goal: 20}, dash.Today.Meditation)
	assert.Equal(t, ScheduleStats{}, dash.Today.Schedule)
	assert.Empty(t, dash.RecentGoals)
	assert.Empty(t, dash.UpcomingEvents)
}

func TestDashboardRecentGoalsLimit(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "recent@example.com")
	for i := 0; i < 7; i++ {
		createGoal(t, user.ID, fmt.Sprintf("goal-%d", i), false, now.Add(time.Duration(-i)*time.Hour))
	}

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	require.Len(t, dash.RecentGoals, 5)
	// newest first
	assert.Equal(t, "goal-0", dash.RecentGoals[0].Title)
	assert.Equal(t, "goal-4", dash.RecentGoals[4].Title)
}

func TestDashboardUpcomingEventsLimit(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "upcoming@example.com")
	for i := 7; i >= 1; i-- {
		createEvent(t, user.ID, fmt.Sprintf("event-%d", i), now.Add(time.Duration(i)*time.Hour))
	}
	createEvent(t, user.ID, "already-started", now.Add(-time.Hour))

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	require.Len(t, dash.UpcomingEvents, 5)
	// the five soonest, ascending by start time
	for i, ev := range dash.UpcomingEvents {
		assert.Equal(t, fmt.Sprintf("event-%d", i+1), ev.Title)
	}
}

func TestDashboardIgnoresOtherUsers(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "mine@example.com")
	other := createTestUser(t, "other@example.com")

	createGoal(t, other.ID, "not mine", true, now)
	createHydration(t, other.ID, 800, now)
	createMeditation(t, other.ID, 30, now)
	createEvent(t, other.ID, "not my meeting", now.Add(time.Hour))

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), dash.Today.Goals.Total)
	assert.Equal(t, 0, dash.Today.Hydration.Amount)
	assert.Equal(t, 0, dash.Today.Meditation.Sessions)
	assert.Equal(t, int64(0), dash.Today.Schedule.Total)
}

func TestDashboardWindowBoundaries(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "boundary@example.com")
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	nextMidnight := midnight.AddDate(0, 0, 1)

	createHydration(t, user.ID, 100, midnight)                      // first instant of today
	createHydration(t, user.ID, 200, nextMidnight.Add(-time.Second)) // last second of today
	createHydration(t, user.ID, 400, nextMidnight)                  // tomorrow

	dash, err := GetDashboard(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, dash.Today.Hydration.Amount)
}

func TestDashboardUnknownUser(t *testing.T) {
	setupTestDB(t)
	setNow(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	dash, err := GetDashboard(424242)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, dash)
}

func TestDashboardFailsWhenCollectorFails(t *testing.T) {
	setupTestDB(t)
	setNow(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	user := createTestUser(t, "degraded@example.com")
	createGoal(t, user.ID, "still there", false, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	// one broken store must fail the whole request, never a partial dashboard
	require.NoError(t, config.DB.Migrator().DropTable(&models.HydrationEntry{}))

	dash, err := GetDashboard(user.ID)
	assert.Error(t, err)
	assert.Nil(t, dash)
}
