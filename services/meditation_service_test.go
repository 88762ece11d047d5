package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddMeditationSessionStampsNow(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "meditate@example.com")
	session, err := AddMeditationSession(user.ID, MeditationInput{
		Duration: 15,
		Type:     "mindfulness",
	})
	require.NoError(t, err)
	assert.True(t, session.Timestamp.Equal(now))
	assert.Equal(t, 15, session.Duration)
}

func TestGetTodayMeditationSessions(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	setNow(t, now)

	user := createTestUser(t, "today-med@example.com")
	createMeditation(t, user.ID, 10, now.Add(-2*time.Hour))
	createMeditation(t, user.ID, 20, now.Add(-1*time.Hour))
	createMeditation(t, user.ID, 30, now.Add(-26*time.Hour))

	sessions, err := GetTodayMeditationSessions(user.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, 20, sessions[0].Duration)
	assert.Equal(t, 10, sessions[1].Duration)
}

func TestGetMeditationSessionsRange(t *testing.T) {
	setupTestDB(t)
	setNow(t, time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC))

	user := createTestUser(t, "med-range@example.com")
	createMeditation(t, user.ID, 10, time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC))
	createMeditation(t, user.ID, 20, time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC))

	sessions, err := GetMeditationSessions(user.ID, "2026-09-01", "2026-09-03")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 10, sessions[0].Duration)

	_, err = GetMeditationSessions(user.ID, "2026-09-03", "bogus")
	assert.Error(t, err)
}

func TestDeleteMeditationSessionOwnership(t *testing.T) {
	setupTestDB(t)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	setNow(t, now)

	owner := createTestUser(t, "med-owner@example.com")
	intruder := createTestUser(t, "med-intruder@example.com")

	session, err := AddMeditationSession(owner.ID, MeditationInput{Duration: 10, Type: "breathing"})
	require.NoError(t, err)

	err = DeleteMeditationSession(session.ID, intruder.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = DeleteMeditationSession(session.ID, owner.ID)
	require.NoError(t, err)
}
