package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Darkphantom323/LifePulse/utils"
)

func TestRegisterUser(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("Alice", "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, utils.CheckPasswordHash("s3cret-pass", user.Password))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("Alice", "dupe@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = RegisterUser("Alice Again", "dupe@example.com", "other-pass")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateUser(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("Bob", "bob@example.com", "correct-horse")
	require.NoError(t, err)

	user, err := AuthenticateUser("bob@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)

	_, err = AuthenticateUser("bob@example.com", "wrong-horse")
	assert.Error(t, err)

	_, err = AuthenticateUser("nobody@example.com", "correct-horse")
	assert.Error(t, err)
}
