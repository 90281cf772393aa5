package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc := NewService(db, "test-secret", time.Hour)
	require.NoError(t, svc.Migrate())
	return svc
}

func TestSignup_CreatesAccountWithToken(t *testing.T) {
	svc := newTestService(t)

	user, token, err := svc.Signup("Player@Example.com", "hunter2xyz", " Player One ")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "player@example.com", user.Email, "emails are stored lowercased")
	assert.Equal(t, "Player One", user.DisplayName)
	assert.NotEqual(t, "hunter2xyz", user.PasswordHash)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, user.ID, sub)
}

func TestSignup_RejectsBadInput(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Signup("not-an-email", "longenough", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid email")

	_, _, err = svc.Signup("player@example.com", "short", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Signup("player@example.com", "hunter2xyz", "")
	require.NoError(t, err)

	_, _, err = svc.Signup("PLAYER@example.com", "hunter2xyz", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	created, _, err := svc.Signup("player@example.com", "hunter2xyz", "Player")
	require.NoError(t, err)

	user, token, err := svc.Login("player@example.com", "hunter2xyz")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)

	// Wrong password and unknown account fail with the same message.
	_, _, badPass := svc.Login("player@example.com", "wrong-password")
	_, _, noUser := svc.Login("ghost@example.com", "hunter2xyz")
	require.Error(t, badPass)
	require.Error(t, noUser)
	assert.Equal(t, badPass.Error(), noUser.Error())
}

func TestGetUser(t *testing.T) {
	svc := newTestService(t)
	created, _, err := svc.Signup("player@example.com", "hunter2xyz", "")
	require.NoError(t, err)

	user, err := svc.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "player@example.com", user.Email)

	_, err = svc.GetUser("missing-id")
	assert.Error(t, err)
}
