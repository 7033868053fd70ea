package lib

import (
	"context"
	"testing"
	"time"

	"github.com/Smasher-Lab/My-Anime-Tracker/lib/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsAdmin)

	// Passwords are stored hashed, never in the clear.
	assert.NotEqual(t, "hunter2", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "mika", "different")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	// Wrong password and unknown username fail identically.
	_, _, errWrongPass := svc.Login(ctx, "mika", "nope")
	_, _, errNoUser := svc.Login(ctx, "ghost", "nope")
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestLoginIssuesSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	user, session, err := svc.Login(ctx, "mika", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, session.Token)

	resolved, err := svc.SessionUser(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSessionUserExpired(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	stale := &models.Session{
		Token:  "stale-token",
		UserID: user.ID,
		Expiry: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, db.Create(stale).Error)

	_, err = svc.SessionUser(ctx, "stale-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.SessionUser(ctx, "never-issued")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "mika", "hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
