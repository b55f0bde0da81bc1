package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuesadev/scholarengine/internal/common"
	"github.com/nuesadev/scholarengine/internal/models"
)

func TestLogin_CreatesNewUser(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	user, err := s.Login(ctx, LoginParams{Email: "ada@uni.edu", Name: "Ada", Role: models.RoleStudent})
	require.NoError(t, err)

	assert.Equal(t, "ada@uni.edu", user.Email)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, models.DefaultSecurityScore, user.SecurityScore)
	assert.Equal(t, clock.t, user.LastLogin)

	// saved collection is initialized
	saved, err := s.SavedOpportunities(ctx)
	require.NoError(t, err)
	assert.NotNil(t, saved)

	// sign-in audit entry written in the same call
	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Action, "Successful sign-in")
}

func TestLogin_SameEmailMerges(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	first, err := s.Login(ctx, LoginParams{
		Email: "ada@uni.edu", Name: "Ada", Role: models.RoleStudent, Title: "300 Level",
	})
	require.NoError(t, err)

	clock.advance(48 * time.Hour)

	second, err := s.Login(ctx, LoginParams{
		Email: "ada@uni.edu", Name: "Ada L.", Role: models.RoleSponsor,
		Title: "ignored", ContactPerson: "Bob",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", second.Name)
	assert.Equal(t, models.RoleSponsor, second.Role)
	assert.Equal(t, "300 Level", second.Title, "title only fills an empty slot")
	assert.Equal(t, "Bob", second.ContactPerson)
	assert.Equal(t, first.SecurityScore, second.SecurityScore, "score preserved on merge")
	assert.True(t, second.LastLogin.After(first.LastLogin))
}

func TestLogin_DifferentEmailReplaces(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Email: "ada@uni.edu", Name: "Ada", Title: "300 Level"})
	require.NoError(t, err)

	replaced, err := s.Login(ctx, LoginParams{Email: "bob@uni.edu", Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, "bob@uni.edu", replaced.Email)
	assert.Empty(t, replaced.Title, "no merge across emails")

	current, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "bob@uni.edu", current.Email, "single-slot collection")
}

func TestLogin_Validation(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Name: "No Email"})
	assert.ErrorIs(t, err, common.ErrorEmptyEmail)

	_, err = s.Login(ctx, LoginParams{Email: "a@b.c", Role: models.Role("pirate")})
	assert.ErrorIs(t, err, common.ErrorInvalidRole)

	// empty role defaults to student
	user, err := s.Login(ctx, LoginParams{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
}

func TestLogout_ClearsUserAndAudits(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Action, "Session terminated by user")
}

func TestExpireSession_AuditsAsWarning(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	require.NoError(t, s.ExpireSession(ctx))

	user, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Action, "inactivity timeout")
	assert.Equal(t, models.LogWarning, logs[0].Status)
}

func TestUpdateUser(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	user, err := s.Login(ctx, LoginParams{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)

	user.Name = "Renamed"
	user.SecurityScore = 90
	require.NoError(t, s.UpdateUser(ctx, user))

	got, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 90, got.SecurityScore)

	assert.ErrorIs(t, s.UpdateUser(ctx, models.User{}), common.ErrorEmptyEmail)
}
