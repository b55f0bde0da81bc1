package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuesadev/scholarengine/internal/models"
)

func TestSecurityLogs_BoundedAtCap(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 30; i++ {
		require.NoError(t, s.AppendSecurityLog(ctx,
			fmt.Sprintf("Test: event %d", i), models.LogSuccess))
	}

	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, ActivityLogCap)
	assert.Equal(t, "Test: event 30", logs[0].Action)
	assert.Equal(t, "Test: event 11", logs[ActivityLogCap-1].Action)
}

func TestSecurityLogs_SyntheticFields(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendSecurityLog(ctx, "Test: one", models.LogError))

	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)

	entry := logs[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, clock.t, entry.Timestamp)
	assert.True(t, strings.HasPrefix(entry.IP, "197.210.64."), "ip was %q", entry.IP)
	assert.Contains(t, entry.Device, "Portal on")
	assert.Equal(t, models.LogError, entry.Status)
}

func TestAuditTrail_CoversEveryMutation(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Login(ctx, LoginParams{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	require.NoError(t, s.SaveOpportunity(ctx, models.SavedOpportunity{ID: "o1", Title: "Grant"}))
	require.NoError(t, s.UpdateOpportunityStatus(ctx, "o1", models.StatusApplied))
	_, err = s.CreateSponsorship(ctx, models.Sponsorship{Title: "Fund"})
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	logs, err := s.SecurityLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 5)

	// newest-first: logout, sponsorship, status, save, login
	assert.Contains(t, logs[0].Action, "Session terminated")
	assert.Contains(t, logs[1].Action, "New scheme created")
	assert.Contains(t, logs[2].Action, "status updated")
	assert.Contains(t, logs[3].Action, "Opportunity tracked")
	assert.Contains(t, logs[4].Action, "Successful sign-in")
}

func TestShouldShowRating(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	show, err := s.ShouldShowRating(ctx)
	require.NoError(t, err)
	assert.True(t, show, "never prompted yet")

	require.NoError(t, s.MarkRatingPrompted(ctx))

	show, err = s.ShouldShowRating(ctx)
	require.NoError(t, err)
	assert.False(t, show, "inside the cooldown")

	clock.advance(25 * time.Hour)
	show, err = s.ShouldShowRating(ctx)
	require.NoError(t, err)
	assert.True(t, show, "cooldown elapsed")
}
