package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuesadev/scholarengine/internal/models"
)

func TestAddNotification_BoundedAtCap(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 60; i++ {
		require.NoError(t, s.AddNotification(ctx, models.Notification{
			Message: fmt.Sprintf("message %d", i),
		}))
	}

	list, err := s.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, NotificationCap)

	// the 50 most recent survive, newest first
	assert.Equal(t, "message 60", list[0].Message)
	assert.Equal(t, "message 11", list[NotificationCap-1].Message)
}

func TestMarkRead(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddNotification(ctx, models.Notification{ID: "n1", Message: "a"}))
	require.NoError(t, s.AddNotification(ctx, models.Notification{ID: "n2", Message: "b"}))

	require.NoError(t, s.MarkRead(ctx, "n1"))

	list, err := s.Notifications(ctx)
	require.NoError(t, err)
	byID := map[string]bool{}
	for _, n := range list {
		byID[n.ID] = n.Read
	}
	assert.True(t, byID["n1"])
	assert.False(t, byID["n2"])

	// unknown id and repeated mark are no-ops
	require.NoError(t, s.MarkRead(ctx, "missing"))
	require.NoError(t, s.MarkRead(ctx, "n1"))
}

func TestMarkAllRead(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.AddNotification(ctx, models.Notification{
			Message: fmt.Sprintf("m%d", i),
		}))
	}
	require.NoError(t, s.MarkAllRead(ctx))

	list, err := s.Notifications(ctx)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}

	// idempotent
	require.NoError(t, s.MarkAllRead(ctx))
}

func TestAddNotification_FillsDefaults(t *testing.T) {
	s, _, clock := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddNotification(ctx, models.Notification{Message: "m"}))

	list, err := s.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, clock.t, list[0].Date)
}
