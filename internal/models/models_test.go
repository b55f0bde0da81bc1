package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleSponsor.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("staff").Valid())
	assert.False(t, Role("").Valid())
}

func TestOpportunityStatus_Valid(t *testing.T) {
	assert.True(t, StatusInterested.Valid())
	assert.True(t, StatusApplied.Valid())
	assert.True(t, StatusWon.Valid())
	assert.False(t, OpportunityStatus("Rejected").Valid())
}

func TestUser_JSONFieldNames(t *testing.T) {
	u := User{
		Email:         "a@b.c",
		Name:          "Ada",
		Role:          RoleStudent,
		SecurityScore: DefaultSecurityScore,
		LastLogin:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "securityScore")
	assert.Contains(t, raw, "lastLogin")
	// empty optional fields must not appear on disk
	assert.NotContains(t, raw, "title")
	assert.NotContains(t, raw, "contactPerson")
}

func TestNotification_OptionalLink(t *testing.T) {
	n := Notification{ID: "1", Title: "t", Message: "m", Type: NotifSystem}
	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "link")

	n.Link = "https://example.org"
	data, err = json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://example.org")
}
