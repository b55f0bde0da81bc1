package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuesadev/scholarengine/internal/engine"
	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/medium"
	"github.com/nuesadev/scholarengine/internal/store"
)

// newTestApp builds an App over an in-memory store, bypassing NewApp's
// SQLite and stdin wiring.
func newTestApp(t *testing.T) *App {
	t.Helper()
	m := medium.NewMemoryMedium()
	t.Cleanup(func() { _ = m.Close() })

	e := engine.New(store.New(m))
	t.Cleanup(e.Close)

	return &App{
		log:    logging.Nop(),
		medium: m,
		engine: e,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput replaces the interactive prompt seam with canned answers,
// served in order.
func stubInput(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	t.Cleanup(func() { getSimpleText = orig })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		answer := answers[i]
		i++
		return answer, nil
	}
}

func TestApp_LoginAndLogout(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "ada@uni.edu", "Ada", "")
	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(Ada)", a.getStatus())

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.getStatus())
}

func TestApp_LoginRejectsEmptyEmail(t *testing.T) {
	a := newTestApp(t)

	stubInput(t, "", "Ada", "")
	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestApp_SaveAndStatusFlow(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "ada@uni.edu", "Ada", "")
	require.NoError(t, a.Login(ctx))

	stubInput(t, "STEM Grant", "Acme Foundation", "scholarship", "$5000", "2026-12-01")
	require.NoError(t, a.Save(ctx))

	saved, err := a.engine.SavedOpportunities(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "STEM Grant", saved[0].Title)

	stubInput(t, saved[0].ID, "Applied")
	require.NoError(t, a.SetStatus(ctx))

	saved, err = a.engine.SavedOpportunities(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Applied", string(saved[0].Status))

	stubInput(t, saved[0].ID)
	require.NoError(t, a.Remove(ctx))

	saved, err = a.engine.SavedOpportunities(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestApp_SponsorRequiresSponsorRole(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "ada@uni.edu", "Ada", "student")
	require.NoError(t, a.Login(ctx))

	// student account gets turned away before any prompts
	require.NoError(t, a.Sponsor(ctx))

	list, err := a.engine.Sponsorships(ctx, "ada@uni.edu")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApp_SponsorCreatesPosting(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "acme@corp.io", "Ann", "sponsor", "Acme Foundation")
	require.NoError(t, a.Login(ctx))

	stubInput(t, "Acme STEM Fund", "$10000", "2026-11-15", "3")
	require.NoError(t, a.Sponsor(ctx))

	list, err := a.engine.Sponsorships(ctx, "acme@corp.io")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme STEM Fund", list[0].Title)
	assert.Equal(t, 3, list[0].Slots)
}

func TestApp_PurgeNeedsConfirmation(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	stubInput(t, "ada@uni.edu", "Ada", "")
	require.NoError(t, a.Login(ctx))

	origConfirm := getConfirmation
	t.Cleanup(func() { getConfirmation = origConfirm })

	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return false, nil }
	require.NoError(t, a.Purge(ctx))
	user, err := a.engine.CurrentUser(ctx)
	require.NoError(t, err)
	assert.NotNil(t, user, "declined purge leaves data intact")

	getConfirmation = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) { return true, nil }
	require.NoError(t, a.Purge(ctx))
	user, err = a.engine.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, a.isLoggedIn())
}
