package notify

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/models"
)

// AlertTag is the fixed coalescing tag on every OS alert, so rapid repeats
// collapse into one.
const AlertTag = "scholar-live-alert"

// AlertPayload is what the OS notification collaborator receives.
type AlertPayload struct {
	Title string
	Body  string
	Icon  string
	Tag   string
}

// IconFor maps a notification type to its alert icon key. Types without
// their own icon fall back to the system icon.
func IconFor(typ models.NotificationType) string {
	switch typ {
	case models.NotifScholarship, models.NotifInternship:
		return string(typ)
	}
	return string(models.NotifSystem)
}

// PayloadFor builds the OS alert payload for a notification.
func PayloadFor(n models.Notification) AlertPayload {
	return AlertPayload{
		Title: n.Title,
		Body:  n.Message,
		Icon:  IconFor(n.Type),
		Tag:   AlertTag,
	}
}

// Alerter is the OS notification collaborator. RequestPermission may be
// denied, in which case callers must treat Show as unavailable; the
// in-memory and persisted notification paths still run either way.
type Alerter interface {
	RequestPermission(ctx context.Context) bool
	Show(ctx context.Context, p AlertPayload)
}

// NopAlerter denies permission and shows nothing.
type NopAlerter struct{}

func (NopAlerter) RequestPermission(context.Context) bool { return false }
func (NopAlerter) Show(context.Context, AlertPayload)     {}

// LogAlerter renders alerts through the engine logger. Used by headless
// hosts that have no OS notification surface.
type LogAlerter struct {
	Log logging.Logger
}

func (a LogAlerter) RequestPermission(context.Context) bool { return true }

func (a LogAlerter) Show(ctx context.Context, p AlertPayload) {
	a.Log.Info(ctx, "alert", "title", p.Title, "body", p.Body, "icon", p.Icon, "tag", p.Tag)
}
