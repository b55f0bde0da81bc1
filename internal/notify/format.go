// Package notify turns raw discovery results into canonical notifications
// and OS alert payloads. Formatting is pure: the canonical message doubles
// as the deduplication key downstream, so identical inputs must always
// produce identical output.
package notify

import (
	"fmt"
	"strings"

	"github.com/nuesadev/scholarengine/internal/models"
)

// NormalizeType lower-cases raw and maps it onto the known notification
// types. Unknown or empty input defaults to scholarship.
func NormalizeType(raw string) models.NotificationType {
	switch models.NotificationType(strings.ToLower(strings.TrimSpace(raw))) {
	case models.NotifScholarship:
		return models.NotifScholarship
	case models.NotifInternship:
		return models.NotifInternship
	case models.NotifSystem:
		return models.NotifSystem
	case models.NotifSecurity:
		return models.NotifSecurity
	}
	return models.NotifScholarship
}

// CanonicalMessage builds the deduplication key for a discovered
// opportunity. Must stay byte-stable for identical inputs.
func CanonicalMessage(title, provider string) string {
	return fmt.Sprintf("%s is now accepting applications from %s. View details in the portal.", title, provider)
}

// FormatDiscovered produces the canonical notification record for a raw
// discovery result. ID and Date are left zero for the store to fill so the
// function stays deterministic.
func FormatDiscovered(title, provider, rawType, link string) models.Notification {
	typ := NormalizeType(rawType)

	label := string(typ)
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}

	return models.Notification{
		Title:   fmt.Sprintf("New %s Found", label),
		Message: CanonicalMessage(title, provider),
		Type:    typ,
		Link:    link,
	}
}
