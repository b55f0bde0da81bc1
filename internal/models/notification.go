package models

import "time"

// NotificationType selects the icon and grouping of a notification.
// Discovered opportunities carry their opportunity type; engine-originated
// notices use system or security.
type NotificationType string

const (
	NotifScholarship NotificationType = "scholarship"
	NotifInternship  NotificationType = "internship"
	NotifSystem      NotificationType = "system"
	NotifSecurity    NotificationType = "security"
)

// Notification is one entry in the bounded, newest-first notification log.
// Message doubles as the deduplication key for the discovery pipeline, so
// it must stay byte-stable once written. Only Read mutates after creation.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
	Link    string           `json:"link,omitempty"`
}
