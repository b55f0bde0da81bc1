package models

import "time"

// LogStatus grades an audit entry.
type LogStatus string

const (
	LogSuccess LogStatus = "success"
	LogWarning LogStatus = "warning"
	LogError   LogStatus = "error"
)

// ActivityLog is one entry in the bounded, newest-first audit trail. IP and
// Device are synthetic: there is no backend observing a real client, so the
// store fabricates plausible values at write time.
type ActivityLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	Device    string    `json:"device"`
	Status    LogStatus `json:"status"`
}
