package store

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/models"
)

// SecurityLogs returns the audit trail, newest-first.
func (s *Store) SecurityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.ActivityLog{}
	if _, err := s.readCollection(ctx, KeySecurityLogs, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// AppendSecurityLog records an audit entry outside the store's own
// security-relevant mutations (for example, a denied alert permission).
func (s *Store) AppendSecurityLog(ctx context.Context, action string, status models.LogStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendLogLocked(ctx, action, status)
}

// appendLogLocked prepends one audit entry and truncates the trail to
// ActivityLogCap. Callers must hold s.mu; mutations call this in the same
// critical section as the change they describe so the trail never lags.
func (s *Store) appendLogLocked(ctx context.Context, action string, status models.LogStatus) error {
	list := []models.ActivityLog{}
	if _, err := s.readCollection(ctx, KeySecurityLogs, &list); err != nil {
		return err
	}

	entry := models.ActivityLog{
		ID:        s.newID(),
		Action:    action,
		Timestamp: s.now(),
		IP:        syntheticIP(),
		Device:    syntheticDevice(),
		Status:    status,
	}
	list = append([]models.ActivityLog{entry}, list...)
	if len(list) > ActivityLogCap {
		list = list[:ActivityLogCap]
	}
	return s.writeCollection(ctx, KeySecurityLogs, list)
}

// PurgeAllData removes the user, saved opportunities, notifications and
// security logs. Sponsorships and the rating-prompt date survive. A single
// purge entry is written to the fresh audit trail afterwards so the event
// itself stays auditable.
func (s *Store) PurgeAllData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyUser, KeySaved, KeyNotifications, KeySecurityLogs} {
		if err := s.medium.Delete(ctx, key); err != nil {
			return err
		}
	}
	return s.appendLogLocked(ctx, "Privacy: All personal data purged", models.LogWarning)
}
