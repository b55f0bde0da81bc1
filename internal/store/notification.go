package store

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/models"
)

// Notifications returns the persisted notification log, newest-first.
func (s *Store) Notifications(ctx context.Context) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.Notification{}
	if _, err := s.readCollection(ctx, KeyNotifications, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddNotification prepends n and truncates the log to NotificationCap,
// dropping the oldest entries. Missing ID and Date are filled in.
func (s *Store) AddNotification(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = s.newID()
	}
	if n.Date.IsZero() {
		n.Date = s.now()
	}

	list := []models.Notification{}
	if _, err := s.readCollection(ctx, KeyNotifications, &list); err != nil {
		return err
	}

	list = append([]models.Notification{n}, list...)
	if len(list) > NotificationCap {
		list = list[:NotificationCap]
	}
	return s.writeCollection(ctx, KeyNotifications, list)
}

// MarkRead flips the read flag on the notification with the given id.
// An unknown id is a no-op.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.Notification{}
	if _, err := s.readCollection(ctx, KeyNotifications, &list); err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == id {
			if list[i].Read {
				return nil
			}
			list[i].Read = true
			return s.writeCollection(ctx, KeyNotifications, list)
		}
	}
	return nil
}

// MarkAllRead flips the read flag on every notification.
func (s *Store) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.Notification{}
	if _, err := s.readCollection(ctx, KeyNotifications, &list); err != nil {
		return err
	}

	changed := false
	for i := range list {
		if !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.writeCollection(ctx, KeyNotifications, list)
}
