package store

import (
	"context"
	"time"
)

// ratingCooldown is how long after a prompt before the user may be asked
// to rate again.
const ratingCooldown = 24 * time.Hour

// ShouldShowRating reports whether the rating prompt may be shown: true
// when it has never been shown or the last prompt is older than the
// cooldown.
func (s *Store) ShouldShowRating(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lastMillis int64
	found, err := s.readCollection(ctx, KeyRatingPrompt, &lastMillis)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	last := time.UnixMilli(lastMillis)
	return s.now().Sub(last) > ratingCooldown, nil
}

// MarkRatingPrompted records now as the last rating-prompt time.
func (s *Store) MarkRatingPrompted(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeCollection(ctx, KeyRatingPrompt, s.now().UnixMilli())
}
