package store

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/common"
	"github.com/nuesadev/scholarengine/internal/models"
)

// SavedOpportunities returns the saved collection, newest-first.
func (s *Store) SavedOpportunities(ctx context.Context) ([]models.SavedOpportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := []models.SavedOpportunity{}
	if _, err := s.readCollection(ctx, KeySaved, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// SaveOpportunity prepends opp to the saved collection.
//
// Saving is at-most-once by title: if any existing record shares the same
// Title the call is a silent no-op, regardless of ID. Callers must not
// treat the silence as an error. Missing ID, Status and DateSaved are
// filled in.
func (s *Store) SaveOpportunity(ctx context.Context, opp models.SavedOpportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := []models.SavedOpportunity{}
	if _, err := s.readCollection(ctx, KeySaved, &saved); err != nil {
		return err
	}

	for _, existing := range saved {
		if existing.Title == opp.Title {
			return nil
		}
	}

	if opp.ID == "" {
		opp.ID = s.newID()
	}
	if opp.Status == "" {
		opp.Status = models.StatusInterested
	}
	if opp.DateSaved.IsZero() {
		opp.DateSaved = s.now()
	}

	saved = append([]models.SavedOpportunity{opp}, saved...)
	if err := s.writeCollection(ctx, KeySaved, saved); err != nil {
		return err
	}

	return s.appendLogLocked(ctx, "Data Usage: Opportunity tracked: "+opp.Title, models.LogSuccess)
}

// UpdateOpportunityStatus sets the status of the record with the given id.
// An unknown id is a no-op, matching the save semantics.
func (s *Store) UpdateOpportunityStatus(ctx context.Context, id string, status models.OpportunityStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.Valid() {
		return common.ErrorInvalidStatus
	}

	saved := []models.SavedOpportunity{}
	if _, err := s.readCollection(ctx, KeySaved, &saved); err != nil {
		return err
	}

	for i := range saved {
		if saved[i].ID == id {
			saved[i].Status = status
			if err := s.writeCollection(ctx, KeySaved, saved); err != nil {
				return err
			}
			return s.appendLogLocked(ctx,
				"Data Usage: Application status updated to "+string(status), models.LogSuccess)
		}
	}
	return nil
}

// RemoveOpportunity deletes the record with the given id, if present.
func (s *Store) RemoveOpportunity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := []models.SavedOpportunity{}
	if _, err := s.readCollection(ctx, KeySaved, &saved); err != nil {
		return err
	}

	kept := saved[:0]
	for _, opp := range saved {
		if opp.ID != id {
			kept = append(kept, opp)
		}
	}
	if len(kept) == len(saved) {
		return nil
	}
	return s.writeCollection(ctx, KeySaved, kept)
}
