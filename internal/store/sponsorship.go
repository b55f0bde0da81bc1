package store

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/models"
)

// CreateSponsorship prepends a new sponsorship. ID and DateCreated are
// filled in when missing. Sponsorships are never deleted; they survive a
// data purge.
func (s *Store) CreateSponsorship(ctx context.Context, sp models.Sponsorship) (models.Sponsorship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sp.ID == "" {
		sp.ID = s.newID()
	}
	if sp.DateCreated.IsZero() {
		sp.DateCreated = s.now()
	}

	list := []models.Sponsorship{}
	if _, err := s.readCollection(ctx, KeySponsorships, &list); err != nil {
		return models.Sponsorship{}, err
	}
	list = append([]models.Sponsorship{sp}, list...)
	if err := s.writeCollection(ctx, KeySponsorships, list); err != nil {
		return models.Sponsorship{}, err
	}

	if err := s.appendLogLocked(ctx, "Program Audit: New scheme created: "+sp.Title, models.LogSuccess); err != nil {
		return models.Sponsorship{}, err
	}
	return sp, nil
}

// Sponsorships returns all sponsorships, or only those owned by
// providerEmail when it is non-empty.
func (s *Store) Sponsorships(ctx context.Context, providerEmail string) ([]models.Sponsorship, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.Sponsorship{}
	if _, err := s.readCollection(ctx, KeySponsorships, &list); err != nil {
		return nil, err
	}
	if providerEmail == "" {
		return list, nil
	}

	owned := make([]models.Sponsorship, 0, len(list))
	for _, sp := range list {
		if sp.ProviderEmail == providerEmail {
			owned = append(owned, sp)
		}
	}
	return owned, nil
}

// IncrementSponsorshipApplicants bumps the applicant counter for the given
// sponsorship. An unknown id is a no-op. This is the only mutation a
// sponsorship admits after creation.
func (s *Store) IncrementSponsorshipApplicants(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := []models.Sponsorship{}
	if _, err := s.readCollection(ctx, KeySponsorships, &list); err != nil {
		return err
	}

	for i := range list {
		if list[i].ID == id {
			list[i].Applicants++
			return s.writeCollection(ctx, KeySponsorships, list)
		}
	}
	return nil
}
