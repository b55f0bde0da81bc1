package store

import (
	"context"

	"github.com/nuesadev/scholarengine/internal/common"
	"github.com/nuesadev/scholarengine/internal/models"
)

// LoginParams carries the identity fields supplied at login. Role defaults
// to student when empty; Title and ContactPerson are optional.
type LoginParams struct {
	Email         string
	Name          string
	Role          models.Role
	Title         string
	ContactPerson string
}

// Login creates or refreshes the single current-user record.
//
// If a record with the same email exists, mutable fields are merged into it
// (role and name replaced when provided, title only filled if empty,
// contact person replaced when provided). A different email replaces the
// record outright. LastLogin is always refreshed. The saved-opportunities
// collection is initialized if absent, and a sign-in audit entry is
// appended.
func (s *Store) Login(ctx context.Context, p LoginParams) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Email == "" {
		return models.User{}, common.ErrorEmptyEmail
	}
	if p.Role == "" {
		p.Role = models.RoleStudent
	}
	if !p.Role.Valid() {
		return models.User{}, common.ErrorInvalidRole
	}

	var user models.User
	found, err := s.readCollection(ctx, KeyUser, &user)
	if err != nil {
		return models.User{}, err
	}

	if found && user.Email == p.Email {
		if p.Role != "" && user.Role != p.Role {
			user.Role = p.Role
		}
		if p.Name != "" && user.Name != p.Name {
			user.Name = p.Name
		}
		if p.Title != "" && user.Title == "" {
			user.Title = p.Title
		}
		if p.ContactPerson != "" {
			user.ContactPerson = p.ContactPerson
		}
	} else {
		user = models.User{
			Email:         p.Email,
			Name:          p.Name,
			Role:          p.Role,
			Title:         p.Title,
			ContactPerson: p.ContactPerson,
			SecurityScore: models.DefaultSecurityScore,
		}
	}
	user.LastLogin = s.now()

	if err := s.writeCollection(ctx, KeyUser, user); err != nil {
		return models.User{}, err
	}

	// make sure the saved collection exists for the new session
	var saved []models.SavedOpportunity
	if found, err := s.readCollection(ctx, KeySaved, &saved); err != nil {
		return models.User{}, err
	} else if !found {
		if err := s.writeCollection(ctx, KeySaved, []models.SavedOpportunity{}); err != nil {
			return models.User{}, err
		}
	}

	if err := s.appendLogLocked(ctx, "Authentication: Successful sign-in", models.LogSuccess); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CurrentUser returns the current user, or nil when no session exists.
func (s *Store) CurrentUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user models.User
	found, err := s.readCollection(ctx, KeyUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// UpdateUser replaces the current user record wholesale.
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Email == "" {
		return common.ErrorEmptyEmail
	}
	return s.writeCollection(ctx, KeyUser, user)
}

// Logout clears the user collection after recording a user-initiated
// termination entry. The audit entry is written first so it never lags the
// mutation it describes.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLocked(ctx, "Authentication: Session terminated by user", models.LogSuccess)
}

// ExpireSession is Logout for the inactivity path: same clearing of the
// user collection, recorded as a warning.
func (s *Store) ExpireSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logoutLocked(ctx, "Authentication: Session terminated (inactivity timeout)", models.LogWarning)
}

func (s *Store) logoutLocked(ctx context.Context, action string, status models.LogStatus) error {
	if err := s.appendLogLocked(ctx, action, status); err != nil {
		return err
	}
	if err := s.medium.Delete(ctx, KeyUser); err != nil {
		return err
	}
	return nil
}
