// Package models defines the engine's persisted record types. All records
// round-trip through the document store as JSON; field names follow the
// on-disk schema.
package models

import "time"

// Role classifies the current user.
type Role string

const (
	RoleStudent Role = "student"
	RoleSponsor Role = "sponsor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSponsor, RoleAdmin:
		return true
	}
	return false
}

// DefaultSecurityScore is assigned to newly created users.
const DefaultSecurityScore = 65

// User is the single-slot identity record. Email is the unique key: logging
// in with a different email replaces the record instead of merging.
type User struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	Title         string    `json:"title,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	SecurityScore int       `json:"securityScore"`
	LastLogin     time.Time `json:"lastLogin"`
}
