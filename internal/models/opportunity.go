package models

import "time"

// OpportunityStatus tracks the user's progress on a saved opportunity.
type OpportunityStatus string

const (
	StatusInterested OpportunityStatus = "Interested"
	StatusApplied    OpportunityStatus = "Applied"
	StatusWon        OpportunityStatus = "Won"
)

func (s OpportunityStatus) Valid() bool {
	switch s {
	case StatusInterested, StatusApplied, StatusWon:
		return true
	}
	return false
}

// OpportunityType distinguishes the two kinds of discoverable opportunities.
type OpportunityType string

const (
	TypeScholarship OpportunityType = "scholarship"
	TypeInternship  OpportunityType = "internship"
)

// SavedOpportunity is an opportunity the user chose to track.
//
// Within the saved collection, Title acts as the uniqueness key: saving a
// second record with the same title is a silent no-op, independent of ID.
type SavedOpportunity struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Provider          string            `json:"provider"`
	Amount            string            `json:"amount,omitempty"`
	Deadline          string            `json:"deadline,omitempty"`
	Status            OpportunityStatus `json:"status"`
	Type              OpportunityType   `json:"type"`
	DateSaved         time.Time         `json:"dateSaved"`
	RequiredDocuments []string          `json:"requiredDocuments,omitempty"`
}
