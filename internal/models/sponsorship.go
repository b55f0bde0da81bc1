package models

import "time"

// Sponsorship is a program created by a sponsor. Once created it is
// immutable except for the applicant counter; sponsorships are never
// deleted (they survive a data purge).
type Sponsorship struct {
	ID                string    `json:"id"`
	ProviderEmail     string    `json:"providerEmail"`
	ProviderName      string    `json:"providerName,omitempty"`
	Title             string    `json:"title"`
	Type              string    `json:"type"`
	Amount            string    `json:"amount"`
	Deadline          string    `json:"deadline"`
	Criteria          string    `json:"criteria"`
	Slots             int       `json:"slots"`
	RequiredDocuments []string  `json:"requiredDocuments,omitempty"`
	Link              string    `json:"link,omitempty"`
	Applicants        int       `json:"applicants"`
	DateCreated       time.Time `json:"dateCreated"`
}
