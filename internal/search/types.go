package search

import (
	"time"

	"github.com/google/uuid"
)

// CandidateDocument is the shape stored in the candidate discovery index.
// Field names mirror CandidateIndexSchema.
type CandidateDocument struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email,omitempty"`
	CurrentTitle    string    `json:"currentTitle,omitempty"`
	Location        string    `json:"location,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	YearsExperience int32     `json:"yearsExperience,omitempty"`
	SeniorityLevel  string    `json:"seniorityLevel,omitempty"`
	Summary         string    `json:"summary,omitempty"`
	ResumeBlobKey   string    `json:"resumeBlobKey,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Query describes one search request against the candidate index.
type Query struct {
	Text   string `json:"search"`
	Filter string `json:"filter,omitempty"`
	Top    int    `json:"top,omitempty"`
}
