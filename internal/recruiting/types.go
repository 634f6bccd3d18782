// Package recruiting exposes the typed AI operations of the backend. Each
// operation follows the same flow: look up the task template and
// parameters, render the prompt, call the completion gateway, extract the
// embedded JSON payload, and validate it before returning a typed result.
package recruiting

import "github.com/google/uuid"

// PersonalInfo is the contact block of a parsed resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Position is one work-experience entry of a parsed resume.
type Position struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Highlights []string `json:"highlights"`
}

// Degree is one education entry of a parsed resume.
type Degree struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ResumeData is the structured result of resume extraction.
type ResumeData struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	WorkExperience []Position   `json:"workExperience"`
	Education      []Degree     `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
}

// EmailRequest describes the outreach email to generate.
type EmailRequest struct {
	CandidateName     string
	JobTitle          string
	CompanyName       string
	RecruiterName     string
	AdditionalContext string
}

// OutreachEmail is a generated, ready-to-send email.
type OutreachEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ExperienceSummary is the recruiter-facing digest of a work history.
type ExperienceSummary struct {
	Summary              string   `json:"summary"`
	TotalYearsExperience float64  `json:"totalYearsExperience"`
	KeyStrengths         []string `json:"keyStrengths"`
	SeniorityLevel       string   `json:"seniorityLevel"`
}

// MatchResult is the evaluation of one candidate against one job.
type MatchResult struct {
	OverallMatchScore float64  `json:"overallMatchScore"`
	MatchAnalysis     string   `json:"matchAnalysis"`
	Strengths         []string `json:"strengths"`
	Gaps              []string `json:"gaps"`
	Recommendation    string   `json:"recommendation"`
}

// JobPosting is the job side of a batch matching request.
type JobPosting struct {
	ID           uuid.UUID
	Title        string
	Requirements string
}

// JobMatch pairs a posting with its match result.
type JobMatch struct {
	Job    JobPosting
	Result *MatchResult
}
