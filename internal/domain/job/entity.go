package job

import "time"

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
)

type Job struct {
	ID          string
	Title       string
	Department  string
	Description *string
	IsOpen      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Application struct {
	ID            string
	JobID         string
	CandidateID   string
	Status        ApplicationStatus
	InterviewDate *time.Time
	ResumeURL     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joins
	JobTitle      *string
	CandidateName *string
}
