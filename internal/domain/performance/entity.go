package performance

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

type Review struct {
	ID          string
	UserID      string
	ReviewerID  string
	Period      string // e.g. 2024-Q1
	Rating      *int   // 1..5, set on completion
	Feedback    *string
	Status      Status
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joins
	UserName     *string
	ReviewerName *string
}
