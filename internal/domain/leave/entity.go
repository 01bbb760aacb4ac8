package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID         string
	UserID     string
	Type       string // annual, sick, unpaid, ...
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	UserName *string
}
