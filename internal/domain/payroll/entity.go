package payroll

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// OutstandingStatuses are the statuses still awaiting payroll action.
func OutstandingStatuses() []Status {
	return []Status{StatusDraft, StatusPending, StatusProcessed}
}

type Payroll struct {
	ID          string
	UserID      string
	Period      string // YYYY-MM
	BaseSalary  float64
	Allowances  float64
	Deductions  float64
	NetPay      float64
	Status      Status
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	UserName *string
}
