package payroll

import (
	"context"
)

// PayrollRepository defines data access methods for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByUserAndPeriod(ctx context.Context, userID, period string) (*Payroll, error)
	ListByUser(ctx context.Context, userID string) ([]Payroll, error)
	ListByPeriod(ctx context.Context, period string) ([]Payroll, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Payroll, error)

	// CountOutstanding counts records with status draft, pending or processed.
	CountOutstanding(ctx context.Context) (int, error)

	// ListOutstandingWithUser returns outstanding records joined with the
	// user's name, newest first, up to limit.
	ListOutstandingWithUser(ctx context.Context, limit int) ([]Payroll, error)
}

// PayrollService defines business logic for payroll.
type PayrollService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetMyPayrolls(ctx context.Context) ([]Response, error)
	ListByPeriod(ctx context.Context, period string) ([]Response, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (Response, error)
}
