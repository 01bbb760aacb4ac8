package leave

import (
	"context"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewerID string) (LeaveRequest, error)

	// HasOverlapping reports whether userID already has a pending or
	// approved request intersecting [startDate, endDate].
	HasOverlapping(ctx context.Context, userID, startDate, endDate string) (bool, error)

	// CountPending counts pending requests org-wide.
	CountPending(ctx context.Context) (int, error)

	// CountPendingByUser counts one user's pending requests.
	CountPendingByUser(ctx context.Context, userID string) (int, error)

	// ListPendingWithUser returns pending requests joined with the
	// requester's name, newest first, up to limit.
	ListPendingWithUser(ctx context.Context, limit int) ([]LeaveRequest, error)

	// ListPendingByUserWithUser is the own-requests variant.
	ListPendingByUserWithUser(ctx context.Context, userID string, limit int) ([]LeaveRequest, error)
}

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetMyRequests(ctx context.Context) ([]Response, error)
	ListPending(ctx context.Context) ([]Response, error)
	Approve(ctx context.Context, id string) (Response, error)
	Reject(ctx context.Context, req RejectRequest) (Response, error)
}
