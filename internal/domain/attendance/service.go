package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's attendance for the authenticated user.
	// Status is "late" past the organizational cutoff, "present" otherwise.
	CheckIn(ctx context.Context, req CheckInRequest) (Response, error)

	// CheckOut stamps the check-out time on today's record.
	CheckOut(ctx context.Context, req CheckOutRequest) (Response, error)

	// GetMyAttendance lists the authenticated user's records.
	GetMyAttendance(ctx context.Context, filter ListFilter) (ListResponse, error)

	// List lists records across users (admin/hr/manager).
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Stats aggregates attendance for one user, or organization-wide when
	// req.UserID is nil.
	Stats(ctx context.Context, req StatsRequest) (Stats, error)

	// Update corrects a record (admin/hr).
	Update(ctx context.Context, req UpdateRequest) (Response, error)

	// Delete removes a record (admin/hr).
	Delete(ctx context.Context, id string) error
}
