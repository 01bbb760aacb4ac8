package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
// Implementations must issue parameterized queries only; readers never
// write through this interface.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns the record for (userID, date) or nil when
	// none exists. Used to prevent double check-in.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)

	Update(ctx context.Context, att Attendance) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// List returns records matching filter with pagination, newest first.
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)

	// ListByUserInRange returns every record for one user dated within
	// [startDate, endDate], no working-day filtering. Statistics filter
	// against the calendar after the fetch.
	ListByUserInRange(ctx context.Context, userID, startDate, endDate string) ([]Attendance, error)

	// ListByUsersInRange is the organization-wide variant over a user id set.
	ListByUsersInRange(ctx context.Context, userIDs []string, startDate, endDate string) ([]Attendance, error)

	// ListUserIDsOnDate returns the distinct user ids with a record dated on
	// the given day. Feeds the missing-check-in notification count.
	ListUserIDsOnDate(ctx context.Context, date string) ([]string, error)
}
