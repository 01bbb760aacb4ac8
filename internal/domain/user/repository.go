package user

import (
	"context"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
	Update(ctx context.Context, u User) (User, error)
	SetActive(ctx context.Context, id string, active bool) error

	// ListStaffIDs returns ids of every non-admin, non-candidate user.
	// Used to scope organization-wide attendance statistics.
	ListStaffIDs(ctx context.Context) ([]string, error)

	// ListAttendanceEligible returns active users with role employee, manager
	// or hr whose start_date is null or on/before the given date.
	ListAttendanceEligible(ctx context.Context, date string) ([]User, error)

	// CountInactive counts users with is_active = false.
	CountInactive(ctx context.Context) (int, error)

	// ListInactive returns inactive users, newest first, up to limit.
	ListInactive(ctx context.Context, limit int) ([]User, error)
}

// UserService defines business logic for user management.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
}
