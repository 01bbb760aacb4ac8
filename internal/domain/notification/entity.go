package notification

import (
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

// Category is a notification grouping with its own role-visibility rule.
type Category string

const (
	CategoryPayroll      Category = "payroll"
	CategoryPerformance  Category = "performance"
	CategoryLeaves       Category = "leaves"
	CategoryAttendance   Category = "attendance"
	CategoryApplications Category = "applications"
	CategoryInterviews   Category = "interviews"
	CategoryUsers        Category = "users"
)

// AllCategories returns every category in response order.
func AllCategories() []Category {
	return []Category{
		CategoryPayroll,
		CategoryPerformance,
		CategoryLeaves,
		CategoryAttendance,
		CategoryApplications,
		CategoryInterviews,
		CategoryUsers,
	}
}

// categoryRoles is the visibility table: category -> roles allowed to see a
// non-zero value. Roles outside the set always get 0, never an omitted key.
// Leaves and attendance are special: every role sees them, but non-privileged
// roles see only their own scope (handled in the service).
var categoryRoles = map[Category][]user.Role{
	CategoryPayroll:      {user.RoleAdmin, user.RoleHR},
	CategoryPerformance:  {user.RoleAdmin, user.RoleHR, user.RoleManager},
	CategoryLeaves:       {user.RoleAdmin, user.RoleHR, user.RoleManager, user.RoleEmployee, user.RoleCandidate},
	CategoryAttendance:   {user.RoleAdmin, user.RoleHR, user.RoleManager, user.RoleEmployee, user.RoleCandidate},
	CategoryApplications: {user.RoleAdmin, user.RoleHR},
	CategoryInterviews:   {user.RoleAdmin, user.RoleHR},
	CategoryUsers:        {user.RoleAdmin},
}

// privilegedRoles see organization-wide scope for leaves and attendance;
// everyone else sees only themselves.
var privilegedRoles = []user.Role{user.RoleAdmin, user.RoleHR, user.RoleManager}

// RoleSees reports whether role is in the category's allow-list.
func RoleSees(cat Category, role user.Role) bool {
	for _, r := range categoryRoles[cat] {
		if r == role {
			return true
		}
	}
	return false
}

// IsPrivileged reports whether role sees org-wide leave and attendance scope.
func IsPrivileged(role user.Role) bool {
	for _, r := range privilegedRoles {
		if r == role {
			return true
		}
	}
	return false
}
