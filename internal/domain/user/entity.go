package user

import "time"

type Role string

const (
	RoleAdmin     Role = "admin"     // Full access, user management
	RoleHR        Role = "hr"        // Payroll, applications, reviews
	RoleManager   Role = "manager"   // Leave/review approvals for their team
	RoleEmployee  Role = "employee"  // Regular employee
	RoleCandidate Role = "candidate" // Applicant, job board access only
)

// AllRoles returns the closed set of roles.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleManager, RoleEmployee, RoleCandidate}
}

// IsValidRole reports whether s names a known role.
func IsValidRole(s string) bool {
	for _, r := range AllRoles() {
		if Role(s) == r {
			return true
		}
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	StartDate    *time.Time
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStaff checks if the user holds an internal (non-candidate) role
func (u *User) IsStaff() bool {
	return u.Role != RoleCandidate
}

// CanApprove checks if user can approve leave requests and reviews
func (u *User) CanApprove() bool {
	return u.Role == RoleAdmin || u.Role == RoleHR || u.Role == RoleManager
}
