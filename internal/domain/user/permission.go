package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Attendance
	PermissionAttendanceMark    Permission = "attendance.mark"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceCorrect Permission = "attendance.correct"

	// Leave
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Recruitment
	PermissionJobManage         Permission = "job.manage"
	PermissionApplicationApply  Permission = "application.apply"
	PermissionApplicationManage Permission = "application.manage"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollManage  Permission = "payroll.manage"

	// Performance
	PermissionReviewViewOwn Permission = "review.view_own"
	PermissionReviewManage  Permission = "review.manage"

	// User Management
	PermissionUserViewAll Permission = "user.view_all"
	PermissionUserManage  Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionJobManage,
		PermissionApplicationManage,
		PermissionPayrollViewOwn,
		PermissionPayrollManage,
		PermissionReviewViewOwn,
		PermissionReviewManage,
		PermissionUserViewAll,
		PermissionUserManage,
	},
	RoleHR: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionAttendanceCorrect,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionJobManage,
		PermissionApplicationManage,
		PermissionPayrollViewOwn,
		PermissionPayrollManage,
		PermissionReviewViewOwn,
		PermissionReviewManage,
		PermissionUserViewAll,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceMark,
		PermissionAttendanceViewAll,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollViewOwn,
		PermissionReviewViewOwn,
		PermissionReviewManage,
	},
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionAttendanceMark,
		PermissionLeaveCreate,
		PermissionPayrollViewOwn,
		PermissionReviewViewOwn,
	},
	RoleCandidate: {
		PermissionViewOwnProfile,
		PermissionApplicationApply,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
