package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on_leave"
)

// IsValidStatus reports whether s names a known attendance status.
func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusOnLeave:
		return true
	}
	return false
}

// Attendance is one user's record for one calendar day. One record per
// (user_id, date) is expected; duplicates are not rejected by readers.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	UserName *string
}
