package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

func TestRoleSees_AdminSeesEveryCategory(t *testing.T) {
	for _, cat := range AllCategories() {
		assert.True(t, RoleSees(cat, user.RoleAdmin), "admin should see %s", cat)
	}
}

func TestRoleSees_VisibilityTable(t *testing.T) {
	visible := map[user.Role]map[Category]bool{
		user.RoleHR: {
			CategoryPayroll:      true,
			CategoryPerformance:  true,
			CategoryLeaves:       true,
			CategoryAttendance:   true,
			CategoryApplications: true,
			CategoryInterviews:   true,
		},
		user.RoleManager: {
			CategoryPerformance: true,
			CategoryLeaves:      true,
			CategoryAttendance:  true,
		},
		user.RoleEmployee: {
			CategoryLeaves:     true,
			CategoryAttendance: true,
		},
		user.RoleCandidate: {
			CategoryLeaves:     true,
			CategoryAttendance: true,
		},
	}

	for role, want := range visible {
		for _, cat := range AllCategories() {
			assert.Equal(t, want[cat], RoleSees(cat, role), "role=%s category=%s", role, cat)
		}
	}
}
