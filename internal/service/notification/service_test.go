package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/job"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	eligible      []user.User
	inactive      []user.User
	inactiveCount int
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return nil
}
func (f *fakeUserRepo) ListStaffIDs(ctx context.Context) ([]string, error) { return nil, nil }
func (f *fakeUserRepo) ListAttendanceEligible(ctx context.Context, date string) ([]user.User, error) {
	return f.eligible, nil
}
func (f *fakeUserRepo) CountInactive(ctx context.Context) (int, error) {
	return f.inactiveCount, nil
}
func (f *fakeUserRepo) ListInactive(ctx context.Context, limit int) ([]user.User, error) {
	return f.inactive, nil
}

type fakeAttRepo struct {
	todayRecord *attendance.Attendance
	markedIDs   []string
}

func (f *fakeAttRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (f *fakeAttRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}
func (f *fakeAttRepo) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	return f.todayRecord, nil
}
func (f *fakeAttRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}
func (f *fakeAttRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeAttRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttRepo) ListByUserInRange(ctx context.Context, userID, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) ListByUsersInRange(ctx context.Context, userIDs []string, startDate, endDate string) ([]attendance.Attendance, error) {
	return nil, nil
}
func (f *fakeAttRepo) ListUserIDsOnDate(ctx context.Context, date string) ([]string, error) {
	return f.markedIDs, nil
}

type fakeLeaveRepo struct {
	pendingCount       int
	pendingByUserCount int
	pending            []leave.LeaveRequest
	pendingByUser      []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	return req, nil
}
func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}
func (f *fakeLeaveRepo) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	return f.pending, nil
}
func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewerID string) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}
func (f *fakeLeaveRepo) HasOverlapping(ctx context.Context, userID, startDate, endDate string) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) CountPending(ctx context.Context) (int, error) { return f.pendingCount, nil }
func (f *fakeLeaveRepo) CountPendingByUser(ctx context.Context, userID string) (int, error) {
	return f.pendingByUserCount, nil
}
func (f *fakeLeaveRepo) ListPendingWithUser(ctx context.Context, limit int) ([]leave.LeaveRequest, error) {
	return f.pending, nil
}
func (f *fakeLeaveRepo) ListPendingByUserWithUser(ctx context.Context, userID string, limit int) ([]leave.LeaveRequest, error) {
	return f.pendingByUser, nil
}

type fakePayrollRepo struct {
	outstandingCount int
	outstanding      []payroll.Payroll
}

func (f *fakePayrollRepo) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	return p, nil
}
func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	return payroll.Payroll{}, payroll.ErrPayrollNotFound
}
func (f *fakePayrollRepo) GetByUserAndPeriod(ctx context.Context, userID, period string) (*payroll.Payroll, error) {
	return nil, nil
}
func (f *fakePayrollRepo) ListByUser(ctx context.Context, userID string) ([]payroll.Payroll, error) {
	return nil, nil
}
func (f *fakePayrollRepo) ListByPeriod(ctx context.Context, period string) ([]payroll.Payroll, error) {
	return nil, nil
}
func (f *fakePayrollRepo) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.Payroll, error) {
	return payroll.Payroll{}, nil
}
func (f *fakePayrollRepo) CountOutstanding(ctx context.Context) (int, error) {
	return f.outstandingCount, nil
}
func (f *fakePayrollRepo) ListOutstandingWithUser(ctx context.Context, limit int) ([]payroll.Payroll, error) {
	return f.outstanding, nil
}

type fakeReviewRepo struct {
	pendingCount int
	pending      []performance.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, r performance.Review) (performance.Review, error) {
	return r, nil
}
func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (performance.Review, error) {
	return performance.Review{}, performance.ErrReviewNotFound
}
func (f *fakeReviewRepo) ListByUser(ctx context.Context, userID string) ([]performance.Review, error) {
	return nil, nil
}
func (f *fakeReviewRepo) ListPending(ctx context.Context) ([]performance.Review, error) {
	return f.pending, nil
}
func (f *fakeReviewRepo) Complete(ctx context.Context, id string, rating int, feedback *string) (performance.Review, error) {
	return performance.Review{}, nil
}
func (f *fakeReviewRepo) CountPending(ctx context.Context) (int, error) {
	return f.pendingCount, nil
}
func (f *fakeReviewRepo) ListPendingWithNames(ctx context.Context, limit int) ([]performance.Review, error) {
	return f.pending, nil
}

type fakeAppRepo struct {
	pendingCount   int
	interviewCount int
	pending        []job.Application
	interviews     []job.Application
}

func (f *fakeAppRepo) Create(ctx context.Context, a job.Application) (job.Application, error) {
	return a, nil
}
func (f *fakeAppRepo) GetByID(ctx context.Context, id string) (job.Application, error) {
	return job.Application{}, job.ErrApplicationNotFound
}
func (f *fakeAppRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*job.Application, error) {
	return nil, nil
}
func (f *fakeAppRepo) ListByCandidate(ctx context.Context, candidateID string) ([]job.Application, error) {
	return nil, nil
}
func (f *fakeAppRepo) List(ctx context.Context, status *string) ([]job.Application, error) {
	return nil, nil
}
func (f *fakeAppRepo) UpdateStatus(ctx context.Context, id string, status job.ApplicationStatus) (job.Application, error) {
	return job.Application{}, nil
}
func (f *fakeAppRepo) ScheduleInterview(ctx context.Context, id string, interviewDate string) (job.Application, error) {
	return job.Application{}, nil
}
func (f *fakeAppRepo) CountPending(ctx context.Context) (int, error) { return f.pendingCount, nil }
func (f *fakeAppRepo) CountUpcomingInterviews(ctx context.Context, date string) (int, error) {
	return f.interviewCount, nil
}
func (f *fakeAppRepo) ListPendingWithNames(ctx context.Context, limit int) ([]job.Application, error) {
	return f.pending, nil
}
func (f *fakeAppRepo) ListUpcomingInterviews(ctx context.Context, date string, limit int) ([]job.Application, error) {
	return f.interviews, nil
}

type fixture struct {
	users   *fakeUserRepo
	atts    *fakeAttRepo
	leaves  *fakeLeaveRepo
	pays    *fakePayrollRepo
	reviews *fakeReviewRepo
	apps    *fakeAppRepo
}

func newFixture() *fixture {
	return &fixture{
		users:   &fakeUserRepo{},
		atts:    &fakeAttRepo{},
		leaves:  &fakeLeaveRepo{},
		pays:    &fakePayrollRepo{},
		reviews: &fakeReviewRepo{},
		apps:    &fakeAppRepo{},
	}
}

// newService builds the service with a pinned clock.
func (f *fixture) newService(t *testing.T, at string) notification.Service {
	t.Helper()
	fixed, err := time.ParseInLocation("2006-01-02 15:04", at, time.UTC)
	require.NoError(t, err)

	svc := NewNotificationService(f.users, f.atts, f.leaves, f.pays, f.reviews, f.apps, time.UTC)
	svc.(*NotificationServiceImpl).now = func() time.Time { return fixed }
	return svc
}

// 2024-01-03 is a Wednesday, 2024-01-06 a Saturday.
const (
	weekday = "2024-01-03 10:00"
	weekend = "2024-01-06 10:00"
)

func TestCounts_AdminSeesEveryCategory(t *testing.T) {
	f := newFixture()
	f.pays.outstandingCount = 2
	f.reviews.pendingCount = 3
	f.leaves.pendingCount = 4
	f.apps.pendingCount = 5
	f.apps.interviewCount = 1
	f.users.inactiveCount = 6
	f.users.eligible = []user.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}
	f.atts.markedIDs = []string{"u1"}

	counts, err := f.newService(t, weekday).Counts(context.Background(), "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, notification.Counts{
		Payroll:      2,
		Performance:  3,
		Leaves:       4,
		Attendance:   2, // 3 eligible, 1 already marked
		Applications: 5,
		Interviews:   1,
		Users:        6,
	}, counts)
	assert.Equal(t, 23, counts.Total())
}

func TestCounts_EmployeeOnlySeesOwnScope(t *testing.T) {
	f := newFixture()
	f.pays.outstandingCount = 9
	f.reviews.pendingCount = 9
	f.apps.pendingCount = 9
	f.apps.interviewCount = 9
	f.users.inactiveCount = 9
	f.leaves.pendingCount = 9
	f.leaves.pendingByUserCount = 1
	f.atts.todayRecord = nil // not checked in yet

	counts, err := f.newService(t, weekday).Counts(context.Background(), "emp-1", user.RoleEmployee)
	require.NoError(t, err)

	// Restricted categories stay 0 even though the repos have data.
	assert.Equal(t, notification.Counts{
		Leaves:     1,
		Attendance: 1,
	}, counts)
}

func TestCounts_WeekendZeroesAttendance(t *testing.T) {
	f := newFixture()
	f.users.eligible = []user.User{{ID: "u1"}, {ID: "u2"}}

	counts, err := f.newService(t, weekend).Counts(context.Background(), "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 0, counts.Attendance)
}

func TestCounts_ManagerSeesPerformanceNotPayroll(t *testing.T) {
	f := newFixture()
	f.pays.outstandingCount = 5
	f.reviews.pendingCount = 2
	f.users.inactiveCount = 7

	counts, err := f.newService(t, weekday).Counts(context.Background(), "mgr-1", user.RoleManager)
	require.NoError(t, err)

	assert.Equal(t, 0, counts.Payroll)
	assert.Equal(t, 2, counts.Performance)
	assert.Equal(t, 0, counts.Users)
}

func TestCounts_EmployeeCheckedInHasNoAttendanceReminder(t *testing.T) {
	f := newFixture()
	f.atts.todayRecord = &attendance.Attendance{ID: "a1", UserID: "emp-1"}

	counts, err := f.newService(t, weekday).Counts(context.Background(), "emp-1", user.RoleEmployee)
	require.NoError(t, err)

	assert.Equal(t, 0, counts.Attendance)
}

func strPtr(s string) *string { return &s }

func TestDetails_AllListsPresentEvenWhenEmpty(t *testing.T) {
	f := newFixture()
	f.atts.todayRecord = &attendance.Attendance{ID: "a1", UserID: "emp-1"}

	details, err := f.newService(t, weekday).Details(context.Background(), "emp-1", user.RoleEmployee)
	require.NoError(t, err)

	assert.NotNil(t, details.Payroll)
	assert.NotNil(t, details.Performance)
	assert.NotNil(t, details.Leaves)
	assert.NotNil(t, details.Attendance)
	assert.NotNil(t, details.Applications)
	assert.NotNil(t, details.Interviews)
	assert.NotNil(t, details.Users)
	assert.Empty(t, details.Attendance)
}

func TestDetails_LeaveMessageUsesYouForOwnRequest(t *testing.T) {
	f := newFixture()
	f.leaves.pendingByUser = []leave.LeaveRequest{{
		ID:        "l1",
		UserID:    "emp-1",
		Type:      "annual",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		UserName:  strPtr("Ana"),
	}}

	details, err := f.newService(t, weekday).Details(context.Background(), "emp-1", user.RoleEmployee)
	require.NoError(t, err)

	require.Len(t, details.Leaves, 1)
	assert.Equal(t, "You", details.Leaves[0].Name)
	assert.Equal(t, "You requested annual leave from 2024-02-01 to 2024-02-05", details.Leaves[0].Message)
}

func TestDetails_AdminAttendanceListsUnmarkedUsers(t *testing.T) {
	f := newFixture()
	f.users.eligible = []user.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Ben"},
		{ID: "u3", Name: "Cal"},
	}
	f.atts.markedIDs = []string{"u2"}

	details, err := f.newService(t, weekday).Details(context.Background(), "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	require.Len(t, details.Attendance, 2)
	assert.Equal(t, "Ana has not checked in today", details.Attendance[0].Message)
	assert.Equal(t, "Cal has not checked in today", details.Attendance[1].Message)
	assert.Equal(t, "2024-01-03", details.Attendance[0].Date)
}

func TestDetails_AttendanceCappedAtLimit(t *testing.T) {
	f := newFixture()
	for i := 0; i < 25; i++ {
		f.users.eligible = append(f.users.eligible, user.User{
			ID:   string(rune('a' + i)),
			Name: "Worker",
		})
	}

	details, err := f.newService(t, weekday).Details(context.Background(), "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	assert.Len(t, details.Attendance, notification.DetailLimit)
}

func TestDetails_PayrollAndApplicationMessages(t *testing.T) {
	f := newFixture()
	f.pays.outstanding = []payroll.Payroll{{
		ID:       "p1",
		UserID:   "u1",
		Period:   "2024-01",
		UserName: strPtr("Ana"),
	}}
	f.apps.pending = []job.Application{{
		ID:            "ap1",
		CandidateName: strPtr("Cal"),
		JobTitle:      strPtr("Backend Engineer"),
	}}

	details, err := f.newService(t, weekday).Details(context.Background(), "hr-1", user.RoleHR)
	require.NoError(t, err)

	require.Len(t, details.Payroll, 1)
	assert.Equal(t, "Payroll for Ana (2024-01) is awaiting processing", details.Payroll[0].Message)
	require.Len(t, details.Applications, 1)
	assert.Equal(t, "Cal applied for Backend Engineer", details.Applications[0].Message)
}

func TestDetails_WeekendSkipsAttendance(t *testing.T) {
	f := newFixture()
	f.users.eligible = []user.User{{ID: "u1", Name: "Ana"}}

	details, err := f.newService(t, weekend).Details(context.Background(), "admin-1", user.RoleAdmin)
	require.NoError(t, err)

	assert.Empty(t, details.Attendance)
}
