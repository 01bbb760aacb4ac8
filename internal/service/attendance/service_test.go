package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

// fakeUserRepo serves canned users; only the methods the stats path touches
// do anything real.
type fakeUserRepo struct {
	users    map[string]user.User
	staffIDs []string
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
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
func (f *fakeUserRepo) ListStaffIDs(ctx context.Context) ([]string, error) {
	return f.staffIDs, nil
}
func (f *fakeUserRepo) ListAttendanceEligible(ctx context.Context, date string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) CountInactive(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeUserRepo) ListInactive(ctx context.Context, limit int) ([]user.User, error) {
	return nil, nil
}

// fakeAttendanceRepo serves canned records filtered by user and date range.
// marked holds today's record per userID+"|"+date, byID serves GetByID, and
// created/updated capture writes for assertions.
type fakeAttendanceRepo struct {
	records []attendance.Attendance
	marked  map[string]attendance.Attendance
	byID    map[string]attendance.Attendance
	created []attendance.Attendance
	updated []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.created = append(f.created, att)
	return att, nil
}
func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.byID[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}
func (f *fakeAttendanceRepo) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	att, ok := f.marked[userID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &att, nil
}
func (f *fakeAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.updated = append(f.updated, att)
	return att, nil
}
func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceRepo) ListByUserInRange(ctx context.Context, userID, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		day := rec.Date.Format("2006-01-02")
		if rec.UserID == userID && day >= startDate && day <= endDate {
			out = append(out, rec)
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) ListByUsersInRange(ctx context.Context, userIDs []string, startDate, endDate string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		day := rec.Date.Format("2006-01-02")
		if day < startDate || day > endDate {
			continue
		}
		for _, id := range userIDs {
			if rec.UserID == id {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}
func (f *fakeAttendanceRepo) ListUserIDsOnDate(ctx context.Context, date string) ([]string, error) {
	return nil, nil
}

func date(s string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", s, time.UTC)
	return t
}

func record(userID, day string, status attendance.Status) attendance.Attendance {
	return attendance.Attendance{
		ID:     userID + "-" + day,
		UserID: userID,
		Date:   date(day),
		Status: status,
	}
}

func newTestService(users *fakeUserRepo, atts *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(atts, users, time.UTC, "09:15")
}

func strPtr(s string) *string { return &s }

func TestStats_NoRecords_AllWorkingDaysAbsent(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee},
	}}
	svc := newTestService(users, &fakeAttendanceRepo{})

	// 2024-01-01 (Mon) .. 2024-01-05 (Fri): 5 working days
	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.WorkingDaysCount)
	assert.Equal(t, 0, stats.PresentDays)
	assert.Equal(t, 0, stats.LateDays)
	assert.Equal(t, 0, stats.LeaveDays)
	assert.Equal(t, 5, stats.AbsentDays)
	assert.Equal(t, float64(0), stats.AttendancePercentage)
}

func TestStats_AllPresent_FullPercentage(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
		record("u1", "2024-01-02", attendance.StatusPresent),
		record("u1", "2024-01-03", attendance.StatusPresent),
		record("u1", "2024-01-04", attendance.StatusPresent),
		record("u1", "2024-01-05", attendance.StatusPresent),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.PresentDays)
	assert.Equal(t, 0, stats.AbsentDays)
	assert.Equal(t, float64(100), stats.AttendancePercentage)
}

func TestStats_WorkedExample_ThreePresentOfFive(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
		record("u1", "2024-01-02", attendance.StatusPresent),
		record("u1", "2024-01-03", attendance.StatusPresent),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.WorkingDaysCount)
	assert.Equal(t, 3, stats.PresentDays)
	assert.Equal(t, 2, stats.AbsentDays)
	assert.InDelta(t, 60.0, stats.AttendancePercentage, 0.0001)
}

func TestStats_WeekendRecordExcludedFromPercentage(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		// 2024-01-06 is a Saturday
		record("u1", "2024-01-06", attendance.StatusPresent),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-06",
		EndDate:   "2024-01-07",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.WorkingDaysCount)
	assert.Equal(t, 0, stats.PresentDays)
	assert.Equal(t, 0, stats.AbsentDays)
	assert.Equal(t, 1, stats.WeekendDays)
	assert.Equal(t, 1, stats.WeekendPresent)
	assert.Equal(t, float64(0), stats.AttendancePercentage)
}

func TestStats_LeaveTakesPrecedenceOverAbsence(t *testing.T) {
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
		record("u1", "2024-01-02", attendance.StatusOnLeave),
		record("u1", "2024-01-03", attendance.StatusLate),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.PresentDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 1, stats.LeaveDays)
	// Only the two uncovered working days are absent, not the leave day.
	assert.Equal(t, 2, stats.AbsentDays)
	assert.InDelta(t, 40.0, stats.AttendancePercentage, 0.0001)
}

func TestStats_EmployeeStartDateBoundsWorkingDays(t *testing.T) {
	start := date("2024-01-03")
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee, StartDate: &start},
	}}
	svc := newTestService(users, &fakeAttendanceRepo{})

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	// Only Wed..Fri count once the employee's start date applies.
	assert.Equal(t, 3, stats.WorkingDaysCount)
	assert.Equal(t, 3, stats.AbsentDays)
}

func TestStats_RecordBeforeStartDateCountedAsWeekend(t *testing.T) {
	start := date("2024-01-03")
	users := &fakeUserRepo{users: map[string]user.User{
		"u1": {ID: "u1", Name: "Ana", Role: user.RoleEmployee, StartDate: &start},
	}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("u1"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.PresentDays)
	assert.Equal(t, 1, stats.WeekendDays)
	assert.Equal(t, 1, stats.WeekendPresent)
}

func TestStats_UnknownUser(t *testing.T) {
	svc := newTestService(&fakeUserRepo{users: map[string]user.User{}}, &fakeAttendanceRepo{})

	_, err := svc.Stats(context.Background(), attendance.StatsRequest{
		UserID:    strPtr("nope"),
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestStats_InvalidRange(t *testing.T) {
	svc := newTestService(&fakeUserRepo{}, &fakeAttendanceRepo{})

	_, err := svc.Stats(context.Background(), attendance.StatsRequest{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-01",
	})
	assert.Error(t, err)
}

func TestStats_OrgWide_NoStaffShortCircuits(t *testing.T) {
	svc := newTestService(&fakeUserRepo{staffIDs: nil}, &fakeAttendanceRepo{})

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	// Documented special case: zero everything, including WorkingDaysCount,
	// even though the range itself has working days.
	assert.Equal(t, attendance.Stats{}, stats)
}

func TestStats_OrgWide_CountsAndPercentage(t *testing.T) {
	users := &fakeUserRepo{staffIDs: []string{"u1", "u2"}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
		record("u1", "2024-01-02", attendance.StatusPresent),
		record("u1", "2024-01-03", attendance.StatusLate),
		record("u1", "2024-01-04", attendance.StatusAbsent),
		record("u1", "2024-01-05", attendance.StatusOnLeave),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, stats.WorkingDaysCount)
	assert.Equal(t, 2, stats.PresentDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.Equal(t, 1, stats.LeaveDays)
	// Denominator is workingDays x employees with any record (1 here, u2
	// has none), so 3/5 = 60%.
	assert.InDelta(t, 60.0, stats.AttendancePercentage, 0.0001)
}

func TestStats_OrgWide_NoImputationForMissingDays(t *testing.T) {
	users := &fakeUserRepo{staffIDs: []string{"u1"}}
	atts := &fakeAttendanceRepo{records: []attendance.Attendance{
		record("u1", "2024-01-01", attendance.StatusPresent),
	}}
	svc := newTestService(users, atts)

	stats, err := svc.Stats(context.Background(), attendance.StatsRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-05",
	})
	require.NoError(t, err)

	// Unlike the per-user view, missing days stay uncounted here.
	assert.Equal(t, 0, stats.AbsentDays)
	assert.Equal(t, 1, stats.PresentDays)
}

func authedCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    "employee",
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// pinClock fixes the service clock to a local "YYYY-MM-DD HH:MM" instant.
func pinClock(t *testing.T, svc attendance.AttendanceService, at string) {
	t.Helper()
	fixed, err := time.ParseInLocation("2006-01-02 15:04", at, time.UTC)
	require.NoError(t, err)
	svc.(*AttendanceServiceImpl).now = func() time.Time { return fixed }
}

func TestCheckIn_BeforeCutoffMarksPresent(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 09:00")

	resp, err := svc.CheckIn(authedCtx(t, "u1"), attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	assert.Equal(t, "2024-01-03", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	require.Len(t, atts.created, 1)
}

func TestCheckIn_AtCutoffStillPresent(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 09:15")

	resp, err := svc.CheckIn(authedCtx(t, "u1"), attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestCheckIn_AfterCutoffMarksLate(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 09:16")

	resp, err := svc.CheckIn(authedCtx(t, "u1"), attendance.CheckInRequest{})

	require.NoError(t, err)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestCheckIn_TwiceSameDayRejected(t *testing.T) {
	atts := &fakeAttendanceRepo{
		marked: map[string]attendance.Attendance{
			"u1|2024-01-03": record("u1", "2024-01-03", attendance.StatusPresent),
		},
	}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 13:00")

	_, err := svc.CheckIn(authedCtx(t, "u1"), attendance.CheckInRequest{})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Empty(t, atts.created)
}

func TestCheckOut_WithoutCheckInRejected(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 17:00")

	_, err := svc.CheckOut(authedCtx(t, "u1"), attendance.CheckOutRequest{})

	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_RecordsCheckOutTime(t *testing.T) {
	in := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	rec := record("u1", "2024-01-03", attendance.StatusPresent)
	rec.CheckInTime = &in
	atts := &fakeAttendanceRepo{
		marked: map[string]attendance.Attendance{"u1|2024-01-03": rec},
	}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 17:30")

	resp, err := svc.CheckOut(authedCtx(t, "u1"), attendance.CheckOutRequest{})

	require.NoError(t, err)
	require.NotNil(t, resp.CheckOutTime)
	assert.Equal(t, "2024-01-03T17:30:00Z", *resp.CheckOutTime)
	require.Len(t, atts.updated, 1)
}

func TestCheckOut_TwiceRejected(t *testing.T) {
	in := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC)
	rec := record("u1", "2024-01-03", attendance.StatusPresent)
	rec.CheckInTime = &in
	rec.CheckOutTime = &out
	atts := &fakeAttendanceRepo{
		marked: map[string]attendance.Attendance{"u1|2024-01-03": rec},
	}
	svc := newTestService(&fakeUserRepo{}, atts)
	pinClock(t, svc, "2024-01-03 18:00")

	_, err := svc.CheckOut(authedCtx(t, "u1"), attendance.CheckOutRequest{})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	assert.Empty(t, atts.updated)
}

func TestUpdate_AppliesCorrectedTimes(t *testing.T) {
	const recID = "7b51a2c4-3f0e-4d1a-9b6f-2c8e5d4a1f03"
	atts := &fakeAttendanceRepo{
		byID: map[string]attendance.Attendance{
			recID: {ID: recID, UserID: "u1", Date: date("2024-01-03"), Status: attendance.StatusPresent},
		},
	}
	svc := newTestService(&fakeUserRepo{}, atts)

	resp, err := svc.Update(context.Background(), attendance.UpdateRequest{
		ID:          recID,
		Status:      strPtr("late"),
		CheckInTime: strPtr("2024-01-03T09:45:00Z"),
	})

	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
	require.NotNil(t, resp.CheckInTime)
	assert.Equal(t, "2024-01-03T09:45:00Z", *resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
}

func TestUpdate_InvalidTimestampRejected(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)

	_, err := svc.Update(context.Background(), attendance.UpdateRequest{
		ID:          "7b51a2c4-3f0e-4d1a-9b6f-2c8e5d4a1f03",
		CheckInTime: strPtr("yesterday at nine"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "check_in_time")
	assert.Empty(t, atts.updated)
}

func TestUpdate_MalformedIDRejected(t *testing.T) {
	atts := &fakeAttendanceRepo{}
	svc := newTestService(&fakeUserRepo{}, atts)

	_, err := svc.Update(context.Background(), attendance.UpdateRequest{ID: "att-1"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "id")
}
