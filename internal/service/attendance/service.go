package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/calendar"
)

type AttendanceServiceImpl struct {
	attRepo  attendance.AttendanceRepository
	userRepo user.UserRepository
	loc      *time.Location
	cutoff   string // HH:MM, late past this local time
	now      func() time.Time
}

func NewAttendanceService(
	attRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	loc *time.Location,
	checkInCutoff string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attRepo:  attRepo,
		userRepo: userRepo,
		loc:      loc,
		cutoff:   checkInCutoff,
		now:      time.Now,
	}
}

// actorID extracts the authenticated user id from JWT claims.
func actorID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("user_id not found in claims")
	}
	return id, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func toResponse(att attendance.Attendance) attendance.Response {
	return attendance.Response{
		ID:           att.ID,
		UserID:       att.UserID,
		UserName:     att.UserName,
		Date:         att.Date.Format(calendar.DateLayout),
		Status:       string(att.Status),
		CheckInTime:  timePtrToString(att.CheckInTime),
		CheckOutTime: timePtrToString(att.CheckOutTime),
		Notes:        att.Notes,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	nowLocal := s.now().In(s.loc)
	dateLocal := nowLocal.Format(calendar.DateLayout)

	existing, err := s.attRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.Response{}, err
	}
	if existing != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.StatusPresent
	cutoff, err := time.ParseInLocation(calendar.DateLayout+" 15:04", dateLocal+" "+s.cutoff, s.loc)
	if err == nil && nowLocal.After(cutoff) {
		status = attendance.StatusLate
	}

	checkIn := nowLocal
	created, err := s.attRepo.Create(ctx, attendance.Attendance{
		UserID:      userID,
		Date:        mustParseDate(dateLocal, s.loc),
		Status:      status,
		CheckInTime: &checkIn,
		Notes:       req.Notes,
	})
	if err != nil {
		return attendance.Response{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return attendance.Response{}, err
	}

	nowLocal := s.now().In(s.loc)
	dateLocal := nowLocal.Format(calendar.DateLayout)

	existing, err := s.attRepo.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return attendance.Response{}, err
	}
	if existing == nil {
		return attendance.Response{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckOutTime != nil {
		return attendance.Response{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := nowLocal
	existing.CheckOutTime = &checkOut
	if req.Notes != nil {
		existing.Notes = req.Notes
	}

	updated, err := s.attRepo.Update(ctx, *existing)
	if err != nil {
		return attendance.Response{}, err
	}

	return toResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}
	filter.UserID = &userID

	return s.list(ctx, filter)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	return s.list(ctx, filter)
}

func (s *AttendanceServiceImpl) list(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	atts, total, err := s.attRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	responses := make([]attendance.Response, 0, len(atts))
	for _, att := range atts {
		responses = append(responses, toResponse(att))
	}

	return attendance.ListResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

// Stats implements attendance.AttendanceService. All classification happens
// after the fetch: rows are pulled for the full requested range and then
// intersected with the working-day calendar, so leave precedence and weekend
// exclusion are decided here, not in SQL.
func (s *AttendanceServiceImpl) Stats(ctx context.Context, req attendance.StatsRequest) (attendance.Stats, error) {
	if err := req.Validate(); err != nil {
		return attendance.Stats{}, err
	}

	if req.UserID != nil {
		return s.userStats(ctx, *req.UserID, req.StartDate, req.EndDate)
	}
	return s.orgStats(ctx, req.StartDate, req.EndDate)
}

func (s *AttendanceServiceImpl) userStats(ctx context.Context, userID, startDate, endDate string) (attendance.Stats, error) {
	var (
		u       user.User
		records []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		u, err = s.userRepo.GetByID(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attRepo.ListByUserInRange(gCtx, userID, startDate, endDate)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.Stats{}, err
	}

	var empStart *string
	if u.StartDate != nil {
		str := u.StartDate.In(s.loc).Format(calendar.DateLayout)
		empStart = &str
	}

	workingDays, err := calendar.WorkingDays(s.loc, startDate, endDate, empStart)
	if err != nil {
		return attendance.Stats{}, err
	}
	totalDays, err := calendar.CalendarDays(s.loc, startDate, endDate)
	if err != nil {
		return attendance.Stats{}, err
	}

	workingSet := make(map[string]bool, len(workingDays))
	for _, d := range workingDays {
		workingSet[d] = true
	}

	stats := attendance.Stats{
		TotalDays:        totalDays,
		WorkingDaysCount: len(workingDays),
	}

	covered := make(map[string]bool)
	markedAbsent := 0
	for _, rec := range records {
		day := rec.Date.Format(calendar.DateLayout)
		if !workingSet[day] {
			// Weekend or pre-start-date record: tallied apart, never in
			// the percentage.
			stats.WeekendDays++
			if rec.Status == attendance.StatusPresent {
				stats.WeekendPresent++
			}
			continue
		}
		covered[day] = true
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusOnLeave:
			stats.LeaveDays++
		case attendance.StatusAbsent:
			markedAbsent++
		}
	}

	// A working day with no record at all counts as absent, same as an
	// explicit absent mark. A day covered by an approved leave record stays
	// leave, never absent.
	unmarked := 0
	for _, d := range workingDays {
		if !covered[d] {
			unmarked++
		}
	}
	stats.AbsentDays = markedAbsent + unmarked

	if stats.WorkingDaysCount > 0 {
		stats.AttendancePercentage = float64(stats.PresentDays+stats.LateDays) / float64(stats.WorkingDaysCount) * 100
	}

	if sum := stats.PresentDays + stats.LateDays + stats.AbsentDays + stats.LeaveDays; sum != stats.WorkingDaysCount {
		slog.Warn("attendance stats totals do not match working days",
			"user_id", userID,
			"sum", sum,
			"working_days", stats.WorkingDaysCount,
		)
	}

	return stats, nil
}

func (s *AttendanceServiceImpl) orgStats(ctx context.Context, startDate, endDate string) (attendance.Stats, error) {
	staffIDs, err := s.userRepo.ListStaffIDs(ctx)
	if err != nil {
		return attendance.Stats{}, err
	}

	// No staff at all: return zeroes without touching the attendance table.
	// WorkingDaysCount stays 0 here even when the range has working days.
	if len(staffIDs) == 0 {
		return attendance.Stats{}, nil
	}

	workingDays, err := calendar.WorkingDays(s.loc, startDate, endDate, nil)
	if err != nil {
		return attendance.Stats{}, err
	}
	totalDays, err := calendar.CalendarDays(s.loc, startDate, endDate)
	if err != nil {
		return attendance.Stats{}, err
	}

	records, err := s.attRepo.ListByUsersInRange(ctx, staffIDs, startDate, endDate)
	if err != nil {
		return attendance.Stats{}, err
	}

	stats := attendance.Stats{
		TotalDays:        totalDays,
		WorkingDaysCount: len(workingDays),
	}

	// Organization-wide view counts fetched rows as-is: no absence is
	// imputed for days without records, that only happens per user.
	usersWithRecord := make(map[string]bool)
	for _, rec := range records {
		usersWithRecord[rec.UserID] = true
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusOnLeave:
			stats.LeaveDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		}
	}

	// The denominator multiplies by employees that have at least one record
	// in range, not by total staff. Employees with zero records therefore
	// don't dilute the percentage; kept to match the existing reports.
	denominator := stats.WorkingDaysCount * len(usersWithRecord)
	if denominator > 0 {
		stats.AttendancePercentage = float64(stats.PresentDays+stats.LateDays) / float64(denominator) * 100
	}

	return stats, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateRequest) (attendance.Response, error) {
	if err := req.Validate(); err != nil {
		return attendance.Response{}, err
	}

	att, err := s.attRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.Response{}, err
	}

	if req.Status != nil {
		att.Status = attendance.Status(strings.ToLower(*req.Status))
	}
	if t := req.CheckInAt(); t != nil {
		att.CheckInTime = t
	}
	if t := req.CheckOutAt(); t != nil {
		att.CheckOutTime = t
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	updated, err := s.attRepo.Update(ctx, att)
	if err != nil {
		return attendance.Response{}, err
	}

	return toResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attRepo.Delete(ctx, id)
}

func mustParseDate(s string, loc *time.Location) time.Time {
	t, _ := time.ParseInLocation(calendar.DateLayout, s, loc)
	return t
}
