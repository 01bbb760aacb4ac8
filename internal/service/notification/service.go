package notification

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/job"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/calendar"
)

// NotificationServiceImpl aggregates pending items across the other domains.
// Every category query runs in parallel; a role outside a category's
// allow-list skips the query entirely and gets a zero.
type NotificationServiceImpl struct {
	userRepo    user.UserRepository
	attRepo     attendance.AttendanceRepository
	leaveRepo   leave.LeaveRepository
	payrollRepo payroll.PayrollRepository
	reviewRepo  performance.ReviewRepository
	appRepo     job.ApplicationRepository
	loc         *time.Location
	now         func() time.Time
}

func NewNotificationService(
	userRepo user.UserRepository,
	attRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	payrollRepo payroll.PayrollRepository,
	reviewRepo performance.ReviewRepository,
	appRepo job.ApplicationRepository,
	loc *time.Location,
) notification.Service {
	return &NotificationServiceImpl{
		userRepo:    userRepo,
		attRepo:     attRepo,
		leaveRepo:   leaveRepo,
		payrollRepo: payrollRepo,
		reviewRepo:  reviewRepo,
		appRepo:     appRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// today returns the current date string in the organization timezone.
func (s *NotificationServiceImpl) today() (string, time.Time) {
	nowLocal := s.now().In(s.loc)
	return nowLocal.Format(calendar.DateLayout), nowLocal
}

// Counts implements notification.Service.
func (s *NotificationServiceImpl) Counts(ctx context.Context, actorID string, role user.Role) (notification.Counts, error) {
	var counts notification.Counts
	today, nowLocal := s.today()

	g, gCtx := errgroup.WithContext(ctx)

	if notification.RoleSees(notification.CategoryPayroll, role) {
		g.Go(func() error {
			n, err := s.payrollRepo.CountOutstanding(gCtx)
			counts.Payroll = n
			return err
		})
	}

	if notification.RoleSees(notification.CategoryPerformance, role) {
		g.Go(func() error {
			n, err := s.reviewRepo.CountPending(gCtx)
			counts.Performance = n
			return err
		})
	}

	if notification.RoleSees(notification.CategoryLeaves, role) {
		g.Go(func() error {
			var (
				n   int
				err error
			)
			if notification.IsPrivileged(role) {
				n, err = s.leaveRepo.CountPending(gCtx)
			} else {
				n, err = s.leaveRepo.CountPendingByUser(gCtx, actorID)
			}
			counts.Leaves = n
			return err
		})
	}

	// Attendance reminders only exist on working days. On weekends the count
	// is 0 without touching the database.
	if notification.RoleSees(notification.CategoryAttendance, role) && !calendar.IsWeekend(nowLocal) {
		g.Go(func() error {
			n, err := s.attendancePendingCount(gCtx, actorID, role, today)
			counts.Attendance = n
			return err
		})
	}

	if notification.RoleSees(notification.CategoryApplications, role) {
		g.Go(func() error {
			n, err := s.appRepo.CountPending(gCtx)
			counts.Applications = n
			return err
		})
	}

	if notification.RoleSees(notification.CategoryInterviews, role) {
		g.Go(func() error {
			n, err := s.appRepo.CountUpcomingInterviews(gCtx, today)
			counts.Interviews = n
			return err
		})
	}

	if notification.RoleSees(notification.CategoryUsers, role) {
		g.Go(func() error {
			n, err := s.userRepo.CountInactive(gCtx)
			counts.Users = n
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return notification.Counts{}, err
	}
	return counts, nil
}

// attendancePendingCount is the number of people still unmarked today:
// org-wide for privileged roles, the actor alone otherwise.
func (s *NotificationServiceImpl) attendancePendingCount(ctx context.Context, actorID string, role user.Role, today string) (int, error) {
	if !notification.IsPrivileged(role) {
		rec, err := s.attRepo.GetByUserAndDate(ctx, actorID, today)
		if err != nil {
			return 0, err
		}
		if rec == nil {
			return 1, nil
		}
		return 0, nil
	}

	missing, err := s.unmarkedToday(ctx, today)
	if err != nil {
		return 0, err
	}
	return len(missing), nil
}

// unmarkedToday returns attendance-eligible users without a record today.
func (s *NotificationServiceImpl) unmarkedToday(ctx context.Context, today string) ([]user.User, error) {
	var (
		eligible []user.User
		marked   []string
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		eligible, err = s.userRepo.ListAttendanceEligible(gCtx, today)
		return err
	})
	g.Go(func() error {
		var err error
		marked, err = s.attRepo.ListUserIDsOnDate(gCtx, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	markedSet := make(map[string]bool, len(marked))
	for _, id := range marked {
		markedSet[id] = true
	}

	missing := make([]user.User, 0, len(eligible))
	for _, u := range eligible {
		if !markedSet[u.ID] {
			missing = append(missing, u)
		}
	}
	return missing, nil
}

// Details implements notification.Service.
func (s *NotificationServiceImpl) Details(ctx context.Context, actorID string, role user.Role) (notification.Details, error) {
	details := notification.Details{
		Payroll:      []notification.Detail{},
		Performance:  []notification.Detail{},
		Leaves:       []notification.Detail{},
		Attendance:   []notification.Detail{},
		Applications: []notification.Detail{},
		Interviews:   []notification.Detail{},
		Users:        []notification.Detail{},
	}
	today, nowLocal := s.today()

	g, gCtx := errgroup.WithContext(ctx)

	if notification.RoleSees(notification.CategoryPayroll, role) {
		g.Go(func() error {
			records, err := s.payrollRepo.ListOutstandingWithUser(gCtx, notification.DetailLimit)
			if err != nil {
				return err
			}
			for _, rec := range records {
				name := displayName(rec.UserName, rec.UserID, actorID)
				details.Payroll = append(details.Payroll, notification.Detail{
					ID:      rec.ID,
					Name:    name,
					Message: fmt.Sprintf("Payroll for %s (%s) is awaiting processing", name, rec.Period),
					Type:    string(notification.CategoryPayroll),
					Date:    rec.CreatedAt.In(s.loc).Format(calendar.DateLayout),
				})
			}
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryPerformance, role) {
		g.Go(func() error {
			reviews, err := s.reviewRepo.ListPendingWithNames(gCtx, notification.DetailLimit)
			if err != nil {
				return err
			}
			for _, rev := range reviews {
				name := displayName(rev.UserName, rev.UserID, actorID)
				details.Performance = append(details.Performance, notification.Detail{
					ID:      rev.ID,
					Name:    name,
					Message: fmt.Sprintf("Performance review for %s (%s) is pending", name, rev.Period),
					Type:    string(notification.CategoryPerformance),
					Date:    rev.CreatedAt.In(s.loc).Format(calendar.DateLayout),
				})
			}
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryLeaves, role) {
		g.Go(func() error {
			var (
				requests []leave.LeaveRequest
				err      error
			)
			if notification.IsPrivileged(role) {
				requests, err = s.leaveRepo.ListPendingWithUser(gCtx, notification.DetailLimit)
			} else {
				requests, err = s.leaveRepo.ListPendingByUserWithUser(gCtx, actorID, notification.DetailLimit)
			}
			if err != nil {
				return err
			}
			for _, req := range requests {
				name := displayName(req.UserName, req.UserID, actorID)
				details.Leaves = append(details.Leaves, notification.Detail{
					ID:   req.ID,
					Name: name,
					Message: fmt.Sprintf("%s requested %s leave from %s to %s",
						name, req.Type,
						req.StartDate.In(s.loc).Format(calendar.DateLayout),
						req.EndDate.In(s.loc).Format(calendar.DateLayout)),
					Type: req.Type,
					Date: req.CreatedAt.In(s.loc).Format(calendar.DateLayout),
				})
			}
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryAttendance, role) && !calendar.IsWeekend(nowLocal) {
		g.Go(func() error {
			items, err := s.attendanceDetails(gCtx, actorID, role, today)
			if err != nil {
				return err
			}
			details.Attendance = items
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryApplications, role) {
		g.Go(func() error {
			apps, err := s.appRepo.ListPendingWithNames(gCtx, notification.DetailLimit)
			if err != nil {
				return err
			}
			for _, app := range apps {
				name := strOrUnknown(app.CandidateName)
				title := strOrUnknown(app.JobTitle)
				details.Applications = append(details.Applications, notification.Detail{
					ID:      app.ID,
					Name:    name,
					Message: fmt.Sprintf("%s applied for %s", name, title),
					Type:    string(notification.CategoryApplications),
					Date:    app.CreatedAt.In(s.loc).Format(calendar.DateLayout),
				})
			}
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryInterviews, role) {
		g.Go(func() error {
			apps, err := s.appRepo.ListUpcomingInterviews(gCtx, today, notification.DetailLimit)
			if err != nil {
				return err
			}
			for _, app := range apps {
				name := strOrUnknown(app.CandidateName)
				title := strOrUnknown(app.JobTitle)
				date := ""
				if app.InterviewDate != nil {
					date = app.InterviewDate.In(s.loc).Format(calendar.DateLayout)
				}
				details.Interviews = append(details.Interviews, notification.Detail{
					ID:      app.ID,
					Name:    name,
					Message: fmt.Sprintf("Interview with %s for %s on %s", name, title, date),
					Type:    string(notification.CategoryInterviews),
					Date:    date,
				})
			}
			return nil
		})
	}

	if notification.RoleSees(notification.CategoryUsers, role) {
		g.Go(func() error {
			inactive, err := s.userRepo.ListInactive(gCtx, notification.DetailLimit)
			if err != nil {
				return err
			}
			for _, u := range inactive {
				details.Users = append(details.Users, notification.Detail{
					ID:      u.ID,
					Name:    u.Name,
					Message: fmt.Sprintf("%s's account is inactive", u.Name),
					Type:    string(notification.CategoryUsers),
					Date:    u.UpdatedAt.In(s.loc).Format(calendar.DateLayout),
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return notification.Details{}, err
	}
	return details, nil
}

func (s *NotificationServiceImpl) attendanceDetails(ctx context.Context, actorID string, role user.Role, today string) ([]notification.Detail, error) {
	if !notification.IsPrivileged(role) {
		rec, err := s.attRepo.GetByUserAndDate(ctx, actorID, today)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return []notification.Detail{}, nil
		}
		return []notification.Detail{{
			ID:      actorID,
			Name:    "You",
			Message: "You have not checked in today",
			Type:    string(notification.CategoryAttendance),
			Date:    today,
		}}, nil
	}

	missing, err := s.unmarkedToday(ctx, today)
	if err != nil {
		return nil, err
	}

	items := make([]notification.Detail, 0, notification.DetailLimit)
	for _, u := range missing {
		if len(items) == notification.DetailLimit {
			break
		}
		name := u.Name
		msg := fmt.Sprintf("%s has not checked in today", name)
		if u.ID == actorID {
			name = "You"
			msg = "You have not checked in today"
		}
		items = append(items, notification.Detail{
			ID:      u.ID,
			Name:    name,
			Message: msg,
			Type:    string(notification.CategoryAttendance),
			Date:    today,
		})
	}
	return items, nil
}

// displayName resolves a joined user name, substituting "You" when the row
// belongs to the actor.
func displayName(userName *string, userID, actorID string) string {
	if userID == actorID {
		return "You"
	}
	return strOrUnknown(userName)
}

func strOrUnknown(s *string) string {
	if s == nil || *s == "" {
		return "Unknown"
	}
	return *s
}
