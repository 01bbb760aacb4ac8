package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/calendar"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db        *database.DB
	leaveRepo leave.LeaveRepository
	attRepo   attendance.AttendanceRepository
	userRepo  user.UserRepository
	loc       *time.Location
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	attRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	loc *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:        db,
		leaveRepo: leaveRepo,
		attRepo:   attRepo,
		userRepo:  userRepo,
		loc:       loc,
	}
}

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

func toResponse(req leave.LeaveRequest) leave.Response {
	return leave.Response{
		ID:         req.ID,
		UserID:     req.UserID,
		UserName:   req.UserName,
		Type:       req.Type,
		StartDate:  req.StartDate.Format(calendar.DateLayout),
		EndDate:    req.EndDate.Format(calendar.DateLayout),
		Reason:     req.Reason,
		Status:     string(req.Status),
		ReviewedBy: req.ReviewedBy,
		ReviewedAt: timePtrToString(req.ReviewedAt),
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  req.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (leave.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return leave.Response{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	overlapping, err := s.leaveRepo.HasOverlapping(ctx, userID, req.StartDate, req.EndDate)
	if err != nil {
		return leave.Response{}, err
	}
	if overlapping {
		return leave.Response{}, leave.ErrOverlappingLeave
	}

	start, err := calendar.ParseDate(req.StartDate, s.loc)
	if err != nil {
		return leave.Response{}, err
	}
	end, err := calendar.ParseDate(req.EndDate, s.loc)
	if err != nil {
		return leave.Response{}, err
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		Type:      req.Type,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.Response{}, err
	}

	return toResponse(created), nil
}

// GetMyRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context) ([]leave.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) ([]leave.Response, error) {
	requests, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

// Approve implements leave.LeaveService. The status flip and the on_leave
// attendance rows commit together or not at all; a half-approved request
// would corrupt the statistics both sides derive from.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.Response, error) {
	reviewerID, err := actorID(ctx)
	if err != nil {
		return leave.Response{}, err
	}

	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.Response{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return leave.Response{}, err
	}

	var empStart *string
	if requester.StartDate != nil {
		str := requester.StartDate.In(s.loc).Format(calendar.DateLayout)
		empStart = &str
	}

	workingDays, err := calendar.WorkingDays(
		s.loc,
		req.StartDate.In(s.loc).Format(calendar.DateLayout),
		req.EndDate.In(s.loc).Format(calendar.DateLayout),
		empStart,
	)
	if err != nil {
		return leave.Response{}, err
	}

	var approved leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		approved, err = s.leaveRepo.UpdateStatus(txCtx, id, leave.StatusApproved, reviewerID)
		if err != nil {
			return err
		}

		for _, day := range workingDays {
			existing, err := s.attRepo.GetByUserAndDate(txCtx, req.UserID, day)
			if err != nil {
				return err
			}
			if existing != nil {
				// Already marked that day (present, late, whatever): leave
				// wins.
				existing.Status = attendance.StatusOnLeave
				if _, err := s.attRepo.Update(txCtx, *existing); err != nil {
					return err
				}
				continue
			}

			date, err := calendar.ParseDate(day, s.loc)
			if err != nil {
				return err
			}
			if _, err := s.attRepo.Create(txCtx, attendance.Attendance{
				UserID: req.UserID,
				Date:   date,
				Status: attendance.StatusOnLeave,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return leave.Response{}, err
	}

	return toResponse(approved), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.Response, error) {
	reviewerID, err := actorID(ctx)
	if err != nil {
		return leave.Response{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Response{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.Response{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	rejected, err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.StatusRejected, reviewerID)
	if err != nil {
		return leave.Response{}, err
	}

	return toResponse(rejected), nil
}
