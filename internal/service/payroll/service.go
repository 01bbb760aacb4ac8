package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, userRepo user.UserRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
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

func toResponse(p payroll.Payroll) payroll.Response {
	return payroll.Response{
		ID:          p.ID,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Period:      p.Period,
		BaseSalary:  p.BaseSalary,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetPay:      p.NetPay,
		Status:      string(p.Status),
		ProcessedAt: timePtrToString(p.ProcessedAt),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements payroll.PayrollService. Net pay is derived here, never
// accepted from the request.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreateRequest) (payroll.Response, error) {
	if err := req.Validate(); err != nil {
		return payroll.Response{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return payroll.Response{}, err
	}

	existing, err := s.payrollRepo.GetByUserAndPeriod(ctx, req.UserID, req.Period)
	if err != nil {
		return payroll.Response{}, err
	}
	if existing != nil {
		return payroll.Response{}, payroll.ErrPeriodExists
	}

	created, err := s.payrollRepo.Create(ctx, payroll.Payroll{
		UserID:     req.UserID,
		Period:     req.Period,
		BaseSalary: req.BaseSalary,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		NetPay:     req.BaseSalary + req.Allowances - req.Deductions,
		Status:     payroll.StatusDraft,
	})
	if err != nil {
		return payroll.Response{}, err
	}

	return toResponse(created), nil
}

// GetMyPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMyPayrolls(ctx context.Context) ([]payroll.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.Response, 0, len(records))
	for _, p := range records {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// ListByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, period string) ([]payroll.Response, error) {
	records, err := s.payrollRepo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.Response, 0, len(records))
	for _, p := range records {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

// UpdateStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdateStatusRequest) (payroll.Response, error) {
	if err := req.Validate(); err != nil {
		return payroll.Response{}, err
	}

	if _, err := s.payrollRepo.GetByID(ctx, req.ID); err != nil {
		return payroll.Response{}, err
	}

	updated, err := s.payrollRepo.UpdateStatus(ctx, req.ID, payroll.Status(req.Status))
	if err != nil {
		return payroll.Response{}, err
	}

	return toResponse(updated), nil
}
