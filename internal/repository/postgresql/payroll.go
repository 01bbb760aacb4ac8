package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollColumns = `p.id, p.user_id, p.period, p.base_salary, p.allowances, p.deductions, p.net_pay, p.status, p.processed_at, p.created_at, p.updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Allowances, &p.Deductions,
		&p.NetPay, &p.Status, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (user_id, period, base_salary, allowances, deductions, net_pay, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.UserID, p.Period, p.BaseSalary, p.Allowances, p.Deductions, p.NetPay, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls p WHERE p.id = $1`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by id: %w", err)
	}

	return p, nil
}

// GetByUserAndPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByUserAndPeriod(ctx context.Context, userID, period string) (*payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payrolls p WHERE p.user_id = $1 AND p.period = $2 LIMIT 1`

	p, err := scanPayroll(q.QueryRow(ctx, query, userID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payroll by user and period: %w", err)
	}

	return &p, nil
}

// ListByUser implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]payroll.Payroll, error) {
	query := `SELECT ` + payrollColumns + ` FROM payrolls p WHERE p.user_id = $1 ORDER BY p.period DESC`
	return r.queryPayrolls(ctx, query, false, userID)
}

// ListByPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByPeriod(ctx context.Context, period string) ([]payroll.Payroll, error) {
	query := `
		SELECT ` + payrollColumns + `, u.name
		FROM payrolls p
		JOIN users u ON u.id = p.user_id
		WHERE p.period = $1
		ORDER BY u.name ASC
	`
	return r.queryPayrolls(ctx, query, true, period)
}

// UpdateStatus implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls p
		SET status = $1,
		    processed_at = CASE WHEN $1 IN ('processed', 'paid') THEN NOW() ELSE processed_at END,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING ` + payrollColumns

	p, err := scanPayroll(q.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to update payroll status: %w", err)
	}

	return p, nil
}

// CountOutstanding implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountOutstanding(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM payrolls WHERE status IN ('draft', 'pending', 'processed')`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count outstanding payrolls: %w", err)
	}

	return count, nil
}

// ListOutstandingWithUser implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListOutstandingWithUser(ctx context.Context, limit int) ([]payroll.Payroll, error) {
	query := `
		SELECT ` + payrollColumns + `, u.name
		FROM payrolls p
		JOIN users u ON u.id = p.user_id
		WHERE p.status IN ('draft', 'pending', 'processed')
		ORDER BY p.created_at DESC
		LIMIT $1
	`
	return r.queryPayrolls(ctx, query, true, limit)
}

func (r *payrollRepositoryImpl) queryPayrolls(ctx context.Context, query string, withUser bool, args ...interface{}) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if withUser {
			err = rows.Scan(
				&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Allowances, &p.Deductions,
				&p.NetPay, &p.Status, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt, &p.UserName,
			)
		} else {
			err = rows.Scan(
				&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Allowances, &p.Deductions,
				&p.NetPay, &p.Status, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt,
			)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return payrolls, nil
}
