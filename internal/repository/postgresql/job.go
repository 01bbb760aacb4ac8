package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/job"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO jobs (title, department, description, is_open)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, j.Title, j.Department, j.Description, j.IsOpen).
		Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return j, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, department, description, is_open, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var j job.Job
	err := q.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.Title, &j.Department, &j.Description, &j.IsOpen, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job by id: %w", err)
	}

	return j, nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, openOnly bool) ([]job.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, department, description, is_open, created_at, updated_at
		FROM jobs
	`
	if openOnly {
		query += ` WHERE is_open = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		var j job.Job
		err := rows.Scan(&j.ID, &j.Title, &j.Department, &j.Description, &j.IsOpen, &j.CreatedAt, &j.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// SetOpen implements job.JobRepository.
func (r *jobRepositoryImpl) SetOpen(ctx context.Context, id string, open bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE jobs SET is_open = $1, updated_at = NOW() WHERE id = $2`, open, id)
	if err != nil {
		return fmt.Errorf("failed to set job open flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) job.ApplicationRepository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `ap.id, ap.job_id, ap.candidate_id, ap.status, ap.interview_date, ap.resume_url, ap.created_at, ap.updated_at`

func scanApplicationJoined(row pgx.Row) (job.Application, error) {
	var a job.Application
	err := row.Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.Status, &a.InterviewDate, &a.ResumeURL,
		&a.CreatedAt, &a.UpdatedAt, &a.JobTitle, &a.CandidateName,
	)
	return a, err
}

const applicationJoinedQuery = `
	SELECT ` + applicationColumns + `, j.title, u.name
	FROM applications ap
	JOIN jobs j ON j.id = ap.job_id
	JOIN users u ON u.id = ap.candidate_id
`

// Create implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) Create(ctx context.Context, a job.Application) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (job_id, candidate_id, status, resume_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.JobID, a.CandidateID, a.Status, a.ResumeURL).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return job.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return a, nil
}

// GetByID implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplicationJoined(q.QueryRow(ctx, applicationJoinedQuery+` WHERE ap.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Application{}, job.ErrApplicationNotFound
		}
		return job.Application{}, fmt.Errorf("failed to get application by id: %w", err)
	}

	return a, nil
}

// GetByJobAndCandidate implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*job.Application, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanApplicationJoined(q.QueryRow(ctx,
		applicationJoinedQuery+` WHERE ap.job_id = $1 AND ap.candidate_id = $2 LIMIT 1`,
		jobID, candidateID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application by job and candidate: %w", err)
	}

	return &a, nil
}

// ListByCandidate implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) ListByCandidate(ctx context.Context, candidateID string) ([]job.Application, error) {
	return r.queryApplications(ctx,
		applicationJoinedQuery+` WHERE ap.candidate_id = $1 ORDER BY ap.created_at DESC`,
		candidateID,
	)
}

// List implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) List(ctx context.Context, status *string) ([]job.Application, error) {
	if status != nil {
		return r.queryApplications(ctx,
			applicationJoinedQuery+` WHERE ap.status = $1 ORDER BY ap.created_at DESC`,
			*status,
		)
	}
	return r.queryApplications(ctx, applicationJoinedQuery+` ORDER BY ap.created_at DESC`)
}

// UpdateStatus implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status job.ApplicationStatus) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return job.Application{}, fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.Application{}, job.ErrApplicationNotFound
	}

	return r.GetByID(ctx, id)
}

// ScheduleInterview implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) ScheduleInterview(ctx context.Context, id string, interviewDate string) (job.Application, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE applications SET interview_date = $1, updated_at = NOW() WHERE id = $2`, interviewDate, id)
	if err != nil {
		return job.Application{}, fmt.Errorf("failed to schedule interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.Application{}, job.ErrApplicationNotFound
	}

	return r.GetByID(ctx, id)
}

// CountPending implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending applications: %w", err)
	}

	return count, nil
}

// CountUpcomingInterviews implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) CountUpcomingInterviews(ctx context.Context, date string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE interview_date IS NOT NULL AND interview_date >= $1`, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming interviews: %w", err)
	}

	return count, nil
}

// ListPendingWithNames implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) ListPendingWithNames(ctx context.Context, limit int) ([]job.Application, error) {
	return r.queryApplications(ctx,
		applicationJoinedQuery+` WHERE ap.status = 'pending' ORDER BY ap.created_at DESC LIMIT $1`,
		limit,
	)
}

// ListUpcomingInterviews implements job.ApplicationRepository.
func (r *applicationRepositoryImpl) ListUpcomingInterviews(ctx context.Context, date string, limit int) ([]job.Application, error) {
	return r.queryApplications(ctx,
		applicationJoinedQuery+` WHERE ap.interview_date IS NOT NULL AND ap.interview_date >= $1 ORDER BY ap.interview_date ASC LIMIT $2`,
		date, limit,
	)
}

func (r *applicationRepositoryImpl) queryApplications(ctx context.Context, query string, args ...interface{}) ([]job.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []job.Application
	for rows.Next() {
		a, err := scanApplicationJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate applications: %w", err)
	}

	return apps, nil
}
