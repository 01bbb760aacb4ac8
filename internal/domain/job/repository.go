package job

import (
	"context"
)

// JobRepository defines data access methods for job postings.
type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, openOnly bool) ([]Job, error)
	SetOpen(ctx context.Context, id string, open bool) error
}

// ApplicationRepository defines data access methods for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID string) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]Application, error)
	List(ctx context.Context, status *string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) (Application, error)
	ScheduleInterview(ctx context.Context, id string, interviewDate string) (Application, error)

	// CountPending counts applications with status = pending.
	CountPending(ctx context.Context) (int, error)

	// CountUpcomingInterviews counts applications with a non-null
	// interview_date on or after the given date.
	CountUpcomingInterviews(ctx context.Context, date string) (int, error)

	// ListPendingWithNames returns pending applications joined with
	// candidate name and job title, newest first, up to limit.
	ListPendingWithNames(ctx context.Context, limit int) ([]Application, error)

	// ListUpcomingInterviews returns interview-scheduled applications on or
	// after date, soonest first, up to limit.
	ListUpcomingInterviews(ctx context.Context, date string, limit int) ([]Application, error)
}

// JobService defines business logic for recruitment.
type JobService interface {
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, id string) (JobResponse, error)
	ListJobs(ctx context.Context, openOnly bool) ([]JobResponse, error)
	CloseJob(ctx context.Context, id string) error

	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	ListMyApplications(ctx context.Context) ([]ApplicationResponse, error)
	ListApplications(ctx context.Context, status *string) ([]ApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, req UpdateApplicationStatusRequest) (ApplicationResponse, error)
	ScheduleInterview(ctx context.Context, req ScheduleInterviewRequest) (ApplicationResponse, error)
}
