package job

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/job"
)

type JobServiceImpl struct {
	jobRepo job.JobRepository
	appRepo job.ApplicationRepository
}

func NewJobService(jobRepo job.JobRepository, appRepo job.ApplicationRepository) job.JobService {
	return &JobServiceImpl{
		jobRepo: jobRepo,
		appRepo: appRepo,
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

func toJobResponse(j job.Job) job.JobResponse {
	return job.JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Department:  j.Department,
		Description: j.Description,
		IsOpen:      j.IsOpen,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339),
	}
}

func toApplicationResponse(a job.Application) job.ApplicationResponse {
	resp := job.ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		JobTitle:      a.JobTitle,
		CandidateID:   a.CandidateID,
		CandidateName: a.CandidateName,
		Status:        string(a.Status),
		ResumeURL:     a.ResumeURL,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
	if a.InterviewDate != nil {
		str := a.InterviewDate.Format(time.RFC3339)
		resp.InterviewDate = &str
	}
	return resp
}

// CreateJob implements job.JobService.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req job.CreateJobRequest) (job.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return job.JobResponse{}, err
	}

	created, err := s.jobRepo.Create(ctx, job.Job{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
		IsOpen:      true,
	})
	if err != nil {
		return job.JobResponse{}, err
	}

	return toJobResponse(created), nil
}

// GetJob implements job.JobService.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (job.JobResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.JobResponse{}, err
	}
	return toJobResponse(j), nil
}

// ListJobs implements job.JobService.
func (s *JobServiceImpl) ListJobs(ctx context.Context, openOnly bool) ([]job.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx, openOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]job.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, toJobResponse(j))
	}
	return responses, nil
}

// CloseJob implements job.JobService.
func (s *JobServiceImpl) CloseJob(ctx context.Context, id string) error {
	if _, err := s.jobRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.jobRepo.SetOpen(ctx, id, false)
}

// Apply implements job.JobService. One application per candidate per job;
// closed jobs reject new applications.
func (s *JobServiceImpl) Apply(ctx context.Context, req job.ApplyRequest) (job.ApplicationResponse, error) {
	candidateID, err := actorID(ctx)
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	j, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if !j.IsOpen {
		return job.ApplicationResponse{}, job.ErrJobClosed
	}

	existing, err := s.appRepo.GetByJobAndCandidate(ctx, req.JobID, candidateID)
	if err != nil {
		return job.ApplicationResponse{}, err
	}
	if existing != nil {
		return job.ApplicationResponse{}, job.ErrAlreadyApplied
	}

	created, err := s.appRepo.Create(ctx, job.Application{
		JobID:       req.JobID,
		CandidateID: candidateID,
		Status:      job.ApplicationPending,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	return toApplicationResponse(created), nil
}

// ListMyApplications implements job.JobService.
func (s *JobServiceImpl) ListMyApplications(ctx context.Context) ([]job.ApplicationResponse, error) {
	candidateID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	responses := make([]job.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		responses = append(responses, toApplicationResponse(a))
	}
	return responses, nil
}

// ListApplications implements job.JobService.
func (s *JobServiceImpl) ListApplications(ctx context.Context, status *string) ([]job.ApplicationResponse, error) {
	apps, err := s.appRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]job.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		responses = append(responses, toApplicationResponse(a))
	}
	return responses, nil
}

// UpdateApplicationStatus implements job.JobService.
func (s *JobServiceImpl) UpdateApplicationStatus(ctx context.Context, req job.UpdateApplicationStatusRequest) (job.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ApplicationResponse{}, err
	}

	if _, err := s.appRepo.GetByID(ctx, req.ID); err != nil {
		return job.ApplicationResponse{}, err
	}

	updated, err := s.appRepo.UpdateStatus(ctx, req.ID, job.ApplicationStatus(req.Status))
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	return toApplicationResponse(updated), nil
}

// ScheduleInterview implements job.JobService.
func (s *JobServiceImpl) ScheduleInterview(ctx context.Context, req job.ScheduleInterviewRequest) (job.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return job.ApplicationResponse{}, err
	}

	if _, err := s.appRepo.GetByID(ctx, req.ID); err != nil {
		return job.ApplicationResponse{}, err
	}

	updated, err := s.appRepo.ScheduleInterview(ctx, req.ID, req.InterviewDate)
	if err != nil {
		return job.ApplicationResponse{}, err
	}

	return toApplicationResponse(updated), nil
}
