package job

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateJobRequest struct {
	Title       string  `json:"title"`
	Department  string  `json:"department"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApplyRequest struct {
	JobID     string  `json:"-"`
	ResumeURL *string `json:"resume_url,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	valid := []string{"pending", "shortlisted", "rejected", "hired"}
	if !validator.IsInSlice(r.Status, valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, shortlisted, rejected, hired",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleInterviewRequest struct {
	ID            string `json:"-"`
	InterviewDate string `json:"interview_date"` // ISO8601
}

func (r *ScheduleInterviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if _, valid := validator.IsValidDateTime(r.InterviewDate); !valid {
		if _, dateOnly := validator.IsValidDate(r.InterviewDate); !dateOnly {
			errs = append(errs, validator.ValidationError{
				Field:   "interview_date",
				Message: "interview_date must be an ISO8601 timestamp or YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type JobResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Department  string  `json:"department"`
	Description *string `json:"description,omitempty"`
	IsOpen      bool    `json:"is_open"`
	CreatedAt   string  `json:"created_at"`
}

type ApplicationResponse struct {
	ID            string  `json:"id"`
	JobID         string  `json:"job_id"`
	JobTitle      *string `json:"job_title,omitempty"`
	CandidateID   string  `json:"candidate_id"`
	CandidateName *string `json:"candidate_name,omitempty"`
	Status        string  `json:"status"`
	InterviewDate *string `json:"interview_date,omitempty"`
	ResumeURL     *string `json:"resume_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
