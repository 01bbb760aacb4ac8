package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/job"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type JobHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)

	Apply(w http.ResponseWriter, r *http.Request)
	ListMyApplications(w http.ResponseWriter, r *http.Request)
	ListApplications(w http.ResponseWriter, r *http.Request)
	UpdateApplicationStatus(w http.ResponseWriter, r *http.Request)
	ScheduleInterview(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	jobService job.JobService
}

func NewJobHandler(jobService job.JobService) JobHandler {
	return &JobHandlerImpl{
		jobService: jobService,
	}
}

// Create implements JobHandler.
func (h *JobHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req job.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create job decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.jobService.CreateJob(r.Context(), req)
	if err != nil {
		slog.Error("Create job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Job posted", "job_id", resp.ID, "title", resp.Title)
	response.Created(w, "Job posted successfully", resp)
}

// Get implements JobHandler.
func (h *JobHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.jobService.GetJob(r.Context(), id)
	if err != nil {
		slog.Error("Get job service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements JobHandler.
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	openOnly := r.URL.Query().Get("open") == "true"

	resp, err := h.jobService.ListJobs(r.Context(), openOnly)
	if err != nil {
		slog.Error("List jobs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Close implements JobHandler.
func (h *JobHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.jobService.CloseJob(r.Context(), id); err != nil {
		slog.Error("Close job service error", "error", err, "job_id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job closed", nil)
}

// Apply implements JobHandler.
func (h *JobHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req job.ApplyRequest

	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Apply decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.JobID = chi.URLParam(r, "id")

	resp, err := h.jobService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply service error", "error", err, "job_id", req.JobID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Application submitted", resp)
}

// ListMyApplications implements JobHandler.
func (h *JobHandlerImpl) ListMyApplications(w http.ResponseWriter, r *http.Request) {
	resp, err := h.jobService.ListMyApplications(r.Context())
	if err != nil {
		slog.Error("ListMyApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListApplications implements JobHandler.
func (h *JobHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	resp, err := h.jobService.ListApplications(r.Context(), status)
	if err != nil {
		slog.Error("ListApplications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdateApplicationStatus implements JobHandler.
func (h *JobHandlerImpl) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	var req job.UpdateApplicationStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateApplicationStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.jobService.UpdateApplicationStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateApplicationStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Application status updated", resp)
}

// ScheduleInterview implements JobHandler.
func (h *JobHandlerImpl) ScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req job.ScheduleInterviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ScheduleInterview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.jobService.ScheduleInterview(r.Context(), req)
	if err != nil {
		slog.Error("ScheduleInterview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Interview scheduled", resp)
}
