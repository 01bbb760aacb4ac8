package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyReviews(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	reviewService performance.ReviewService
}

func NewPerformanceHandler(reviewService performance.ReviewService) PerformanceHandler {
	return &PerformanceHandlerImpl{
		reviewService: reviewService,
	}
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reviewService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Review created", "review_id", resp.ID, "period", resp.Period)
	response.Created(w, "Performance review created", resp)
}

// GetMyReviews implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reviewService.GetMyReviews(r.Context())
	if err != nil {
		slog.Error("GetMyReviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPending implements PerformanceHandler.
func (h *PerformanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reviewService.ListPending(r.Context())
	if err != nil {
		slog.Error("ListPending reviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Complete implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	var req performance.CompleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Complete review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.reviewService.Complete(r.Context(), req)
	if err != nil {
		slog.Error("Complete review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review completed", resp)
}
