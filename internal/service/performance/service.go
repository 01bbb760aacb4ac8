package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

type ReviewServiceImpl struct {
	reviewRepo performance.ReviewRepository
	userRepo   user.UserRepository
}

func NewReviewService(reviewRepo performance.ReviewRepository, userRepo user.UserRepository) performance.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
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

func toResponse(r performance.Review) performance.Response {
	return performance.Response{
		ID:           r.ID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		ReviewerID:   r.ReviewerID,
		ReviewerName: r.ReviewerName,
		Period:       r.Period,
		Rating:       r.Rating,
		Feedback:     r.Feedback,
		Status:       string(r.Status),
		CompletedAt:  timePtrToString(r.CompletedAt),
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

// Create implements performance.ReviewService. The actor becomes the
// reviewer on the new review.
func (s *ReviewServiceImpl) Create(ctx context.Context, req performance.CreateRequest) (performance.Response, error) {
	reviewerID, err := actorID(ctx)
	if err != nil {
		return performance.Response{}, err
	}

	if err := req.Validate(); err != nil {
		return performance.Response{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return performance.Response{}, err
	}

	created, err := s.reviewRepo.Create(ctx, performance.Review{
		UserID:     req.UserID,
		ReviewerID: reviewerID,
		Period:     req.Period,
		Status:     performance.StatusPending,
	})
	if err != nil {
		return performance.Response{}, err
	}

	return toResponse(created), nil
}

// GetMyReviews implements performance.ReviewService.
func (s *ReviewServiceImpl) GetMyReviews(ctx context.Context) ([]performance.Response, error) {
	userID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.Response, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// ListPending implements performance.ReviewService.
func (s *ReviewServiceImpl) ListPending(ctx context.Context) ([]performance.Response, error) {
	reviews, err := s.reviewRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.Response, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, toResponse(r))
	}
	return responses, nil
}

// Complete implements performance.ReviewService.
func (s *ReviewServiceImpl) Complete(ctx context.Context, req performance.CompleteRequest) (performance.Response, error) {
	if err := req.Validate(); err != nil {
		return performance.Response{}, err
	}

	existing, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.Response{}, err
	}
	if existing.Status == performance.StatusCompleted {
		return performance.Response{}, performance.ErrReviewAlreadyCompleted
	}

	completed, err := s.reviewRepo.Complete(ctx, req.ID, req.Rating, req.Feedback)
	if err != nil {
		return performance.Response{}, err
	}

	return toResponse(completed), nil
}
