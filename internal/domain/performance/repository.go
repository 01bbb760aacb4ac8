package performance

import (
	"context"
)

// ReviewRepository defines data access methods for performance reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r Review) (Review, error)
	GetByID(ctx context.Context, id string) (Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	ListPending(ctx context.Context) ([]Review, error)
	Complete(ctx context.Context, id string, rating int, feedback *string) (Review, error)

	// CountPending counts reviews with status = pending.
	CountPending(ctx context.Context) (int, error)

	// ListPendingWithNames returns pending reviews joined with the subject's
	// name, newest first, up to limit.
	ListPendingWithNames(ctx context.Context, limit int) ([]Review, error)
}

// ReviewService defines business logic for performance reviews.
type ReviewService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetMyReviews(ctx context.Context) ([]Response, error)
	ListPending(ctx context.Context) ([]Response, error)
	Complete(ctx context.Context, req CompleteRequest) (Response, error)
}
