package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

const reviewColumns = `r.id, r.user_id, r.reviewer_id, r.period, r.rating, r.feedback, r.status, r.completed_at, r.created_at, r.updated_at`

const reviewJoinedQuery = `
	SELECT ` + reviewColumns + `, u.name, rv.name
	FROM performance_reviews r
	JOIN users u ON u.id = r.user_id
	JOIN users rv ON rv.id = r.reviewer_id
`

func scanReviewJoined(row pgx.Row) (performance.Review, error) {
	var rev performance.Review
	err := row.Scan(
		&rev.ID, &rev.UserID, &rev.ReviewerID, &rev.Period, &rev.Rating, &rev.Feedback,
		&rev.Status, &rev.CompletedAt, &rev.CreatedAt, &rev.UpdatedAt,
		&rev.UserName, &rev.ReviewerName,
	)
	return rev, err
}

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, rev performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (user_id, reviewer_id, period, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rev.UserID, rev.ReviewerID, rev.Period, rev.Status).
		Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return rev, nil
}

// GetByID implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	rev, err := scanReviewJoined(q.QueryRow(ctx, reviewJoinedQuery+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to get performance review by id: %w", err)
	}

	return rev, nil
}

// ListByUser implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]performance.Review, error) {
	return r.queryReviews(ctx,
		reviewJoinedQuery+` WHERE r.user_id = $1 ORDER BY r.created_at DESC`,
		userID,
	)
}

// ListPending implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListPending(ctx context.Context) ([]performance.Review, error) {
	return r.queryReviews(ctx,
		reviewJoinedQuery+` WHERE r.status = 'pending' ORDER BY r.created_at DESC`,
	)
}

// Complete implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Complete(ctx context.Context, id string, rating int, feedback *string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE performance_reviews
		SET rating = $1, feedback = $2, status = 'completed', completed_at = NOW(), updated_at = NOW()
		WHERE id = $3
	`, rating, feedback, id)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to complete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.Review{}, performance.ErrReviewNotFound
	}

	return r.GetByID(ctx, id)
}

// CountPending implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) CountPending(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM performance_reviews WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending performance reviews: %w", err)
	}

	return count, nil
}

// ListPendingWithNames implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListPendingWithNames(ctx context.Context, limit int) ([]performance.Review, error) {
	return r.queryReviews(ctx,
		reviewJoinedQuery+` WHERE r.status = 'pending' ORDER BY r.created_at DESC LIMIT $1`,
		limit,
	)
}

func (r *reviewRepositoryImpl) queryReviews(ctx context.Context, query string, args ...interface{}) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		rev, err := scanReviewJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance reviews: %w", err)
	}

	return reviews, nil
}
