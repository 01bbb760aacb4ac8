package notification

import (
	"context"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

// Service computes pending-item notifications for an actor. Both operations
// are read-only aggregations over the category tables; neither mutates state.
type Service interface {
	Counts(ctx context.Context, actorID string, role user.Role) (Counts, error)
	Details(ctx context.Context, actorID string, role user.Role) (Details, error)
}
