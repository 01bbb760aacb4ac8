package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
)

// TokenPruneInterval is how often revoked-token entries are swept.
const TokenPruneInterval = time.Hour

// RegisterTokenPruneJob schedules the periodic sweep of revoked refresh
// tokens whose natural lifetime has already passed.
func RegisterTokenPruneJob(s *Scheduler, jwtService jwt.Service) {
	s.AddJob("revoked-token-prune", TokenPruneInterval, func(ctx context.Context) error {
		if pruned := jwtService.PruneRevokedTokens(); pruned > 0 {
			slog.Info("Pruned revoked tokens", "count", pruned)
		}
		return nil
	})
}
