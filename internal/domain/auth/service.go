package auth

import (
	"context"
)

// Service defines authentication business logic.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (UserSummary, error)
}
