package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/calendar"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
	loc      *time.Location
}

func NewUserService(userRepo user.UserRepository, loc *time.Location) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		loc:      loc,
	}
}

// actor extracts the authenticated user id and role from JWT claims.
func actor(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", "", fmt.Errorf("user_id not found in claims")
	}
	roleStr, _ := claims["role"].(string)
	return id, user.Role(roleStr), nil
}

func toResponse(u user.User) user.UserResponse {
	resp := user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.StartDate != nil {
		str := u.StartDate.Format(calendar.DateLayout)
		resp.StartDate = &str
	}
	return resp
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	_, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	u := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
		IsActive:     true,
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, err := calendar.ParseDate(*req.StartDate, s.loc)
		if err != nil {
			return user.UserResponse{}, err
		}
		u.StartDate = &start
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements user.UserService. Everyone may read their own record;
// reading anyone else requires the user.view_all permission.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	actorID, role, err := actor(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if actorID != id && !user.HasPermission(role, user.PermissionUserViewAll) {
		return user.UserResponse{}, user.ErrNotResourceOwner
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListFilter) ([]user.UserResponse, error) {
	if filter.Role != nil && !user.IsValidRole(*filter.Role) {
		return nil, user.ErrInvalidRole
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}
	if req.StartDate != nil {
		if *req.StartDate == "" {
			u.StartDate = nil
		} else {
			start, err := calendar.ParseDate(*req.StartDate, s.loc)
			if err != nil {
				return user.UserResponse{}, err
			}
			u.StartDate = &start
		}
	}

	updated, err := s.userRepo.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(updated), nil
}

// SetActive implements user.UserService.
func (s *UserServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	return s.userRepo.SetActive(ctx, id, active)
}
