package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrInsufficientRole       = errors.New("insufficient role for this operation")
	ErrNotResourceOwner       = errors.New("not the owner of this resource")
)
