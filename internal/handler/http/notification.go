package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore/hrm-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Counts(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{
		notificationService: notificationService,
	}
}

func actorFromClaims(r *http.Request) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", auth.ErrInvalidToken
	}

	return userID, user.Role(roleStr), nil
}

// Counts implements NotificationHandler.
func (h *NotificationHandlerImpl) Counts(w http.ResponseWriter, r *http.Request) {
	actorID, role, err := actorFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	counts, err := h.notificationService.Counts(r.Context(), actorID, role)
	if err != nil {
		slog.Error("Notification counts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}

// Details implements NotificationHandler.
func (h *NotificationHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	actorID, role, err := actorFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	details, err := h.notificationService.Details(r.Context(), actorID, role)
	if err != nil {
		slog.Error("Notification details service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}
