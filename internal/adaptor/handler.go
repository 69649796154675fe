package adaptor

import (
	"errors"
	"net/http"

	"walkin-queue/internal/data/entity"
	"walkin-queue/internal/usecase"
	"walkin-queue/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Business *BusinessHandler
	Queue    *QueueHandler
	Staff    *StaffHandler
	Menu     *MenuHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Business: NewBusinessHandler(service.Business, log),
		Queue:    NewQueueHandler(service.Queue, log),
		Staff:    NewStaffHandler(service.Staff, log),
		Menu:     NewMenuHandler(service.Menu, log),
	}
}

// actorFromContext rebuilds the caller identity set by the auth
// middleware. ok is false when the request carried no valid token.
func actorFromContext(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	actor := usecase.Actor{
		ID:   userID,
		Role: entity.UserRole(role),
	}

	if businessID, ok := utils.GetBusinessIDFromContext(r.Context()); ok {
		actor.BusinessID = &businessID
	}

	return actor, true
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrBusinessNotFound),
		errors.Is(err, entity.ErrEntryNotFound),
		errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrStaffNotFound),
		errors.Is(err, entity.ErrMenuItemNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrQueueFull),
		errors.Is(err, entity.ErrPrioritySlotsFull),
		errors.Is(err, entity.ErrInvalidArgument):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrAccessDenied):
		log.Warn(operation+" failed - access denied",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrEmailTaken):
		log.Warn(operation+" failed - email taken",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrInvalidLogin):
		log.Warn(operation+" failed - invalid credentials",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
