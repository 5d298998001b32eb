package adaptor

import (
	"errors"
	"net/http"

	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Student   *StudentHandler
	Room      *RoomHandler
	Booking   *BookingHandler
	Assistant *AssistantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Student:   NewStudentHandler(service.Student, log),
		Room:      NewRoomHandler(service.Room, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Assistant: NewAssistantHandler(service.Assistant, log),
	}
}

// handleServiceError maps domain errors onto HTTP responses. Conflicts come
// back as 400 so precondition failures and validation errors look the same
// to API clients.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperrors.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		log.Warn(operation + " failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, apperrors.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
