package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAssistant(
	r chi.Router,
	assistantHandler *adaptor.AssistantHandler,
	jwtService *auth.JWTService,
	log *zap.Logger,
) {
	// The assistant calls a paid upstream API, so it sits behind auth.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWT(jwtService, log))

		r.Post("/api/assistant/chat", assistantHandler.Ask)
	})
}
