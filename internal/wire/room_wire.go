package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	jwtService *auth.JWTService,
	log *zap.Logger,
) {
	// Public routes: browsing rooms requires no account
	r.Get("/api/rooms", roomHandler.List)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWT(jwtService, log))

		r.Post("/api/rooms", roomHandler.Create)
		r.Get("/api/rooms/stats", roomHandler.Stats)
		r.Put("/api/rooms/{id}", roomHandler.Update)
		r.Delete("/api/rooms/{id}", roomHandler.Delete)
	})

	// Room detail stays public too; chi routes /stats before the wildcard
	r.Get("/api/rooms/{id}", roomHandler.GetByID)
}
