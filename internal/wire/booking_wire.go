package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	jwtService *auth.JWTService,
	log *zap.Logger,
) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.JWT(jwtService, log))

		r.Post("/", bookingHandler.Create)
		r.Get("/", bookingHandler.List)
		r.Get("/stats", bookingHandler.Stats)
		r.Get("/{id}", bookingHandler.GetByID)
		r.Put("/{id}/status", bookingHandler.SetStatus)
		r.Delete("/{id}", bookingHandler.Delete)
	})
}
