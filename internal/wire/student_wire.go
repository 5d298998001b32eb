package wire

import (
	"hostel-booking/internal/adaptor"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStudent(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	studentHandler *adaptor.StudentHandler,
	jwtService *auth.JWTService,
	log *zap.Logger,
) {
	r.Route("/api/students", func(r chi.Router) {
		// Public routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWT(jwtService, log))

			r.Get("/", studentHandler.List)
			r.Get("/stats", studentHandler.Stats)
			r.Get("/me", authHandler.Profile)
			r.Get("/{id}", studentHandler.GetByID)
			r.Put("/{id}", studentHandler.Update)
			r.Delete("/{id}", studentHandler.Delete)
		})
	})
}
