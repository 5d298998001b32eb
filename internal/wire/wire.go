package wire

import (
	"context"
	"net/http"
	"time"

	"hostel-booking/internal/adaptor"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/database"
	"hostel-booking/pkg/metrics"
	"hostel-booking/pkg/middleware"
	"hostel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router.
func Wiring(db database.PgxIface, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	jwtService := auth.NewJWTService(config.JWT.Secret, config.JWT.ExpiryHours, config.JWT.Issuer)

	service := usecase.NewService(db, repo, jwtService, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(db, handler, jwtService, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	db database.PgxIface,
	handler *adaptor.Handler,
	jwtService *auth.JWTService,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	m := metrics.New()
	limiter := middleware.NewRateLimiter(config.RateLimit.RequestsPerMinute, config.RateLimit.Burst, logger)

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(limiter.LimitByIP())
	r.Use(m.Middleware())

	// Apply routes
	wireStudent(r, handler.Auth, handler.Student, jwtService, logger)
	wireRoom(r, handler.Room, jwtService, logger)
	wireBooking(r, handler.Booking, jwtService, logger)
	wireAssistant(r, handler.Assistant, jwtService, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unreachable", nil, nil)
			return
		}
		utils.ResponseSuccess(w, "ok", nil)
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", m.Handler())

	return r
}
