package usecase

import (
	"context"
	"fmt"

	"hostel-booking/internal/data/repository"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/database"
	"hostel-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Service groups all application services for wiring.
type Service struct {
	Auth      AuthService
	Student   StudentService
	Room      RoomService
	Booking   BookingService
	Assistant AssistantService
}

func NewService(db database.PgxIface, repo *repository.Repository, jwt *auth.JWTService, cfg *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, jwt, log),
		Student:   NewStudentService(db, repo, log),
		Room:      NewRoomService(repo, log),
		Booking:   NewBookingService(db, repo, log),
		Assistant: NewAssistantService(cfg.Gemini, log),
	}
}

// runInTx executes fn inside a transaction, rolling back on error. Lifecycle
// operations rely on this plus FOR UPDATE row locks to keep booking status,
// room occupancy and student assignment consistent under concurrent requests.
func runInTx(ctx context.Context, db database.PgxIface, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
