package repository

import (
	"context"

	"hostel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// querier is the query surface shared by the pool wrapper and pgx.Tx, so the
// same SQL helpers serve plain calls and transactional ones.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	Student StudentRepository
	Room    RoomRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Student: NewStudentRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
