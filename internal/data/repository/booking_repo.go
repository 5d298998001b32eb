package repository

import (
	"context"
	"fmt"
	"strings"

	"hostel-booking/internal/data/entity"
	"hostel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const bookingColumns = `id, student_id, room_id, start_date, end_date, status, duration, rent,
	       security_deposit, total_amount, payment_status, notes, approved_by, approved_at,
	       created_at, updated_at`

// BookingFilter narrows listing queries. Zero values mean "no filter".
type BookingFilter struct {
	Status    string
	StudentID *uuid.UUID
	RoomID    *uuid.UUID
}

type BookingStatusStat struct {
	Status      entity.BookingStatus `json:"status"`
	Count       int64                `json:"count"`
	TotalAmount float64              `json:"totalAmount"`
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindLiveByStudentID(ctx context.Context, studentID uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Transactional variants used by the booking lifecycle.
	FindByIDTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Booking, error)
	FindLiveByStudentIDTx(ctx context.Context, tx pgx.Tx, studentID uuid.UUID) (*entity.Booking, error)
	UpdateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	DeleteLiveByStudentIDTx(ctx context.Context, tx pgx.Tx, studentID uuid.UUID) error

	// Statistics
	CountAll(ctx context.Context) (int64, error)
	StatusBreakdown(ctx context.Context) ([]BookingStatusStat, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.StudentID,
		&booking.RoomID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.Duration,
		&booking.Rent,
		&booking.SecurityDeposit,
		&booking.TotalAmount,
		&booking.PaymentStatus,
		&booking.Notes,
		&booking.ApprovedBy,
		&booking.ApprovedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) create(ctx context.Context, q querier, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, student_id, room_id, start_date, end_date, status, duration, rent,
		                      security_deposit, total_amount, payment_status, notes, approved_by,
		                      approved_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.StudentID,
		booking.RoomID,
		booking.StartDate,
		booking.EndDate,
		booking.Status,
		booking.Duration,
		booking.Rent,
		booking.SecurityDeposit,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.Notes,
		booking.ApprovedBy,
		booking.ApprovedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("student_id", booking.StudentID.String()),
			zap.String("room_id", booking.RoomID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return r.create(ctx, r.db, booking)
}

func (r *bookingRepository) CreateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	return r.create(ctx, tx, booking)
}

func (r *bookingRepository) findByID(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	booking, err := scanBooking(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.findByID(ctx, r.db, id, false)
}

func (r *bookingRepository) FindByIDTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Booking, error) {
	return r.findByID(ctx, tx, id, true)
}

func (r *bookingRepository) findLiveByStudentID(ctx context.Context, q querier, studentID uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE student_id = $1 AND status IN ('Pending', 'Approved', 'Active')
		LIMIT 1
	`

	booking, err := scanBooking(q.QueryRow(ctx, query, studentID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find live booking",
			zap.Error(err),
			zap.String("student_id", studentID.String()),
		)
		return nil, fmt.Errorf("find live booking for student %s: %w", studentID.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindLiveByStudentID(ctx context.Context, studentID uuid.UUID) (*entity.Booking, error) {
	return r.findLiveByStudentID(ctx, r.db, studentID)
}

func (r *bookingRepository) FindLiveByStudentIDTx(ctx context.Context, tx pgx.Tx, studentID uuid.UUID) (*entity.Booking, error) {
	return r.findLiveByStudentID(ctx, tx, studentID)
}

func buildBookingWhere(filter BookingFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		conds = append(conds, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		conds = append(conds, fmt.Sprintf("room_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	where, args := buildBookingWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	where, args := buildBookingWhere(filter)
	query := "SELECT COUNT(*) FROM bookings" + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) update(ctx context.Context, q querier, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET start_date = $2, end_date = $3, status = $4, duration = $5, rent = $6,
		    security_deposit = $7, total_amount = $8, payment_status = $9, notes = $10,
		    approved_by = $11, approved_at = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		booking.ID,
		booking.StartDate,
		booking.EndDate,
		booking.Status,
		booking.Duration,
		booking.Rent,
		booking.SecurityDeposit,
		booking.TotalAmount,
		booking.PaymentStatus,
		booking.Notes,
		booking.ApprovedBy,
		booking.ApprovedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return r.update(ctx, r.db, booking)
}

func (r *bookingRepository) UpdateTx(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	return r.update(ctx, tx, booking)
}

func (r *bookingRepository) delete(ctx context.Context, q querier, id uuid.UUID) error {
	result, err := q.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, r.db, id)
}

func (r *bookingRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return r.delete(ctx, tx, id)
}

// DeleteLiveByStudentIDTx removes the student's Pending/Approved/Active
// bookings, used when the student record itself is being deleted.
func (r *bookingRepository) DeleteLiveByStudentIDTx(ctx context.Context, tx pgx.Tx, studentID uuid.UUID) error {
	query := `DELETE FROM bookings WHERE student_id = $1 AND status IN ('Pending', 'Approved', 'Active')`

	_, err := tx.Exec(ctx, query, studentID)
	if err != nil {
		r.log.Error("Failed to delete live bookings",
			zap.Error(err),
			zap.String("student_id", studentID.String()),
		)
		return fmt.Errorf("delete live bookings for student %s: %w", studentID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) StatusBreakdown(ctx context.Context) ([]BookingStatusStat, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get booking status breakdown", zap.Error(err))
		return nil, fmt.Errorf("booking status breakdown: %w", err)
	}
	defer rows.Close()

	var stats []BookingStatusStat
	for rows.Next() {
		var stat BookingStatusStat
		if err := rows.Scan(&stat.Status, &stat.Count, &stat.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan booking status stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find recent bookings", zap.Error(err))
		return nil, fmt.Errorf("find recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
