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

const roomColumns = `id, room_number, floor, capacity, current_occupancy, room_type, gender,
	       rent, facilities, status, students, description, created_at, updated_at`

// RoomFilter narrows listing queries. Zero values mean "no filter".
// AvailableOnly additionally requires occupancy under capacity.
type RoomFilter struct {
	Status        string
	RoomType      string
	Gender        string
	Floor         *int
	AvailableOnly bool
}

type RoomStatusStat struct {
	Status         entity.RoomStatus `json:"status"`
	Count          int64             `json:"count"`
	TotalCapacity  int64             `json:"totalCapacity"`
	TotalOccupancy int64             `json:"totalOccupancy"`
}

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context, filter RoomFilter, limit, offset int) ([]*entity.Room, error)
	Count(ctx context.Context, filter RoomFilter) (int64, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Transactional variants used by the booking lifecycle. The FOR UPDATE
	// row lock serializes concurrent occupancy changes per room.
	FindByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Room, error)
	UpdateOccupancyTx(ctx context.Context, tx pgx.Tx, room *entity.Room) error

	// Statistics
	CountAll(ctx context.Context) (int64, error)
	StatusBreakdown(ctx context.Context) ([]RoomStatusStat, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Floor,
		&room.Capacity,
		&room.CurrentOccupancy,
		&room.RoomType,
		&room.Gender,
		&room.Rent,
		&room.Facilities,
		&room.Status,
		&room.Students,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, floor, capacity, current_occupancy, room_type, gender,
		                   rent, facilities, status, students, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Floor,
		room.Capacity,
		room.CurrentOccupancy,
		room.RoomType,
		room.Gender,
		room.Rent,
		room.Facilities,
		room.Status,
		room.Students,
		room.Description,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) findByID(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	room, err := scanRoom(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.findByID(ctx, r.db, id, false)
}

func (r *roomRepository) FindByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Room, error) {
	return r.findByID(ctx, tx, id, true)
}

func (r *roomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, roomNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNumber, err)
	}

	return room, nil
}

func buildRoomWhere(filter RoomFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.RoomType != "" {
		args = append(args, filter.RoomType)
		conds = append(conds, fmt.Sprintf("room_type = $%d", len(args)))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		conds = append(conds, fmt.Sprintf("gender = $%d", len(args)))
	}
	if filter.Floor != nil {
		args = append(args, *filter.Floor)
		conds = append(conds, fmt.Sprintf("floor = $%d", len(args)))
	}
	if filter.AvailableOnly {
		conds = append(conds, "status = 'Available'", "current_occupancy < capacity")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *roomRepository) FindAll(ctx context.Context, filter RoomFilter, limit, offset int) ([]*entity.Room, error) {
	where, args := buildRoomWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+roomColumns+` FROM rooms%s ORDER BY floor, room_number LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context, filter RoomFilter) (int64, error) {
	where, args := buildRoomWhere(filter)
	query := "SELECT COUNT(*) FROM rooms" + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, floor = $3, capacity = $4, current_occupancy = $5, room_type = $6,
		    gender = $7, rent = $8, facilities = $9, status = $10, students = $11,
		    description = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Floor,
		room.Capacity,
		room.CurrentOccupancy,
		room.RoomType,
		room.Gender,
		room.Rent,
		room.Facilities,
		room.Status,
		room.Students,
		room.Description,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

// UpdateOccupancyTx persists only the occupancy-related fields, leaving the
// room's descriptive fields untouched by lifecycle transitions.
func (r *roomRepository) UpdateOccupancyTx(ctx context.Context, tx pgx.Tx, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET current_occupancy = $2, status = $3, students = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, query,
		room.ID,
		room.CurrentOccupancy,
		room.Status,
		room.Students,
	)

	if err != nil {
		r.log.Error("Failed to update room occupancy",
			zap.Error(err),
			zap.String("id", room.ID.String()),
		)
		return fmt.Errorf("update room %s occupancy: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("id", id.String()))
	return nil
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func (r *roomRepository) StatusBreakdown(ctx context.Context) ([]RoomStatusStat, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(capacity), 0), COALESCE(SUM(current_occupancy), 0)
		FROM rooms
		GROUP BY status
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get room status breakdown", zap.Error(err))
		return nil, fmt.Errorf("room status breakdown: %w", err)
	}
	defer rows.Close()

	var stats []RoomStatusStat
	for rows.Next() {
		var stat RoomStatusStat
		if err := rows.Scan(&stat.Status, &stat.Count, &stat.TotalCapacity, &stat.TotalOccupancy); err != nil {
			return nil, fmt.Errorf("scan room status stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}
