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

const studentColumns = `id, student_id, first_name, last_name, email, phone, password,
	       course, year, gender, room_id, is_active, created_at, updated_at`

// StudentFilter narrows listing queries. Zero values mean "no filter".
type StudentFilter struct {
	Course  string
	Year    int
	Gender  string
	HasRoom *bool
}

type YearStat struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

type GenderStat struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	FindByEmail(ctx context.Context, email string) (*entity.Student, error)
	FindByEmailOrStudentID(ctx context.Context, email, studentID string) (*entity.Student, error)
	FindAll(ctx context.Context, filter StudentFilter, limit, offset int) ([]*entity.Student, error)
	Count(ctx context.Context, filter StudentFilter) (int64, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Transactional variants used by the booking lifecycle.
	FindByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Student, error)
	SetRoomTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, roomID *uuid.UUID) error
	DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error

	// Statistics
	CountWithRoom(ctx context.Context) (int64, error)
	CountByYear(ctx context.Context) ([]YearStat, error)
	CountByGender(ctx context.Context) ([]GenderStat, error)
}

type studentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStudentRepository(db database.PgxIface, log *zap.Logger) StudentRepository {
	return &studentRepository{
		db:  db,
		log: log.With(zap.String("repository", "student")),
	}
}

func scanStudent(row pgx.Row) (*entity.Student, error) {
	var student entity.Student
	err := row.Scan(
		&student.ID,
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Phone,
		&student.PasswordHash,
		&student.Course,
		&student.Year,
		&student.Gender,
		&student.RoomID,
		&student.IsActive,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	query := `
		INSERT INTO students (id, student_id, first_name, last_name, email, phone, password,
		                      course, year, gender, room_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		student.ID,
		student.StudentID,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.PasswordHash,
		student.Course,
		student.Year,
		student.Gender,
		student.RoomID,
		student.IsActive,
		student.CreatedAt,
		student.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create student",
			zap.Error(err),
			zap.String("student_id", student.StudentID),
		)
		return fmt.Errorf("create student %s: %w", student.StudentID, err)
	}

	return nil
}

func (r *studentRepository) findByID(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	student, err := scanStudent(q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find student by ID %s: %w", id.String(), err)
	}

	return student, nil
}

func (r *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return r.findByID(ctx, r.db, id, false)
}

func (r *studentRepository) FindByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entity.Student, error) {
	return r.findByID(ctx, tx, id, true)
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by email", zap.Error(err))
		return nil, fmt.Errorf("find student by email: %w", err)
	}

	return student, nil
}

func (r *studentRepository) FindByEmailOrStudentID(ctx context.Context, email, studentID string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE email = $1 OR student_id = $2 LIMIT 1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, email, studentID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find student by email or student ID",
			zap.Error(err),
			zap.String("student_id", studentID),
		)
		return nil, fmt.Errorf("find student by email or student ID: %w", err)
	}

	return student, nil
}

func buildStudentWhere(filter StudentFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Course != "" {
		args = append(args, "%"+filter.Course+"%")
		conds = append(conds, fmt.Sprintf("course ILIKE $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conds = append(conds, fmt.Sprintf("year = $%d", len(args)))
	}
	if filter.Gender != "" {
		args = append(args, filter.Gender)
		conds = append(conds, fmt.Sprintf("gender = $%d", len(args)))
	}
	if filter.HasRoom != nil {
		if *filter.HasRoom {
			conds = append(conds, "room_id IS NOT NULL")
		} else {
			conds = append(conds, "room_id IS NULL")
		}
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *studentRepository) FindAll(ctx context.Context, filter StudentFilter, limit, offset int) ([]*entity.Student, error) {
	where, args := buildStudentWhere(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+studentColumns+` FROM students%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find students", zap.Error(err))
		return nil, fmt.Errorf("find students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			r.log.Error("Failed to scan student row", zap.Error(err))
			return nil, fmt.Errorf("scan student row: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}

func (r *studentRepository) Count(ctx context.Context, filter StudentFilter) (int64, error) {
	where, args := buildStudentWhere(filter)
	query := "SELECT COUNT(*) FROM students" + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count students", zap.Error(err))
		return 0, fmt.Errorf("count students: %w", err)
	}

	return count, nil
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	query := `
		UPDATE students
		SET first_name = $2, last_name = $3, email = $4, phone = $5, course = $6,
		    year = $7, gender = $8, room_id = $9, is_active = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.Course,
		student.Year,
		student.Gender,
		student.RoomID,
		student.IsActive,
		student.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update student",
			zap.Error(err),
			zap.String("id", student.ID.String()),
		)
		return fmt.Errorf("update student %s: %w", student.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", student.ID.String())
	}

	return nil
}

func (r *studentRepository) SetRoomTx(ctx context.Context, tx pgx.Tx, id uuid.UUID, roomID *uuid.UUID) error {
	query := `UPDATE students SET room_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := tx.Exec(ctx, query, id, roomID)
	if err != nil {
		r.log.Error("Failed to set student room",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("set student %s room: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", id.String())
	}

	return nil
}

func (r *studentRepository) delete(ctx context.Context, q querier, id uuid.UUID) error {
	result, err := q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete student",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete student %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("student %s not found", id.String())
	}

	return nil
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.delete(ctx, r.db, id)
}

func (r *studentRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	return r.delete(ctx, tx, id)
}

func (r *studentRepository) CountWithRoom(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE room_id IS NOT NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count students with room", zap.Error(err))
		return 0, fmt.Errorf("count students with room: %w", err)
	}
	return count, nil
}

func (r *studentRepository) CountByYear(ctx context.Context) ([]YearStat, error) {
	rows, err := r.db.Query(ctx, `SELECT year, COUNT(*) FROM students GROUP BY year ORDER BY year`)
	if err != nil {
		r.log.Error("Failed to count students by year", zap.Error(err))
		return nil, fmt.Errorf("count students by year: %w", err)
	}
	defer rows.Close()

	var stats []YearStat
	for rows.Next() {
		var stat YearStat
		if err := rows.Scan(&stat.Year, &stat.Count); err != nil {
			return nil, fmt.Errorf("scan year stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}

func (r *studentRepository) CountByGender(ctx context.Context) ([]GenderStat, error) {
	rows, err := r.db.Query(ctx, `SELECT gender, COUNT(*) FROM students GROUP BY gender`)
	if err != nil {
		r.log.Error("Failed to count students by gender", zap.Error(err))
		return nil, fmt.Errorf("count students by gender: %w", err)
	}
	defer rows.Close()

	var stats []GenderStat
	for rows.Next() {
		var stat GenderStat
		if err := rows.Scan(&stat.Gender, &stat.Count); err != nil {
			return nil, fmt.Errorf("scan gender stat: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, nil
}
