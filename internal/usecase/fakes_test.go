package usecase

import (
	"context"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB satisfies database.PgxIface for exercising the transactional
// lifecycle paths without a live database. Begin hands out a fakeTx; the
// fake repositories ignore the tx argument entirely.
type fakeDB struct {
	begun      int
	committed  int
	rolledBack int
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (f *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	f.begun++
	return &fakeTx{db: f}, nil
}
func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close()                     {}

// fakeTx embeds pgx.Tx for interface compliance; only Commit and Rollback
// are expected to be called.
type fakeTx struct {
	pgx.Tx
	db   *fakeDB
	done bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.done = true
	t.db.committed++
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.db.rolledBack++
	return nil
}

// ---------- students ----------

type fakeStudentRepo struct {
	students map[uuid.UUID]*entity.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uuid.UUID]*entity.Student)}
}

func copyStudent(s *entity.Student) *entity.Student {
	cp := *s
	return &cp
}

func (f *fakeStudentRepo) Create(_ context.Context, s *entity.Student) error {
	f.students[s.ID] = copyStudent(s)
	return nil
}

func (f *fakeStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, nil
	}
	return copyStudent(s), nil
}

func (f *fakeStudentRepo) FindByEmail(_ context.Context, email string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return copyStudent(s), nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) FindByEmailOrStudentID(_ context.Context, email, studentID string) (*entity.Student, error) {
	for _, s := range f.students {
		if s.Email == email || s.StudentID == studentID {
			return copyStudent(s), nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) FindAll(context.Context, repository.StudentFilter, int, int) ([]*entity.Student, error) {
	var out []*entity.Student
	for _, s := range f.students {
		out = append(out, copyStudent(s))
	}
	return out, nil
}

func (f *fakeStudentRepo) Count(context.Context, repository.StudentFilter) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeStudentRepo) Update(_ context.Context, s *entity.Student) error {
	f.students[s.ID] = copyStudent(s)
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.students, id)
	return nil
}

func (f *fakeStudentRepo) FindByIDForUpdateTx(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*entity.Student, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeStudentRepo) SetRoomTx(_ context.Context, _ pgx.Tx, id uuid.UUID, roomID *uuid.UUID) error {
	if s, ok := f.students[id]; ok {
		s.RoomID = roomID
	}
	return nil
}

func (f *fakeStudentRepo) DeleteTx(ctx context.Context, _ pgx.Tx, id uuid.UUID) error {
	return f.Delete(ctx, id)
}

func (f *fakeStudentRepo) CountWithRoom(context.Context) (int64, error) {
	var n int64
	for _, s := range f.students {
		if s.RoomID != nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentRepo) CountByYear(context.Context) ([]repository.YearStat, error) {
	return nil, nil
}

func (f *fakeStudentRepo) CountByGender(context.Context) ([]repository.GenderStat, error) {
	return nil, nil
}

// ---------- rooms ----------

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func copyRoom(r *entity.Room) *entity.Room {
	cp := *r
	cp.Students = append([]uuid.UUID(nil), r.Students...)
	cp.Facilities = append([]string(nil), r.Facilities...)
	return &cp
}

func (f *fakeRoomRepo) Create(_ context.Context, r *entity.Room) error {
	f.rooms[r.ID] = copyRoom(r)
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	return copyRoom(r), nil
}

func (f *fakeRoomRepo) FindByRoomNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber {
			return copyRoom(r), nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(context.Context, repository.RoomFilter, int, int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, r := range f.rooms {
		out = append(out, copyRoom(r))
	}
	return out, nil
}

func (f *fakeRoomRepo) Count(context.Context, repository.RoomFilter) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) Update(_ context.Context, r *entity.Room) error {
	f.rooms[r.ID] = copyRoom(r)
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) FindByIDForUpdateTx(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*entity.Room, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeRoomRepo) UpdateOccupancyTx(_ context.Context, _ pgx.Tx, r *entity.Room) error {
	stored, ok := f.rooms[r.ID]
	if !ok {
		return nil
	}
	stored.CurrentOccupancy = r.CurrentOccupancy
	stored.Status = r.Status
	stored.Students = append([]uuid.UUID(nil), r.Students...)
	return nil
}

func (f *fakeRoomRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) StatusBreakdown(context.Context) ([]repository.RoomStatusStat, error) {
	return nil, nil
}

// ---------- bookings ----------

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func copyBooking(b *entity.Booking) *entity.Booking {
	cp := *b
	return &cp
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	f.bookings[b.ID] = copyBooking(b)
	return nil
}

func (f *fakeBookingRepo) CreateTx(ctx context.Context, _ pgx.Tx, b *entity.Booking) error {
	return f.Create(ctx, b)
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(b), nil
}

func (f *fakeBookingRepo) FindLiveByStudentID(_ context.Context, studentID uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.StudentID == studentID && b.IsLive() {
			return copyBooking(b), nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(context.Context, repository.BookingFilter, int, int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		out = append(out, copyBooking(b))
	}
	return out, nil
}

func (f *fakeBookingRepo) Count(context.Context, repository.BookingFilter) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) Update(_ context.Context, b *entity.Booking) error {
	f.bookings[b.ID] = copyBooking(b)
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) FindByIDTx(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*entity.Booking, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookingRepo) FindLiveByStudentIDTx(ctx context.Context, _ pgx.Tx, studentID uuid.UUID) (*entity.Booking, error) {
	return f.FindLiveByStudentID(ctx, studentID)
}

func (f *fakeBookingRepo) UpdateTx(ctx context.Context, _ pgx.Tx, b *entity.Booking) error {
	return f.Update(ctx, b)
}

func (f *fakeBookingRepo) DeleteTx(ctx context.Context, _ pgx.Tx, id uuid.UUID) error {
	return f.Delete(ctx, id)
}

func (f *fakeBookingRepo) DeleteLiveByStudentIDTx(_ context.Context, _ pgx.Tx, studentID uuid.UUID) error {
	for id, b := range f.bookings {
		if b.StudentID == studentID && b.IsLive() {
			delete(f.bookings, id)
		}
	}
	return nil
}

func (f *fakeBookingRepo) CountAll(context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) StatusBreakdown(context.Context) ([]repository.BookingStatusStat, error) {
	return nil, nil
}

func (f *fakeBookingRepo) FindRecent(context.Context, int) ([]*entity.Booking, error) {
	return nil, nil
}
