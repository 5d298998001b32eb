package usecase

import (
	"context"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/database"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const recentBookingsLimit = 5

type BookingService interface {
	Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	List(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	SetStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	Delete(ctx context.Context, bookingID string) error
	Stats(ctx context.Context) (*response.BookingStatsResponse, error)
}

type bookingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Create registers a Pending booking after checking every precondition under
// row locks: the student and room rows are locked FOR UPDATE so two requests
// racing for the same student or the last spot in a room serialize instead of
// both passing the checks.
func (s *bookingService) Create(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid student ID format")
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid room ID format")
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate, err = time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidation("invalid start date, expected YYYY-MM-DD")
		}
	}

	var booking *entity.Booking
	var student *entity.Student
	var room *entity.Room

	err = runInTx(ctx, s.db, func(tx pgx.Tx) error {
		student, err = s.repo.Student.FindByIDForUpdateTx(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apperrors.NewNotFound("student not found")
		}

		live, err := s.repo.Booking.FindLiveByStudentIDTx(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if live != nil {
			return apperrors.NewConflict("student already has an active booking")
		}
		if student.HasRoom() {
			return apperrors.NewConflict("student already has a room assigned")
		}

		room, err = s.repo.Room.FindByIDForUpdateTx(ctx, tx, roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return apperrors.NewNotFound("room not found")
		}
		if room.Status != entity.RoomStatusAvailable || room.IsFull() {
			return apperrors.NewConflict("room is not available")
		}
		if !room.AcceptsGender(student.Gender) {
			return apperrors.NewConflict("room gender policy does not admit this student")
		}

		now := time.Now()
		endDate := startDate.AddDate(0, entity.BookingDuration(req.Duration).Months(), 0)
		booking = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			StudentID:     studentID,
			RoomID:        roomID,
			StartDate:     startDate,
			EndDate:       &endDate,
			Status:        entity.BookingStatusPending,
			Duration:      entity.BookingDuration(req.Duration),
			PaymentStatus: entity.PaymentStatusPending,
		}
		booking.SetAmounts(room.Rent)

		return s.repo.Booking.CreateTx(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("student_id", studentID.String()),
		zap.String("room_id", roomID.String()),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, student, room)
	return &resp, nil
}

// SetStatus applies a lifecycle transition. Approval assigns the student to
// the room and bumps occupancy exactly once; rejecting or cancelling a
// booking that was approved releases the spot again. All three rows move in
// one transaction so a crash can never leave occupancy half-updated.
func (s *bookingService) SetStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid booking ID format")
	}

	newStatus := entity.BookingStatus(req.Status)
	var booking *entity.Booking

	err = runInTx(ctx, s.db, func(tx pgx.Tx) error {
		booking, err = s.repo.Booking.FindByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperrors.NewNotFound("booking not found")
		}

		oldStatus := booking.Status
		now := time.Now()

		switch {
		case newStatus == entity.BookingStatusApproved && oldStatus != entity.BookingStatusApproved:
			if err := s.occupy(ctx, tx, booking); err != nil {
				return err
			}
			booking.ApprovedAt = &now
			booking.ApprovedBy = req.ApprovedBy

		case (newStatus == entity.BookingStatusRejected || newStatus == entity.BookingStatusCancelled) &&
			oldStatus == entity.BookingStatusApproved:
			if err := s.release(ctx, tx, booking); err != nil {
				return err
			}
		}

		booking.Status = newStatus
		if req.Notes != nil {
			booking.Notes = req.Notes
		}
		booking.UpdatedAt = now

		return s.repo.Booking.UpdateTx(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(newStatus)),
	)

	return s.resolve(ctx, booking), nil
}

// Delete removes a booking. If the booking was holding a room spot the spot
// is released in the same transaction, so deleting an approved booking never
// strands occupancy.
func (s *bookingService) Delete(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return apperrors.NewValidation("invalid booking ID format")
	}

	err = runInTx(ctx, s.db, func(tx pgx.Tx) error {
		booking, err := s.repo.Booking.FindByIDTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return apperrors.NewNotFound("booking not found")
		}

		if booking.HoldsOccupancy() {
			if err := s.release(ctx, tx, booking); err != nil {
				return err
			}
		}

		return s.repo.Booking.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}

// occupy locks the room and student rows, adds the student to the room and
// records the assignment. AddStudent is a no-op when the student is already
// in the room, so a repeated approval cannot double-count occupancy.
func (s *bookingService) occupy(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	room, err := s.repo.Room.FindByIDForUpdateTx(ctx, tx, booking.RoomID)
	if err != nil {
		return err
	}
	if room == nil {
		return apperrors.NewNotFound("room not found")
	}

	student, err := s.repo.Student.FindByIDForUpdateTx(ctx, tx, booking.StudentID)
	if err != nil {
		return err
	}
	if student == nil {
		return apperrors.NewNotFound("student not found")
	}

	if !room.HasStudent(booking.StudentID) && room.IsFull() {
		return apperrors.NewConflict("room is already at capacity")
	}

	if room.AddStudent(booking.StudentID) {
		if err := s.repo.Room.UpdateOccupancyTx(ctx, tx, room); err != nil {
			return err
		}
	}

	return s.repo.Student.SetRoomTx(ctx, tx, booking.StudentID, &booking.RoomID)
}

// release undoes occupy: the student leaves the room, occupancy drops
// (never below zero) and the room flips back to Available once under
// capacity.
func (s *bookingService) release(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	room, err := s.repo.Room.FindByIDForUpdateTx(ctx, tx, booking.RoomID)
	if err != nil {
		return err
	}
	if room != nil {
		room.RemoveStudent(booking.StudentID)
		if err := s.repo.Room.UpdateOccupancyTx(ctx, tx, room); err != nil {
			return err
		}
	}

	return s.repo.Student.SetRoomTx(ctx, tx, booking.StudentID, nil)
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid booking ID format")
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NewNotFound("booking not found")
	}

	return s.resolve(ctx, booking), nil
}

func (s *bookingService) List(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	filter := repository.BookingFilter{Status: req.Status}
	if req.StudentID != "" {
		id, err := uuid.Parse(req.StudentID)
		if err != nil {
			return nil, apperrors.NewValidation("invalid student ID format")
		}
		filter.StudentID = &id
	}
	if req.RoomID != "" {
		id, err := uuid.Parse(req.RoomID)
		if err != nil {
			return nil, apperrors.NewValidation("invalid room ID format")
		}
		filter.RoomID = &id
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter, req.PageLimit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(s.resolveAll(ctx, bookings), req.Page, req.PageLimit(), total), nil
}

func (s *bookingService) Stats(ctx context.Context) (*response.BookingStatsResponse, error) {
	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.repo.Booking.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Booking.FindRecent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &response.BookingStatsResponse{
		TotalBookings:   total,
		StatusBreakdown: breakdown,
		RecentBookings:  s.resolveAll(ctx, recent),
	}, nil
}

// resolve attaches student and room summaries for display. Lookups are best
// effort; a missing reference leaves the summary empty rather than failing
// the whole response.
func (s *bookingService) resolve(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	student, _ := s.repo.Student.FindByID(ctx, booking.StudentID)
	room, _ := s.repo.Room.FindByID(ctx, booking.RoomID)
	resp := response.BookingToResponse(booking, student, room)
	return &resp
}

func (s *bookingService) resolveAll(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	resps := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		resps[i] = *s.resolve(ctx, booking)
	}
	return resps
}
