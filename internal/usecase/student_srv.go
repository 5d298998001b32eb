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

type StudentService interface {
	List(ctx context.Context, req *request.StudentListRequest) (*response.PaginatedResponse[response.StudentResponse], error)
	GetByID(ctx context.Context, studentID string) (*response.StudentResponse, error)
	Update(ctx context.Context, studentID string, req *request.UpdateStudentRequest) (*response.StudentResponse, error)
	Delete(ctx context.Context, studentID string) error
	Stats(ctx context.Context) (*response.StudentStatsResponse, error)
}

type studentService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewStudentService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) StudentService {
	return &studentService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "student")),
	}
}

func (s *studentService) List(ctx context.Context, req *request.StudentListRequest) (*response.PaginatedResponse[response.StudentResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	filter := repository.StudentFilter{
		Course:  req.Course,
		Year:    req.Year,
		Gender:  req.Gender,
		HasRoom: req.HasRoom,
	}

	students, err := s.repo.Student.FindAll(ctx, filter, req.PageLimit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Student.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resps := make([]response.StudentResponse, len(students))
	for i, student := range students {
		var room *entity.Room
		if student.RoomID != nil {
			room, _ = s.repo.Room.FindByID(ctx, *student.RoomID)
		}
		resps[i] = response.StudentToResponse(student, room)
	}

	return response.NewPaginatedResponse(resps, req.Page, req.PageLimit(), total), nil
}

func (s *studentService) GetByID(ctx context.Context, studentID string) (*response.StudentResponse, error) {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid student ID format")
	}

	student, err := s.repo.Student.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student not found")
	}

	var room *entity.Room
	if student.RoomID != nil {
		room, _ = s.repo.Room.FindByID(ctx, *student.RoomID)
	}

	resp := response.StudentToResponse(student, room)
	return &resp, nil
}

func (s *studentService) Update(ctx context.Context, studentID string, req *request.UpdateStudentRequest) (*response.StudentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update student validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(studentID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid student ID format")
	}

	student, err := s.repo.Student.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFound("student not found")
	}

	if req.Email != nil && *req.Email != student.Email {
		existing, err := s.repo.Student.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflict("email already in use")
		}
		student.Email = *req.Email
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Gender != nil {
		student.Gender = entity.Gender(*req.Gender)
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	student.UpdatedAt = time.Now()

	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, err
	}

	s.log.Info("Student updated", zap.String("id", studentID))

	var room *entity.Room
	if student.RoomID != nil {
		room, _ = s.repo.Room.FindByID(ctx, *student.RoomID)
	}

	resp := response.StudentToResponse(student, room)
	return &resp, nil
}

// Delete removes a student along with their live bookings. A student who
// occupies a room is taken out of it first so the spot opens up again,
// all inside one transaction.
func (s *studentService) Delete(ctx context.Context, studentID string) error {
	id, err := uuid.Parse(studentID)
	if err != nil {
		return apperrors.NewValidation("invalid student ID format")
	}

	err = runInTx(ctx, s.db, func(tx pgx.Tx) error {
		student, err := s.repo.Student.FindByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if student == nil {
			return apperrors.NewNotFound("student not found")
		}

		if student.RoomID != nil {
			room, err := s.repo.Room.FindByIDForUpdateTx(ctx, tx, *student.RoomID)
			if err != nil {
				return err
			}
			if room != nil {
				room.RemoveStudent(id)
				if err := s.repo.Room.UpdateOccupancyTx(ctx, tx, room); err != nil {
					return err
				}
			}
		}

		if err := s.repo.Booking.DeleteLiveByStudentIDTx(ctx, tx, id); err != nil {
			return err
		}

		return s.repo.Student.DeleteTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("Student deleted", zap.String("id", studentID))
	return nil
}

func (s *studentService) Stats(ctx context.Context) (*response.StudentStatsResponse, error) {
	total, err := s.repo.Student.Count(ctx, repository.StudentFilter{})
	if err != nil {
		return nil, err
	}

	withRoom, err := s.repo.Student.CountWithRoom(ctx)
	if err != nil {
		return nil, err
	}

	byYear, err := s.repo.Student.CountByYear(ctx)
	if err != nil {
		return nil, err
	}

	byGender, err := s.repo.Student.CountByGender(ctx)
	if err != nil {
		return nil, err
	}

	return &response.StudentStatsResponse{
		TotalStudents:   total,
		YearBreakdown:   byYear,
		GenderBreakdown: byGender,
		RoomAssignments: response.RoomAssignments{
			Assigned:   withRoom,
			Unassigned: total - withRoom,
		},
	}, nil
}
