package usecase

import (
	"context"
	"fmt"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/auth"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Profile(ctx context.Context, studentID uuid.UUID) (*response.StudentResponse, error)
}

type authService struct {
	repo *repository.Repository
	jwt  *auth.JWTService
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwt *auth.JWTService, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		jwt:  jwt,
		log:  log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Student.FindByEmailOrStudentID(ctx, req.Email, req.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("a student with this email or student ID already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	student := &entity.Student{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StudentID:    req.StudentID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Course:       req.Course,
		Year:         req.Year,
		Gender:       entity.Gender(req.Gender),
		IsActive:     true,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(student.ID, student.StudentID, student.Email)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("Student registered",
		zap.String("id", student.ID.String()),
		zap.String("student_id", student.StudentID),
	)

	return &response.AuthResponse{
		Student: response.StudentToResponse(student, nil),
		Token:   token,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	student, err := s.repo.Student.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if student == nil || !auth.CheckPassword(student.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !student.IsActive {
		return nil, apperrors.NewUnauthorized("account is deactivated")
	}

	token, err := s.jwt.GenerateToken(student.ID, student.StudentID, student.Email)
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("Student logged in", zap.String("id", student.ID.String()))

	return &response.AuthResponse{
		Student: response.StudentToResponse(student, nil),
		Token:   token,
	}, nil
}

func (s *authService) Profile(ctx context.Context, studentID uuid.UUID) (*response.StudentResponse, error) {
	student, err := s.repo.Student.FindByID(ctx, studentID)
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
