package usecase

import (
	"context"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	Create(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	List(ctx context.Context, req *request.RoomListRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	GetByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	Update(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, roomID string) error
	Stats(ctx context.Context) (*response.RoomStatsResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) Create(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Room.FindByRoomNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflict("room number already exists")
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		RoomType:    entity.RoomType(req.RoomType),
		Gender:      entity.RoomGender(req.Gender),
		Rent:        req.Rent,
		Facilities:  req.Facilities,
		Status:      entity.RoomStatusAvailable,
		Students:    []uuid.UUID{},
		Description: req.Description,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("id", room.ID.String()),
		zap.String("room_number", room.RoomNumber),
	)

	resp := response.RoomToResponse(room, nil)
	return &resp, nil
}

func (s *roomService) List(ctx context.Context, req *request.RoomListRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	filter := repository.RoomFilter{
		Status:        req.Status,
		RoomType:      req.RoomType,
		Gender:        req.Gender,
		Floor:         req.Floor,
		AvailableOnly: req.Available,
	}

	rooms, err := s.repo.Room.FindAll(ctx, filter, req.PageLimit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Room.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resps := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		resps[i] = response.RoomToResponse(room, s.residents(ctx, room))
	}

	return response.NewPaginatedResponse(resps, req.Page, req.PageLimit(), total), nil
}

func (s *roomService) GetByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid room ID format")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NewNotFound("room not found")
	}

	resp := response.RoomToResponse(room, s.residents(ctx, room))
	return &resp, nil
}

func (s *roomService) Update(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid room ID format")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NewNotFound("room not found")
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		existing, err := s.repo.Room.FindByRoomNumber(ctx, *req.RoomNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperrors.NewConflict("room number already exists")
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.Capacity != nil {
		if *req.Capacity < room.CurrentOccupancy {
			return nil, apperrors.NewConflict("capacity cannot be lower than current occupancy")
		}
		room.Capacity = *req.Capacity
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.RoomType != nil {
		room.RoomType = entity.RoomType(*req.RoomType)
	}
	if req.Gender != nil {
		room.Gender = entity.RoomGender(*req.Gender)
	}
	if req.Rent != nil {
		room.Rent = *req.Rent
	}
	if req.Facilities != nil {
		room.Facilities = req.Facilities
	}
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room updated", zap.String("id", roomID))

	resp := response.RoomToResponse(room, s.residents(ctx, room))
	return &resp, nil
}

// Delete refuses to remove a room that still houses students; occupants must
// be moved out through the booking lifecycle first.
func (s *roomService) Delete(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return apperrors.NewValidation("invalid room ID format")
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return apperrors.NewNotFound("room not found")
	}
	if room.CurrentOccupancy > 0 {
		return apperrors.NewConflict("room still has occupants")
	}

	return s.repo.Room.Delete(ctx, id)
}

func (s *roomService) Stats(ctx context.Context) (*response.RoomStatsResponse, error) {
	total, err := s.repo.Room.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.repo.Room.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	var capacity, occupancy int64
	for _, stat := range breakdown {
		capacity += stat.TotalCapacity
		occupancy += stat.TotalOccupancy
	}

	rate := 0.0
	if capacity > 0 {
		rate = float64(occupancy) / float64(capacity) * 100
	}

	return &response.RoomStatsResponse{
		TotalRooms:      total,
		StatusBreakdown: breakdown,
		OccupancyRate:   rate,
	}, nil
}

// residents resolves the room's student list to summaries for display.
func (s *roomService) residents(ctx context.Context, room *entity.Room) []response.StudentSummary {
	summaries := make([]response.StudentSummary, 0, len(room.Students))
	for _, studentID := range room.Students {
		student, _ := s.repo.Student.FindByID(ctx, studentID)
		if student != nil {
			summaries = append(summaries, response.StudentToSummary(student))
		}
	}
	return summaries
}
