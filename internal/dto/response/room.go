package response

import (
	"time"

	"hostel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID               string            `json:"id"`
	RoomNumber       string            `json:"roomNumber"`
	Floor            int               `json:"floor"`
	Capacity         int               `json:"capacity"`
	CurrentOccupancy int               `json:"currentOccupancy"`
	AvailableSpots   int               `json:"availableSpots"`
	RoomType         entity.RoomType   `json:"roomType"`
	Gender           entity.RoomGender `json:"gender"`
	Rent             float64           `json:"rent"`
	Facilities       []string          `json:"facilities"`
	Status           entity.RoomStatus `json:"status"`
	Students         []StudentSummary  `json:"students"`
	Description      *string           `json:"description,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// RoomSummary is the short form embedded in booking and student responses.
type RoomSummary struct {
	ID         string          `json:"id"`
	RoomNumber string          `json:"roomNumber"`
	Floor      int             `json:"floor"`
	RoomType   entity.RoomType `json:"roomType"`
	Rent       float64         `json:"rent"`
}

type RoomStatsResponse struct {
	TotalRooms      int64   `json:"totalRooms"`
	StatusBreakdown any     `json:"statusBreakdown"`
	OccupancyRate   float64 `json:"occupancyRate"`
}

func RoomToResponse(room *entity.Room, students []StudentSummary) RoomResponse {
	if students == nil {
		students = []StudentSummary{}
	}
	facilities := room.Facilities
	if facilities == nil {
		facilities = []string{}
	}
	return RoomResponse{
		ID:               room.ID.String(),
		RoomNumber:       room.RoomNumber,
		Floor:            room.Floor,
		Capacity:         room.Capacity,
		CurrentOccupancy: room.CurrentOccupancy,
		AvailableSpots:   room.AvailableSpots(),
		RoomType:         room.RoomType,
		Gender:           room.Gender,
		Rent:             room.Rent,
		Facilities:       facilities,
		Status:           room.Status,
		Students:         students,
		Description:      room.Description,
		CreatedAt:        room.CreatedAt,
	}
}

func RoomToSummary(room *entity.Room) RoomSummary {
	return RoomSummary{
		ID:         room.ID.String(),
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		RoomType:   room.RoomType,
		Rent:       room.Rent,
	}
}
