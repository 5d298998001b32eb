package request

type CreateRoomRequest struct {
	RoomNumber  string   `json:"roomNumber" validate:"required"`
	Floor       int      `json:"floor" validate:"gte=0"`
	Capacity    int      `json:"capacity" validate:"required,gte=1,lte=4"`
	RoomType    string   `json:"roomType" validate:"required,oneof=Single Double Triple Quad"`
	Gender      string   `json:"gender" validate:"required,oneof=Male Female Mixed"`
	Rent        float64  `json:"rent" validate:"required,gt=0"`
	Facilities  []string `json:"facilities,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// UpdateRoomRequest carries partial updates; nil fields are left unchanged.
// Occupancy and the student set are owned by the booking lifecycle and are
// not updatable here.
type UpdateRoomRequest struct {
	RoomNumber  *string  `json:"roomNumber,omitempty"`
	Floor       *int     `json:"floor,omitempty" validate:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity,omitempty" validate:"omitempty,gte=1,lte=4"`
	RoomType    *string  `json:"roomType,omitempty" validate:"omitempty,oneof=Single Double Triple Quad"`
	Gender      *string  `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Mixed"`
	Rent        *float64 `json:"rent,omitempty" validate:"omitempty,gt=0"`
	Facilities  []string `json:"facilities,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=Available Occupied Maintenance Reserved"`
	Description *string  `json:"description,omitempty"`
}

type RoomListRequest struct {
	PaginatedRequest
	Status    string `json:"status" validate:"omitempty,oneof=Available Occupied Maintenance Reserved"`
	RoomType  string `json:"roomType" validate:"omitempty,oneof=Single Double Triple Quad"`
	Gender    string `json:"gender" validate:"omitempty,oneof=Male Female Mixed"`
	Floor     *int   `json:"floor,omitempty"`
	Available bool   `json:"available"`
}
