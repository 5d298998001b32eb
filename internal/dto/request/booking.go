package request

type CreateBookingRequest struct {
	StudentID string  `json:"studentId" validate:"required,uuid4"`
	RoomID    string  `json:"roomId" validate:"required,uuid4"`
	Duration  string  `json:"duration" validate:"required,oneof=Semester 'Academic Year' Summer Custom"`
	StartDate *string `json:"startDate,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=Pending Approved Rejected Active Completed Cancelled"`
	ApprovedBy *string `json:"approvedBy,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type BookingListRequest struct {
	PaginatedRequest
	Status    string `json:"status" validate:"omitempty,oneof=Pending Approved Rejected Active Completed Cancelled"`
	StudentID string `json:"studentId" validate:"omitempty,uuid4"`
	RoomID    string `json:"roomId" validate:"omitempty,uuid4"`
}
