package response

import (
	"time"

	"hostel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string                 `json:"id"`
	Student         *StudentSummary        `json:"student,omitempty"`
	Room            *RoomSummary           `json:"room,omitempty"`
	StudentID       string                 `json:"studentId"`
	RoomID          string                 `json:"roomId"`
	StartDate       time.Time              `json:"startDate"`
	EndDate         *time.Time             `json:"endDate,omitempty"`
	Status          entity.BookingStatus   `json:"status"`
	Duration        entity.BookingDuration `json:"duration"`
	Rent            float64                `json:"rent"`
	SecurityDeposit float64                `json:"securityDeposit"`
	TotalAmount     float64                `json:"totalAmount"`
	PaymentStatus   entity.PaymentStatus   `json:"paymentStatus"`
	Notes           *string                `json:"notes,omitempty"`
	ApprovedBy      *string                `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time             `json:"approvedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type BookingStatsResponse struct {
	TotalBookings   int64             `json:"totalBookings"`
	StatusBreakdown any               `json:"statusBreakdown"`
	RecentBookings  []BookingResponse `json:"recentBookings"`
}

// BookingToResponse resolves the student and room references for display;
// either may be nil when the caller did not load them.
func BookingToResponse(booking *entity.Booking, student *entity.Student, room *entity.Room) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		StudentID:       booking.StudentID.String(),
		RoomID:          booking.RoomID.String(),
		StartDate:       booking.StartDate,
		EndDate:         booking.EndDate,
		Status:          booking.Status,
		Duration:        booking.Duration,
		Rent:            booking.Rent,
		SecurityDeposit: booking.SecurityDeposit,
		TotalAmount:     booking.TotalAmount,
		PaymentStatus:   booking.PaymentStatus,
		Notes:           booking.Notes,
		ApprovedBy:      booking.ApprovedBy,
		ApprovedAt:      booking.ApprovedAt,
		CreatedAt:       booking.CreatedAt,
	}
	if student != nil {
		summary := StudentToSummary(student)
		resp.Student = &summary
	}
	if room != nil {
		summary := RoomToSummary(room)
		resp.Room = &summary
	}
	return resp
}
