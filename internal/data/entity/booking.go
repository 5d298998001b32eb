package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type BookingDuration string

const (
	DurationSemester     BookingDuration = "Semester"
	DurationAcademicYear BookingDuration = "Academic Year"
	DurationSummer       BookingDuration = "Summer"
	DurationCustom       BookingDuration = "Custom"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPartial  PaymentStatus = "Partial"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

// Months is the rent multiplier for a duration. Custom bookings are billed
// like a semester.
func (d BookingDuration) Months() int {
	switch d {
	case DurationAcademicYear:
		return 10
	case DurationSummer:
		return 3
	default: // Semester, Custom
		return 6
	}
}

type Booking struct {
	Base
	StudentID       uuid.UUID       `db:"student_id"`
	RoomID          uuid.UUID       `db:"room_id"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`
	Status          BookingStatus   `db:"status"`
	Duration        BookingDuration `db:"duration"`
	Rent            float64         `db:"rent"`
	SecurityDeposit float64         `db:"security_deposit"`
	TotalAmount     float64         `db:"total_amount"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	Notes           *string         `db:"notes"`
	ApprovedBy      *string         `db:"approved_by"`
	ApprovedAt      *time.Time      `db:"approved_at"`
}

// SetAmounts prices the booking from the room's monthly rent: one month as
// security deposit plus rent for the duration. Amounts always come from the
// room record, never from the caller.
func (b *Booking) SetAmounts(monthlyRent float64) {
	b.Rent = monthlyRent
	b.SecurityDeposit = monthlyRent
	b.TotalAmount = monthlyRent*float64(b.Duration.Months()) + b.SecurityDeposit
}

// IsLive reports whether the booking still ties the student to the room
// (Pending, Approved or Active). A student may hold at most one live booking.
func (b *Booking) IsLive() bool {
	switch b.Status {
	case BookingStatusPending, BookingStatusApproved, BookingStatusActive:
		return true
	}
	return false
}

// HoldsOccupancy reports whether the booking has been counted against the
// room's occupancy, i.e. an approval side effect has run and not been undone.
func (b *Booking) HoldsOccupancy() bool {
	return b.Status == BookingStatusApproved || b.Status == BookingStatusActive
}
