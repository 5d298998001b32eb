package entity

import (
	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
	RoomStatusReserved    RoomStatus = "Reserved"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeTriple RoomType = "Triple"
	RoomTypeQuad   RoomType = "Quad"
)

// RoomGender is the per-room occupancy policy, not a person's gender.
type RoomGender string

const (
	RoomGenderMale   RoomGender = "Male"
	RoomGenderFemale RoomGender = "Female"
	RoomGenderMixed  RoomGender = "Mixed"
)

type Room struct {
	Base
	RoomNumber       string      `db:"room_number"`
	Floor            int         `db:"floor"`
	Capacity         int         `db:"capacity"`
	CurrentOccupancy int         `db:"current_occupancy"`
	RoomType         RoomType    `db:"room_type"`
	Gender           RoomGender  `db:"gender"`
	Rent             float64     `db:"rent"`
	Facilities       []string    `db:"facilities"`
	Status           RoomStatus  `db:"status"`
	Students         []uuid.UUID `db:"students"`
	Description      *string     `db:"description"`
}

func (r *Room) IsFull() bool {
	return r.CurrentOccupancy >= r.Capacity
}

func (r *Room) AvailableSpots() int {
	return r.Capacity - r.CurrentOccupancy
}

func (r *Room) HasStudent(studentID uuid.UUID) bool {
	for _, id := range r.Students {
		if id == studentID {
			return true
		}
	}
	return false
}

// AcceptsGender reports whether the room's gender policy admits a student.
func (r *Room) AcceptsGender(g Gender) bool {
	return r.Gender == RoomGenderMixed || string(r.Gender) == string(g)
}

// AddStudent assigns a student to the room, bumping occupancy and flipping
// the room to Occupied once it reaches capacity. Adding a student who is
// already in the room is a no-op so a redundant approval never double-counts.
func (r *Room) AddStudent(studentID uuid.UUID) bool {
	if r.HasStudent(studentID) {
		return false
	}
	r.Students = append(r.Students, studentID)
	r.CurrentOccupancy++
	if r.CurrentOccupancy >= r.Capacity {
		r.Status = RoomStatusOccupied
	}
	return true
}

// RemoveStudent releases a student's slot. Occupancy never goes below zero,
// and the room flips back to Available as soon as it is under capacity.
func (r *Room) RemoveStudent(studentID uuid.UUID) {
	kept := r.Students[:0]
	for _, id := range r.Students {
		if id != studentID {
			kept = append(kept, id)
		}
	}
	r.Students = kept
	if r.CurrentOccupancy > 0 {
		r.CurrentOccupancy--
	}
	if r.CurrentOccupancy < r.Capacity {
		r.Status = RoomStatusAvailable
	}
}
