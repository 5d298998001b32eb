package entity

import (
	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Student struct {
	Base
	StudentID    string     `db:"student_id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	PasswordHash string     `db:"password"`
	Course       string     `db:"course"`
	Year         int        `db:"year"`
	Gender       Gender     `db:"gender"`
	RoomID       *uuid.UUID `db:"room_id"`
	IsActive     bool       `db:"is_active"`
}

func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// HasRoom reports whether the student currently occupies a room.
func (s *Student) HasRoom() bool {
	return s.RoomID != nil
}
