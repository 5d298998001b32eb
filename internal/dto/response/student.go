package response

import (
	"time"

	"hostel-booking/internal/data/entity"
)

type StudentResponse struct {
	ID        string             `json:"id"`
	StudentID string             `json:"studentId"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Course    string             `json:"course"`
	Year      int                `json:"year"`
	Gender    entity.Gender      `json:"gender"`
	RoomID    *string            `json:"roomId"`
	Room      *RoomSummary       `json:"room,omitempty"`
	IsActive  bool               `json:"isActive"`
	CreatedAt time.Time          `json:"createdAt"`
}

// StudentSummary is the short form embedded in booking and room responses.
type StudentSummary struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type StudentStatsResponse struct {
	TotalStudents   int64            `json:"totalStudents"`
	YearBreakdown   any              `json:"yearBreakdown"`
	GenderBreakdown any              `json:"genderBreakdown"`
	RoomAssignments RoomAssignments  `json:"roomAssignments"`
}

type RoomAssignments struct {
	Assigned   int64 `json:"assigned"`
	Unassigned int64 `json:"unassigned"`
}

func StudentToResponse(student *entity.Student, room *entity.Room) StudentResponse {
	resp := StudentResponse{
		ID:        student.ID.String(),
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		Phone:     student.Phone,
		Course:    student.Course,
		Year:      student.Year,
		Gender:    student.Gender,
		IsActive:  student.IsActive,
		CreatedAt: student.CreatedAt,
	}
	if student.RoomID != nil {
		id := student.RoomID.String()
		resp.RoomID = &id
	}
	if room != nil {
		summary := RoomToSummary(room)
		resp.Room = &summary
	}
	return resp
}

func StudentToSummary(student *entity.Student) StudentSummary {
	return StudentSummary{
		ID:        student.ID.String(),
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
	}
}
