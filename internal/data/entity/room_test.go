package entity

import (
	"testing"

	"github.com/google/uuid"
)

func testRoom(capacity int) *Room {
	return &Room{
		Base:       Base{ID: uuid.New()},
		RoomNumber: "101",
		Capacity:   capacity,
		Status:     RoomStatusAvailable,
	}
}

func TestAddStudentOccupancy(t *testing.T) {
	room := testRoom(2)
	first := uuid.New()
	second := uuid.New()

	if !room.AddStudent(first) {
		t.Fatal("first add returned false")
	}
	if room.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1", room.CurrentOccupancy)
	}
	if room.Status != RoomStatusAvailable {
		t.Errorf("status = %s, want Available under capacity", room.Status)
	}

	if !room.AddStudent(second) {
		t.Fatal("second add returned false")
	}
	if room.CurrentOccupancy != 2 {
		t.Errorf("occupancy = %d, want 2", room.CurrentOccupancy)
	}
	if room.Status != RoomStatusOccupied {
		t.Errorf("status = %s, want Occupied at capacity", room.Status)
	}
	if !room.IsFull() {
		t.Error("IsFull = false at capacity")
	}
}

func TestAddStudentIdempotent(t *testing.T) {
	room := testRoom(2)
	student := uuid.New()

	room.AddStudent(student)
	if room.AddStudent(student) {
		t.Error("re-adding the same student returned true")
	}
	if room.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1 after duplicate add", room.CurrentOccupancy)
	}
	if len(room.Students) != 1 {
		t.Errorf("students = %d, want 1", len(room.Students))
	}
}

func TestRemoveStudentReopensRoom(t *testing.T) {
	room := testRoom(1)
	student := uuid.New()
	room.AddStudent(student)

	room.RemoveStudent(student)

	if room.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0", room.CurrentOccupancy)
	}
	if room.Status != RoomStatusAvailable {
		t.Errorf("status = %s, want Available", room.Status)
	}
	if room.HasStudent(student) {
		t.Error("student still listed after removal")
	}
}

func TestRemoveStudentNeverGoesNegative(t *testing.T) {
	room := testRoom(2)

	room.RemoveStudent(uuid.New())
	if room.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0", room.CurrentOccupancy)
	}
}

func TestAvailableSpots(t *testing.T) {
	room := testRoom(3)
	room.AddStudent(uuid.New())

	if got := room.AvailableSpots(); got != 2 {
		t.Errorf("AvailableSpots = %d, want 2", got)
	}
}

func TestAcceptsGender(t *testing.T) {
	cases := []struct {
		room   RoomGender
		person Gender
		want   bool
	}{
		{RoomGenderMixed, GenderMale, true},
		{RoomGenderMixed, GenderOther, true},
		{RoomGenderMale, GenderMale, true},
		{RoomGenderMale, GenderFemale, false},
		{RoomGenderFemale, GenderFemale, true},
		{RoomGenderFemale, GenderMale, false},
	}

	for _, tc := range cases {
		room := &Room{Gender: tc.room}
		if got := room.AcceptsGender(tc.person); got != tc.want {
			t.Errorf("room %s / student %s = %v, want %v", tc.room, tc.person, got, tc.want)
		}
	}
}
