package usecase

import (
	"context"
	"errors"
	"testing"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/pkg/apperrors"

	"go.uber.org/zap"
)

type roomFixture struct {
	*bookingFixture
	svc RoomService
}

func newRoomFixture() *roomFixture {
	base := newBookingFixture()
	repo := &repository.Repository{
		Student: base.students,
		Room:    base.rooms,
		Booking: base.bookings,
	}
	return &roomFixture{
		bookingFixture: base,
		svc:            NewRoomService(repo, zap.NewNop()),
	}
}

func TestCreateRoomStartsAvailable(t *testing.T) {
	f := newRoomFixture()

	resp, err := f.svc.Create(context.Background(), &request.CreateRoomRequest{
		RoomNumber: "201",
		Floor:      2,
		Capacity:   2,
		RoomType:   "Double",
		Gender:     "Mixed",
		Rent:       3000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if resp.Status != entity.RoomStatusAvailable {
		t.Errorf("status = %s, want Available", resp.Status)
	}
	if resp.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0", resp.CurrentOccupancy)
	}
	if resp.AvailableSpots != 2 {
		t.Errorf("available spots = %d, want 2", resp.AvailableSpots)
	}
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	f := newRoomFixture()
	room := f.addRoom(2, entity.RoomGenderMixed, 3000)

	_, err := f.svc.Create(context.Background(), &request.CreateRoomRequest{
		RoomNumber: room.RoomNumber,
		Capacity:   2,
		RoomType:   "Double",
		Gender:     "Mixed",
		Rent:       3000,
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want conflict", err)
	}
}

func TestDeleteOccupiedRoomRefused(t *testing.T) {
	f := newRoomFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(2, entity.RoomGenderMixed, 3000)
	room.AddStudent(student.ID)

	err := f.svc.Delete(context.Background(), room.ID.String())
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want conflict while occupied", err)
	}
	if _, ok := f.rooms.rooms[room.ID]; !ok {
		t.Error("room was deleted despite occupants")
	}
}

func TestUpdateRoomCapacityBelowOccupancy(t *testing.T) {
	f := newRoomFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(3, entity.RoomGenderMixed, 3000)
	room.AddStudent(student.ID)
	room.AddStudent(f.addStudent(entity.GenderMale).ID)

	capacity := 1
	_, err := f.svc.Update(context.Background(), room.ID.String(), &request.UpdateRoomRequest{
		Capacity: &capacity,
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want conflict", err)
	}
}
