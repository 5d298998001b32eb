package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostel-booking/internal/data/entity"
	"hostel-booking/internal/data/repository"
	"hostel-booking/internal/dto/request"
	"hostel-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bookingFixture struct {
	db       *fakeDB
	students *fakeStudentRepo
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	svc      BookingService
}

func newBookingFixture() *bookingFixture {
	db := &fakeDB{}
	students := newFakeStudentRepo()
	rooms := newFakeRoomRepo()
	bookings := newFakeBookingRepo()
	repo := &repository.Repository{
		Student: students,
		Room:    rooms,
		Booking: bookings,
	}
	return &bookingFixture{
		db:       db,
		students: students,
		rooms:    rooms,
		bookings: bookings,
		svc:      NewBookingService(db, repo, zap.NewNop()),
	}
}

func (f *bookingFixture) addStudent(gender entity.Gender) *entity.Student {
	now := time.Now()
	student := &entity.Student{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		StudentID: "STU-" + uuid.NewString()[:8],
		FirstName: "Test",
		LastName:  "Student",
		Email:     uuid.NewString() + "@example.com",
		Gender:    gender,
		IsActive:  true,
	}
	f.students.students[student.ID] = student
	return student
}

func (f *bookingFixture) addRoom(capacity int, gender entity.RoomGender, rent float64) *entity.Room {
	now := time.Now()
	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RoomNumber: "R-" + uuid.NewString()[:8],
		Capacity:   capacity,
		Gender:     gender,
		Rent:       rent,
		Status:     entity.RoomStatusAvailable,
	}
	f.rooms.rooms[room.ID] = room
	return room
}

func (f *bookingFixture) addBooking(studentID, roomID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		StudentID:     studentID,
		RoomID:        roomID,
		StartDate:     now,
		Status:        status,
		Duration:      entity.DurationSemester,
		PaymentStatus: entity.PaymentStatusPending,
	}
	booking.SetAmounts(5000)
	f.bookings.bookings[booking.ID] = booking
	return booking
}

func createReq(studentID, roomID uuid.UUID, duration string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		StudentID: studentID.String(),
		RoomID:    roomID.String(),
		Duration:  duration,
	}
}

func TestCreateBookingPricing(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderFemale)
	room := f.addRoom(2, entity.RoomGenderFemale, 5000)

	resp, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want Pending", resp.Status)
	}
	if resp.Rent != 5000 || resp.SecurityDeposit != 5000 {
		t.Errorf("rent/deposit = %v/%v, want 5000/5000", resp.Rent, resp.SecurityDeposit)
	}
	if resp.TotalAmount != 35000 {
		t.Errorf("total = %v, want 35000 (6 months rent + deposit)", resp.TotalAmount)
	}
	if resp.EndDate == nil {
		t.Error("end date not set")
	}
	if f.db.committed != 1 {
		t.Errorf("committed = %d, want 1", f.db.committed)
	}
}

func TestCreateBookingDurations(t *testing.T) {
	cases := []struct {
		duration string
		total    float64
	}{
		{"Semester", 7000},       // 6 months + deposit
		{"Academic Year", 11000}, // 10 months + deposit
		{"Summer", 4000},         // 3 months + deposit
		{"Custom", 7000},         // billed like a semester
	}

	for _, tc := range cases {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)

		resp, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, tc.duration))
		if err != nil {
			t.Fatalf("%s: Create: %v", tc.duration, err)
		}
		if resp.TotalAmount != tc.total {
			t.Errorf("%s: total = %v, want %v", tc.duration, resp.TotalAmount, tc.total)
		}
	}
}

func TestCreateBookingPreconditions(t *testing.T) {
	t.Run("student not found", func(t *testing.T) {
		f := newBookingFixture()
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)

		_, err := f.svc.Create(context.Background(), createReq(uuid.New(), room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("room not found", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)

		_, err := f.svc.Create(context.Background(), createReq(student.ID, uuid.New(), "Semester"))
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("err = %v, want not found", err)
		}
	})

	t.Run("student already has a live booking", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)
		f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})

	t.Run("closed booking does not block a new one", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)
		f.addBooking(student.ID, room.ID, entity.BookingStatusRejected)

		if _, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester")); err != nil {
			t.Errorf("Create: %v", err)
		}
	})

	t.Run("student already has a room", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)
		student.RoomID = &room.ID

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})

	t.Run("room full", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(1, entity.RoomGenderMixed, 1000)
		room.CurrentOccupancy = 1

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})

	t.Run("room under maintenance", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)
		room.Status = entity.RoomStatusMaintenance

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})

	t.Run("gender policy mismatch", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderFemale, 1000)

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Semester"))
		if !errors.Is(err, apperrors.ErrConflict) {
			t.Errorf("err = %v, want conflict", err)
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		f := newBookingFixture()
		student := f.addStudent(entity.GenderMale)
		room := f.addRoom(2, entity.RoomGenderMixed, 1000)

		_, err := f.svc.Create(context.Background(), createReq(student.ID, room.ID, "Weekend"))
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("err = %v, want validation", err)
		}
	})
}

func TestApproveAssignsRoomAndOccupancy(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderFemale)
	room := f.addRoom(1, entity.RoomGenderFemale, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	warden := "warden"
	resp, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{
		Status:     "Approved",
		ApprovedBy: &warden,
	})
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	if resp.Status != entity.BookingStatusApproved {
		t.Errorf("status = %s, want Approved", resp.Status)
	}
	if resp.ApprovedAt == nil {
		t.Error("ApprovedAt not set")
	}

	stored := f.rooms.rooms[room.ID]
	if stored.CurrentOccupancy != 1 {
		t.Errorf("occupancy = %d, want 1", stored.CurrentOccupancy)
	}
	if stored.Status != entity.RoomStatusOccupied {
		t.Errorf("room status = %s, want Occupied at capacity", stored.Status)
	}
	if !stored.HasStudent(student.ID) {
		t.Error("student not in room's student list")
	}
	if f.students.students[student.ID].RoomID == nil {
		t.Error("student room assignment not recorded")
	}
}

func TestRepeatedApprovalDoesNotDoubleCount(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(2, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	req := &request.UpdateBookingStatusRequest{Status: "Approved"}
	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), req); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	// Approving again via Active keeps the occupancy side effect idempotent.
	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Active"}); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), req); err != nil {
		t.Fatalf("re-approve: %v", err)
	}

	if got := f.rooms.rooms[room.ID].CurrentOccupancy; got != 1 {
		t.Errorf("occupancy = %d, want 1", got)
	}
}

func TestCancelApprovedReleasesSpot(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(1, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Approved"}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	resp, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Cancelled"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if resp.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want Cancelled", resp.Status)
	}

	stored := f.rooms.rooms[room.ID]
	if stored.CurrentOccupancy != 0 {
		t.Errorf("occupancy = %d, want 0", stored.CurrentOccupancy)
	}
	if stored.Status != entity.RoomStatusAvailable {
		t.Errorf("room status = %s, want Available", stored.Status)
	}
	if f.students.students[student.ID].RoomID != nil {
		t.Error("student still assigned to room")
	}
}

func TestCancelPendingHasNoOccupancyEffect(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(2, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	resp, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Cancelled"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if resp.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want Cancelled", resp.Status)
	}
	if got := f.rooms.rooms[room.ID].CurrentOccupancy; got != 0 {
		t.Errorf("occupancy = %d, want 0 (nothing was held)", got)
	}
}

func TestRejectApprovedReleasesSpot(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderFemale)
	room := f.addRoom(2, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusApproved)

	// Simulate the occupancy the approval recorded.
	room.AddStudent(student.ID)
	student.RoomID = &room.ID

	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Rejected"}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	if got := f.rooms.rooms[room.ID].CurrentOccupancy; got != 0 {
		t.Errorf("occupancy = %d, want 0", got)
	}
	if f.students.students[student.ID].RoomID != nil {
		t.Error("student still assigned to room")
	}
}

func TestDeleteApprovedReleasesSpot(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(1, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Approved"}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := f.svc.Delete(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := f.bookings.bookings[booking.ID]; ok {
		t.Error("booking still present")
	}
	stored := f.rooms.rooms[room.ID]
	if stored.CurrentOccupancy != 0 || stored.Status != entity.RoomStatusAvailable {
		t.Errorf("room occupancy/status = %d/%s, want 0/Available", stored.CurrentOccupancy, stored.Status)
	}
	if f.students.students[student.ID].RoomID != nil {
		t.Error("student still assigned to room")
	}
}

func TestDeletePendingKeepsOccupancy(t *testing.T) {
	f := newBookingFixture()
	student := f.addStudent(entity.GenderMale)
	room := f.addRoom(2, entity.RoomGenderMixed, 2000)
	room.CurrentOccupancy = 1
	booking := f.addBooking(student.ID, room.ID, entity.BookingStatusPending)

	if err := f.svc.Delete(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got := f.rooms.rooms[room.ID].CurrentOccupancy; got != 1 {
		t.Errorf("occupancy = %d, want 1 (pending booking held nothing)", got)
	}
}

func TestLastSpotApprovalClosesRoom(t *testing.T) {
	f := newBookingFixture()
	first := f.addStudent(entity.GenderMale)
	second := f.addStudent(entity.GenderMale)
	room := f.addRoom(1, entity.RoomGenderMixed, 2000)
	booking := f.addBooking(first.ID, room.ID, entity.BookingStatusPending)

	if _, err := f.svc.SetStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "Approved"}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	_, err := f.svc.Create(context.Background(), createReq(second.ID, room.ID, "Semester"))
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want conflict once the room filled up", err)
	}
}

func TestSetStatusBookingNotFound(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.SetStatus(context.Background(), uuid.NewString(), &request.UpdateBookingStatusRequest{Status: "Approved"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want not found", err)
	}
}
