package entity

import "testing"

func TestDurationMonths(t *testing.T) {
	cases := []struct {
		duration BookingDuration
		months   int
	}{
		{DurationSemester, 6},
		{DurationAcademicYear, 10},
		{DurationSummer, 3},
		{DurationCustom, 6},
	}

	for _, tc := range cases {
		if got := tc.duration.Months(); got != tc.months {
			t.Errorf("%s.Months() = %d, want %d", tc.duration, got, tc.months)
		}
	}
}

func TestSetAmounts(t *testing.T) {
	booking := &Booking{Duration: DurationSemester}
	booking.SetAmounts(5000)

	if booking.Rent != 5000 {
		t.Errorf("rent = %v, want 5000", booking.Rent)
	}
	if booking.SecurityDeposit != 5000 {
		t.Errorf("deposit = %v, want one month of rent", booking.SecurityDeposit)
	}
	if booking.TotalAmount != 35000 {
		t.Errorf("total = %v, want 35000", booking.TotalAmount)
	}
}

func TestSetAmountsAcademicYear(t *testing.T) {
	booking := &Booking{Duration: DurationAcademicYear}
	booking.SetAmounts(1200)

	if booking.TotalAmount != 1200*10+1200 {
		t.Errorf("total = %v, want %v", booking.TotalAmount, 1200*10+1200)
	}
}

func TestIsLive(t *testing.T) {
	live := []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusActive}
	closed := []BookingStatus{BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled}

	for _, status := range live {
		b := &Booking{Status: status}
		if !b.IsLive() {
			t.Errorf("%s: IsLive = false, want true", status)
		}
	}
	for _, status := range closed {
		b := &Booking{Status: status}
		if b.IsLive() {
			t.Errorf("%s: IsLive = true, want false", status)
		}
	}
}

func TestHoldsOccupancy(t *testing.T) {
	holding := []BookingStatus{BookingStatusApproved, BookingStatusActive}
	notHolding := []BookingStatus{BookingStatusPending, BookingStatusRejected, BookingStatusCompleted, BookingStatusCancelled}

	for _, status := range holding {
		b := &Booking{Status: status}
		if !b.HoldsOccupancy() {
			t.Errorf("%s: HoldsOccupancy = false, want true", status)
		}
	}
	for _, status := range notHolding {
		b := &Booking{Status: status}
		if b.HoldsOccupancy() {
			t.Errorf("%s: HoldsOccupancy = true, want false", status)
		}
	}
}
