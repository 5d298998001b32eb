package utils

import "testing"

func TestCalculateTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 7, 15},
		{5, 0, 0},
	}

	for _, tc := range cases {
		if got := CalculateTotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestCalculateOffset(t *testing.T) {
	cases := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{0, 10, 0},
		{-1, 10, 0},
	}

	for _, tc := range cases {
		if got := CalculateOffset(tc.page, tc.limit); got != tc.want {
			t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt("42", 1); got != 42 {
		t.Errorf("ParseInt(42) = %d", got)
	}
	if got := ParseInt("", 7); got != 7 {
		t.Errorf("ParseInt empty = %d, want default", got)
	}
	if got := ParseInt("abc", 7); got != 7 {
		t.Errorf("ParseInt garbage = %d, want default", got)
	}
}
