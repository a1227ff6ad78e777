package civil

import "testing"

func TestEpochDaysRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int64
		days    int64
	}{
		{name: "epoch", y: 1970, m: 1, d: 1, days: 0},
		{name: "day before epoch", y: 1969, m: 12, d: 31, days: -1},
		{name: "y2k", y: 2000, m: 3, d: 1, days: 11017},
		{name: "modern date", y: 2023, m: 3, d: 12, days: 19428},
		{name: "far past", y: 1602, m: 10, d: 15, days: -134122},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := EpochDaysFromCivil(tc.y, tc.m, tc.d)
			if got != tc.days {
				t.Fatalf("EpochDaysFromCivil(%d,%d,%d) = %d, want %d", tc.y, tc.m, tc.d, got, tc.days)
			}
			y, m, d := CivilFromEpochDays(got)
			if y != tc.y || m != tc.m || d != tc.d {
				t.Fatalf("CivilFromEpochDays(%d) = %d-%d-%d, want %d-%d-%d", got, y, m, d, tc.y, tc.m, tc.d)
			}
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		name    string
		y, m, d int64
		dow     int64
	}{
		{name: "epoch thursday", y: 1970, m: 1, d: 1, dow: 4},
		{name: "sunday", y: 2023, m: 3, d: 12, dow: 0},
		{name: "tuesday", y: 2023, m: 8, d: 1, dow: 2},
		{name: "pre-epoch saturday", y: 1969, m: 12, d: 27, dow: 6},
	}

	for _, tc := range tests {
		if got := DayOfWeek(tc.y, tc.m, tc.d); got != tc.dow {
			t.Errorf("%s: DayOfWeek(%d,%d,%d) = %d, want %d", tc.name, tc.y, tc.m, tc.d, got, tc.dow)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		y, m, want int64
	}{
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2023, 1, 31},
		{2023, 4, 30},
	}

	for _, tc := range tests {
		if got := DaysInMonth(tc.y, tc.m); got != tc.want {
			t.Errorf("DaysInMonth(%d,%d) = %d, want %d", tc.y, tc.m, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := &Time{SSE: 100, US: 5}
	b := &Time{SSE: 100, US: 9}
	c := &Time{SSE: 200}

	if Compare(a, b) != -1 || Compare(b, a) != 1 {
		t.Fatalf("microsecond tiebreak broken")
	}
	if Compare(a, a) != 0 {
		t.Fatalf("equal instants should compare 0")
	}
	if Compare(c, a) != 1 {
		t.Fatalf("epoch ordering broken")
	}
}
