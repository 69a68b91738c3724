package club

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	testCases := []struct {
		name string
		date string
		want string
	}{
		{name: "monday is its own week start", date: "2025-06-16", want: "2025-06-16"},
		{name: "wednesday", date: "2025-06-18", want: "2025-06-16"},
		{name: "sunday belongs to the previous monday", date: "2025-06-22", want: "2025-06-16"},
		{name: "week start crosses a month boundary", date: "2025-07-02", want: "2025-06-30"},
		{name: "week start crosses a year boundary", date: "2025-01-01", want: "2024-12-30"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParseDate(tc.date).StartOfWeek()
			if got.String() != tc.want {
				t.Errorf("StartOfWeek(%s) = %s, want %s", tc.date, got, tc.want)
			}
			if got.Weekday() != time.Monday {
				t.Errorf("StartOfWeek(%s) = %s is not a Monday", tc.date, got)
			}
		})
	}
}

func TestISOWeekRollover(t *testing.T) {
	testCases := []struct {
		date     string
		wantYear int
		wantWeek int
	}{
		{"2024-12-27", 2024, 52},
		{"2024-12-30", 2025, 1}, // Monday of week 1 falls in the prior year
		{"2025-01-01", 2025, 1},
		{"2025-01-06", 2025, 2},
		{"2021-01-01", 2020, 53}, // 2020 had 53 ISO weeks
	}
	for _, tc := range testCases {
		year, week := MustParseDate(tc.date).ISOWeek()
		if year != tc.wantYear || week != tc.wantWeek {
			t.Errorf("ISOWeek(%s) = %d-W%02d, want %d-W%02d", tc.date, year, week, tc.wantYear, tc.wantWeek)
		}
	}
}

func TestSameISOWeek(t *testing.T) {
	a := MustParseDate("2024-12-30")
	b := MustParseDate("2025-01-05")
	if !a.SameISOWeek(b) {
		t.Errorf("%s and %s should share ISO week 2025-W01", a, b)
	}
	c := MustParseDate("2024-12-29")
	if a.SameISOWeek(c) {
		t.Errorf("%s and %s should not share an ISO week", a, c)
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-06-18", want: "2025-06-18"},
		{in: "2025-6-1", want: "2025-06-01"},
		{in: "2025-06-18T09:30:00Z", want: "2025-06-18"},
		{in: "18/06/2025", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
