package progress

import (
	"testing"
	"time"
)

func TestCurrentWeekNumber(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"same day", now, 1},
		{"six days in", now.AddDate(0, 0, -6), 1},
		{"seven days in", now.AddDate(0, 0, -7), 2},
		{"fourteen days in", now.AddDate(0, 0, -14), 3},
		{"created in the future", now.AddDate(0, 0, 3), 1},
		{"end of program", now.AddDate(0, 0, -11*7), 12},
		{"past end of program clamps", now.AddDate(0, 0, -20*7), 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CurrentWeekNumber(test.createdAt, now); got != test.want {
				t.Errorf("CurrentWeekNumber = %d, want %d", got, test.want)
			}
		})
	}
}

func TestProgramComplete(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	if ProgramComplete(now.AddDate(0, 0, -11*7), now) {
		t.Error("week 12 should not be complete yet")
	}
	if !ProgramComplete(now.AddDate(0, 0, -12*7), now) {
		t.Error("week 13 should report the program complete")
	}
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart string
		wantEnd   string
	}{
		{
			// 2024-06-12 is a Wednesday
			name:      "mid week",
			now:       time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC),
			wantStart: "2024-06-09",
			wantEnd:   "2024-06-15",
		},
		{
			// Sunday starts its own window
			name:      "sunday",
			now:       time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			wantStart: "2024-06-09",
			wantEnd:   "2024-06-15",
		},
		{
			name:      "saturday ends the window",
			now:       time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
			wantStart: "2024-06-09",
			wantEnd:   "2024-06-15",
		},
		{
			name:      "month boundary",
			now:       time.Date(2024, 7, 2, 8, 0, 0, 0, time.UTC),
			wantStart: "2024-06-30",
			wantEnd:   "2024-07-06",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := WeekWindow(test.now)
			if w.Start != test.wantStart || w.End != test.wantEnd {
				t.Errorf("WeekWindow = [%s, %s], want [%s, %s]", w.Start, w.End, test.wantStart, test.wantEnd)
			}
		})
	}
}

func TestPreviousWeekWindow(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	w := PreviousWeekWindow(now)
	if w.Start != "2024-06-02" || w.End != "2024-06-08" {
		t.Errorf("PreviousWeekWindow = [%s, %s], want [2024-06-02, 2024-06-08]", w.Start, w.End)
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: "2024-06-09", End: "2024-06-15"}

	tests := []struct {
		date string
		want bool
	}{
		{"2024-06-09", true},
		{"2024-06-12", true},
		{"2024-06-15", true},
		{"2024-06-08", false},
		{"2024-06-16", false},
	}

	for _, test := range tests {
		if got := w.Contains(test.date); got != test.want {
			t.Errorf("Contains(%q) = %v, want %v", test.date, got, test.want)
		}
	}
}
