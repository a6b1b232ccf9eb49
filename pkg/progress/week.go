package progress

import (
	"time"

	wellnessTypes "github.com/kenzieke/sleepwell-backend/pkg/types/wellness"
)

const isoDateLayout = "2006-01-02"

// Window is an inclusive Sunday-to-Saturday date range. Dates are ISO
// YYYY-MM-DD strings; the fixed-width zero-padded format keeps lexical
// comparison equivalent to date comparison.
type Window struct {
	Start string
	End   string
}

// Contains reports whether the given ISO date falls inside the window.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}

func weekIndex(accountCreatedAt, now time.Time) int {
	if now.Before(accountCreatedAt) {
		return 1
	}
	days := int(now.Sub(accountCreatedAt).Hours() / 24)
	return days/7 + 1
}

// CurrentWeekNumber derives the program week from the account creation
// date: days 0-6 are week 1, days 7-13 week 2 and so on. The result is
// clamped to the twelve-week program; use ProgramComplete to tell whether
// the clamp was hit.
func CurrentWeekNumber(accountCreatedAt, now time.Time) int {
	week := weekIndex(accountCreatedAt, now)
	if week > wellnessTypes.PROGRAM_LENGTH_WEEKS {
		return wellnessTypes.PROGRAM_LENGTH_WEEKS
	}
	return week
}

// ProgramComplete reports whether the account is past the twelve-week
// program.
func ProgramComplete(accountCreatedAt, now time.Time) bool {
	return weekIndex(accountCreatedAt, now) > wellnessTypes.PROGRAM_LENGTH_WEEKS
}

// WeekWindow returns the Sunday-to-Saturday window containing now, in
// now's location.
func WeekWindow(now time.Time) Window {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return Window{
		Start: start.Format(isoDateLayout),
		End:   start.AddDate(0, 0, 6).Format(isoDateLayout),
	}
}

// PreviousWeekWindow returns the window directly before WeekWindow(now).
func PreviousWeekWindow(now time.Time) Window {
	return WeekWindow(now.AddDate(0, 0, -7))
}
