// Package dates holds the calendar-day helpers shared by the task
// repository and the report generator. Days and months travel as plain
// strings ("2024-03-05", "2024-03") because that is the shape the store
// rows and queries use.
package dates

import (
	"fmt"
	"time"
)

const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

func Format(t time.Time) string {
	return t.Format(DayLayout)
}

func FormatMonth(t time.Time) string {
	return t.Format(MonthLayout)
}

func Parse(day string) (time.Time, error) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

func ParseMonth(month string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return t, nil
}

func Today() string {
	return Format(time.Now())
}

// MonthOf returns the YYYY-MM prefix of a day string.
func MonthOf(day string) string {
	if len(day) < len(MonthLayout) {
		return day
	}
	return day[:len(MonthLayout)]
}

// DaysInMonth enumerates every calendar day of the month in ascending
// order, respecting the month's actual length (and leap years).
func DaysInMonth(month string) ([]string, error) {
	first, err := ParseMonth(month)
	if err != nil {
		return nil, err
	}

	last := first.AddDate(0, 1, -1).Day()
	days := make([]string, 0, last)
	for day := 1; day <= last; day++ {
		days = append(days, fmt.Sprintf("%s-%02d", month, day))
	}
	return days, nil
}
