package domain

import (
	"fmt"
	"time"
)

// monthLayout is the wire format for travel months.
const monthLayout = "2006-01"

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// DateWindow is a candidate departure/return date pair considered for pricing.
// ReturnDate is always departure + duration - 1 days, clamped to the last day
// of the target month.
type DateWindow struct {
	// DepartureDate is the window start in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the window end in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`
}

// DaysInMonth returns the number of days in a YYYY-MM month.
func DaysInMonth(month string) (int, error) {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return 0, fmt.Errorf("%w: month must be in YYYY-MM format, got %q", ErrInvalidRequest, month)
	}
	// Day zero of the following month is the last day of this one.
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Day(), nil
}

// GenerateWindows produces up to count non-overlapping candidate date windows
// spanning the given YYYY-MM month for a trip of durationDays days.
//
// Start days follow the deterministic spacing formula i*maxStart/count + 1
// with maxStart = daysInMonth - durationDays, so identical inputs always
// yield identical windows. When the month is too short to spread count
// windows, fewer windows are returned; a duration longer than the month
// yields none. Neither case is an error.
func GenerateWindows(month string, durationDays, count int) ([]DateWindow, error) {
	if durationDays < 1 {
		return nil, fmt.Errorf("%w: durationDays must be positive, got %d", ErrInvalidRequest, durationDays)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidRequest, count)
	}

	days, err := DaysInMonth(month)
	if err != nil {
		return nil, err
	}
	if durationDays > days {
		return nil, nil
	}

	maxStart := days - durationDays
	if maxStart < 1 {
		// The trip fills the month: a single whole-month window.
		return []DateWindow{newWindow(month, 1, durationDays, days)}, nil
	}

	windows := make([]DateWindow, 0, count)
	for i := 0; i < count; i++ {
		startDay := i*maxStart/count + 1
		windows = append(windows, newWindow(month, startDay, durationDays, days))
	}
	return windows, nil
}

// newWindow builds a window starting at startDay, clamping the return day to
// the last day of the month.
func newWindow(month string, startDay, durationDays, daysInMonth int) DateWindow {
	returnDay := startDay + durationDays - 1
	if returnDay > daysInMonth {
		returnDay = daysInMonth
	}
	return DateWindow{
		DepartureDate: fmt.Sprintf("%s-%02d", month, startDay),
		ReturnDate:    fmt.Sprintf("%s-%02d", month, returnDay),
	}
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, date)
	}
	return t, nil
}
