package types

import (
	"fmt"
	"time"
)

// MonthWindow is a half-open [Start, End) interval covering one calendar month.
// Charge existence checks and the invoiced-this-month bucket are all evaluated
// against the same window so bucket membership stays mutually exclusive.
type MonthWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentMonthWindow returns the calendar month window containing t, in UTC.
func CurrentMonthWindow(t time.Time) MonthWindow {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthWindow{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

// Contains reports whether ts falls inside the window.
func (w MonthWindow) Contains(ts time.Time) bool {
	ts = ts.UTC()
	return !ts.Before(w.Start) && ts.Before(w.End)
}

// ReferencePeriodKey formats the display month key ("MM/YYYY") a snapshot is
// filed under. Historical snapshots without a period FK are matched by this key
// plus their date range.
func ReferencePeriodKey(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d/%04d", int(t.Month()), t.Year())
}

// DayOfMonth returns t's day of month in UTC.
func DayOfMonth(t time.Time) int {
	return t.UTC().Day()
}
