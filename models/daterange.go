package models

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// DateRange is a half-open interval [Start, End): the start date is part of
// the stay, the end date is the checkout day and stays free for the next
// booking.
type DateRange struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewDateRange normalizes both endpoints to midnight UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Midnight(start), End: Midnight(end)}
}

// Midnight truncates t to the start of its day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days returns the number of nights covered, rounding partial days up.
func (r DateRange) Days() int {
	d := r.End.Sub(r.Start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Overlaps reports whether two half-open ranges intersect.
// [A, B) and [C, D) overlap iff A < D && C < B.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains reports whether date falls within [Start, End).
func (r DateRange) Contains(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(r.Start) && d.Before(r.End)
}

// Shift returns the range moved by the given number of days, same duration.
func (r DateRange) Shift(days int) DateRange {
	return DateRange{Start: r.Start.AddDate(0, 0, days), End: r.End.AddDate(0, 0, days)}
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + ".." + r.End.Format(DateLayout)
}
