package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2030, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeOverlaps(t *testing.T) {
	base := DateRange{Start: day(10), End: day(14)}

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", DateRange{Start: day(10), End: day(14)}, true},
		{"contained", DateRange{Start: day(11), End: day(13)}, true},
		{"straddles start", DateRange{Start: day(8), End: day(11)}, true},
		{"straddles end", DateRange{Start: day(13), End: day(16)}, true},
		{"ends at start", DateRange{Start: day(6), End: day(10)}, false},
		{"starts at end", DateRange{Start: day(14), End: day(18)}, false},
		{"disjoint before", DateRange{Start: day(1), End: day(5)}, false},
		{"disjoint after", DateRange{Start: day(20), End: day(25)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 4, DateRange{Start: day(10), End: day(14)}.Days())
	assert.Equal(t, 1, DateRange{Start: day(10), End: day(11)}.Days())
	assert.Equal(t, 0, DateRange{Start: day(10), End: day(10)}.Days())

	// Partial days round up.
	partial := DateRange{
		Start: day(10),
		End:   day(13).Add(6 * time.Hour),
	}
	assert.Equal(t, 4, partial.Days())
}

func TestDateRangeContains(t *testing.T) {
	rng := DateRange{Start: day(10), End: day(14)}

	assert.True(t, rng.Contains(day(10)))
	assert.True(t, rng.Contains(day(13)))
	assert.False(t, rng.Contains(day(14)), "checkout day is outside the stay")
	assert.False(t, rng.Contains(day(9)))
}

func TestNewDateRangeNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("EET", 2*60*60)
	rng := NewDateRange(
		time.Date(2030, 5, 10, 15, 30, 0, 0, loc),
		time.Date(2030, 5, 14, 9, 0, 0, 0, loc),
	)
	assert.Equal(t, day(10), rng.Start)
	assert.Equal(t, day(14), rng.End)
}

func TestDateRangeShift(t *testing.T) {
	rng := DateRange{Start: day(10), End: day(14)}
	shifted := rng.Shift(7)
	assert.Equal(t, day(17), shifted.Start)
	assert.Equal(t, day(21), shifted.End)
	assert.Equal(t, rng.Days(), shifted.Days())
}
