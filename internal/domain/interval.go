package domain

import (
	"math"
	"time"
)

// DateInterval is an inclusive date range: a stay, a maintenance window or a
// pricing validity period. Construct through NewDateInterval so Start < End
// holds; treat values as immutable afterwards.
type DateInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateInterval validates and builds an interval.
func NewDateInterval(start, end time.Time) (DateInterval, error) {
	if start.IsZero() || end.IsZero() {
		return DateInterval{}, NewValidationError("interval", "start and end dates are required")
	}
	if !start.Before(end) {
		return DateInterval{}, NewValidationError("interval", "start date must be before end date")
	}
	return DateInterval{Start: start, End: end}, nil
}

// Overlaps reports whether the two intervals share at least one instant.
// Boundaries are inclusive: touching intervals conflict, which matches the
// booking policy that a checkout day collides with a same-day checkin.
func (i DateInterval) Overlaps(other DateInterval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// OverlapsAny reports whether the interval overlaps any of the given ones.
func (i DateInterval) OverlapsAny(others []DateInterval) bool {
	for _, other := range others {
		if i.Overlaps(other) {
			return true
		}
	}
	return false
}

// Contains reports whether t falls inside the interval, boundaries included.
func (i DateInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Nights returns the stay length in nights, rounding partial days up.
func (i DateInterval) Nights() int {
	return int(math.Ceil(i.End.Sub(i.Start).Hours() / 24))
}

func (i DateInterval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}
