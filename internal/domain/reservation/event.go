package reservation

import "time"

// Event is a labeled busy interval. Local reservations and entries parsed
// from an external booking calendar both collapse into this shape, so the
// availability check can treat them uniformly.
type Event struct {
	Start time.Time
	End   time.Time
	Label string
}

func NewEvent(start, end time.Time, label string) Event {
	return Event{Start: start, End: end, Label: label}
}

// Overlaps applies the same strict half-open rule as DateRange.
func (e Event) Overlaps(rng DateRange) bool {
	return e.Start.Before(rng.To()) && rng.From().Before(e.End)
}
