package reservation

import "time"

// Nights counts whole calendar nights between the date portions of the stay
// range. Check-in at 14:00 and check-out at 10:00 the next day is still one
// night.
func Nights(stay DateRange) int64 {
	from := dateOf(stay.From())
	to := dateOf(stay.To())
	return int64(to.Sub(from).Hours() / 24)
}

// TotalPriceCents computes nightlyRateCents * nights using integer cents
// only; no floating point touches money. A non-positive night count is never
// billed and fails with ErrInvalidRange.
func TotalPriceCents(nightlyRateCents int64, stay DateRange) (int64, error) {
	nights := Nights(stay)
	if nights <= 0 {
		return 0, ErrInvalidRange
	}
	return nightlyRateCents * nights, nil
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
