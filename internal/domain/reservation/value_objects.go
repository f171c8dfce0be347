package reservation

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

// DateRange is the half-open stay interval [from, to). The end instant is
// excluded, so a stay ending at the exact moment another begins does not
// conflict with it. Values keep time-of-day for exact overlap math even
// though billing only looks at the date portions.
type DateRange struct {
	from time.Time
	to   time.Time
}

func NewDateRange(from, to time.Time) (DateRange, error) {
	if !to.After(from) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{from: from.UTC(), to: to.UTC()}, nil
}

func (r DateRange) From() time.Time { return r.from }
func (r DateRange) To() time.Time   { return r.to }

// Overlaps applies the strict half-open rule: [a1,a2) and [b1,b2) overlap
// iff a1 < b2 && b1 < a2.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.from.Before(other.to) && other.from.Before(r.to)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

// Details is the embedded booking value: the stay range plus the nightly
// rate captured when the reservation was made. The captured rate is never
// recomputed, so later tariff changes cannot move an existing bill.
type Details struct {
	stay        DateRange
	nightlyRate Money
	totalPrice  Money
}

func NewDetails(stay DateRange, nightlyRateCents int64) (Details, error) {
	nightly, err := NewMoney(nightlyRateCents)
	if err != nil {
		return Details{}, err
	}
	totalCents, err := TotalPriceCents(nightlyRateCents, stay)
	if err != nil {
		return Details{}, err
	}
	total, err := NewMoney(totalCents)
	if err != nil {
		return Details{}, err
	}
	return Details{stay: stay, nightlyRate: nightly, totalPrice: total}, nil
}

func ReconstructDetails(stay DateRange, nightlyRate, totalPrice Money) Details {
	return Details{stay: stay, nightlyRate: nightlyRate, totalPrice: totalPrice}
}

func (d Details) Stay() DateRange    { return d.stay }
func (d Details) NightlyRate() Money { return d.nightlyRate }
func (d Details) TotalPrice() Money  { return d.totalPrice }
