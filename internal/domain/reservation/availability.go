package reservation

// FreeFor reports whether the requested stay range conflicts with none of
// the busy intervals. It is a pure function: callers assemble the busy set
// (active local reservations plus externally synced calendar events) before
// asking; no I/O happens here. This in-memory answer is an early rejection
// only — the exclusion constraint on the reservations table is the
// authoritative conflict check under concurrency.
func FreeFor(busy []Event, requested DateRange) bool {
	for _, ev := range busy {
		if ev.Overlaps(requested) {
			return false
		}
	}
	return true
}

// BusyEvents projects the non-rejected reservations of an instance into
// events. Rejected reservations stay in storage for the audit trail but
// never block a new stay.
func BusyEvents(reservations []*Reservation) []Event {
	events := make([]Event, 0, len(reservations))
	for _, res := range reservations {
		if res.IsRejected() {
			continue
		}
		stay := res.Details().Stay()
		events = append(events, NewEvent(stay.From(), stay.To(), "reservation "+res.ID().String()))
	}
	return events
}
