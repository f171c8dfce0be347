package ical

import (
	"bytes"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/pkg/errs"

	ics "github.com/arran4/golang-ical"
)

// ErrFeedParse marks feed-level syntax failures. A busy interval can never
// be derived from an unparseable feed, so callers must treat this as
// "availability unknown" and refuse the booking.
var ErrFeedParse = errs.New("calendar feed parse failed")

var errEmptyFeed = errors.New("empty feed body")

// Parse extracts busy intervals from an iCal feed. Individual VEVENTs
// without usable DTSTART/DTEND are skipped with a warning; a malformed
// feed as a whole fails the parse.
func Parse(body []byte) ([]reservation.Event, error) {
	if len(body) == 0 {
		return nil, errs.Mark(errEmptyFeed, ErrFeedParse)
	}

	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(err, ErrFeedParse)
	}

	vevents := cal.Events()
	events := make([]reservation.Event, 0, len(vevents))
	for _, ve := range vevents {
		start, err := eventStart(ve)
		if err != nil {
			slog.Warn("skipping calendar event without usable start", "error", err.Error())
			continue
		}
		end, err := eventEnd(ve)
		if err != nil {
			slog.Warn("skipping calendar event without usable end", "error", err.Error())
			continue
		}
		if !end.After(start) {
			slog.Warn("skipping calendar event with non-positive duration",
				"start", start, "end", end)
			continue
		}

		label := ""
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			label = p.Value
		}

		events = append(events, reservation.NewEvent(start.UTC(), end.UTC(), label))
	}

	return events, nil
}

// Booking feeds mix DATE-TIME and all-day DATE values, so fall back to the
// all-day accessors when the timed ones fail.
func eventStart(ve *ics.VEvent) (time.Time, error) {
	if t, err := ve.GetStartAt(); err == nil {
		return t, nil
	}
	return ve.GetAllDayStartAt()
}

func eventEnd(ve *ics.VEvent) (time.Time, error) {
	if t, err := ve.GetEndAt(); err == nil {
		return t, nil
	}
	return ve.GetAllDayEndAt()
}
