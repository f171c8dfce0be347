//go:build unit

package ical_test

import (
	"strings"
	"testing"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra/ical"
	"stayhub/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(lines ...string) []byte {
	all := append([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Booking.com//EN",
	}, lines...)
	all = append(all, "END:VCALENDAR", "")
	return []byte(strings.Join(all, "\r\n"))
}

func TestParse(t *testing.T) {
	t.Run("timed events become busy intervals", func(t *testing.T) {
		body := feed(
			"BEGIN:VEVENT",
			"UID:1@booking.example",
			"DTSTART:20300105T140000Z",
			"DTEND:20300107T100000Z",
			"SUMMARY:CLOSED - Not available",
			"END:VEVENT",
		)

		events, err := ical.Parse(body)
		require.NoError(t, err)

		want := []reservation.Event{
			{
				Start: time.Date(2030, 1, 5, 14, 0, 0, 0, time.UTC),
				End:   time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC),
				Label: "CLOSED - Not available",
			},
		}
		if diff := cmp.Diff(want, events); diff != "" {
			t.Errorf("events mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all-day events are supported", func(t *testing.T) {
		body := feed(
			"BEGIN:VEVENT",
			"UID:2@booking.example",
			"DTSTART;VALUE=DATE:20300110",
			"DTEND;VALUE=DATE:20300112",
			"END:VEVENT",
		)

		events, err := ical.Parse(body)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC), events[0].Start)
		assert.Equal(t, time.Date(2030, 1, 12, 0, 0, 0, 0, time.UTC), events[0].End)
	})

	t.Run("events without an end are skipped, not fatal", func(t *testing.T) {
		body := feed(
			"BEGIN:VEVENT",
			"UID:3@booking.example",
			"DTSTART:20300105T140000Z",
			"END:VEVENT",
			"BEGIN:VEVENT",
			"UID:4@booking.example",
			"DTSTART:20300120T140000Z",
			"DTEND:20300122T100000Z",
			"END:VEVENT",
		)

		events, err := ical.Parse(body)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, time.Date(2030, 1, 20, 14, 0, 0, 0, time.UTC), events[0].Start)
	})

	t.Run("empty body fails the parse", func(t *testing.T) {
		_, err := ical.Parse(nil)
		assert.True(t, errs.Is(err, ical.ErrFeedParse), "got %v", err)
	})

	t.Run("garbage body fails the parse", func(t *testing.T) {
		_, err := ical.Parse([]byte("this is not a calendar"))
		assert.True(t, errs.Is(err, ical.ErrFeedParse), "got %v", err)
	})
}
