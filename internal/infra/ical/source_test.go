//go:build unit

package ical_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/infra/ical"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapFeedCache struct {
	entries map[string][]byte
}

func newMapFeedCache() *mapFeedCache {
	return &mapFeedCache{entries: make(map[string][]byte)}
}

func (c *mapFeedCache) Get(_ context.Context, url string) ([]byte, bool) {
	body, ok := c.entries[url]
	return body, ok
}

func (c *mapFeedCache) Set(_ context.Context, url string, body []byte) {
	c.entries[url] = body
}

func testCalendarConfig() config.CalendarConfig {
	return config.CalendarConfig{
		FetchTimeout: 2 * time.Second,
		UserAgent:    "stayhub-test",
	}
}

func instanceWithCalendar(t *testing.T, url *string) *apartment.Instance {
	t.Helper()
	inst, err := apartment.NewInstance(uuid.New(), uuid.New(), "Room 1", 2, 9500, url)
	require.NoError(t, err)
	return inst
}

func TestExternalSourceEventsFor(t *testing.T) {
	validBody := feed(
		"BEGIN:VEVENT",
		"UID:1@booking.example",
		"DTSTART:20300105T140000Z",
		"DTEND:20300107T100000Z",
		"END:VEVENT",
	)

	t.Run("no calendar URL means no external events and no fetch", func(t *testing.T) {
		src := ical.NewExternalSource(testCalendarConfig(), nil)

		events, err := src.EventsFor(context.Background(), instanceWithCalendar(t, nil))
		require.NoError(t, err)
		assert.Nil(t, events)
	})

	t.Run("fetches and parses a live feed", func(t *testing.T) {
		var gotAccept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAccept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "text/calendar")
			_, _ = w.Write(validBody)
		}))
		defer server.Close()

		src := ical.NewExternalSource(testCalendarConfig(), nil)
		events, err := src.EventsFor(context.Background(), instanceWithCalendar(t, &server.URL))

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "text/calendar", gotAccept)
	})

	t.Run("non-2xx fails closed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		src := ical.NewExternalSource(testCalendarConfig(), nil)
		_, err := src.EventsFor(context.Background(), instanceWithCalendar(t, &server.URL))

		assert.True(t, errs.Is(err, ical.ErrSourceUnavailable), "got %v", err)
	})

	t.Run("unreachable host fails closed", func(t *testing.T) {
		url := "http://127.0.0.1:1/export.ics"
		src := ical.NewExternalSource(testCalendarConfig(), nil)

		_, err := src.EventsFor(context.Background(), instanceWithCalendar(t, &url))
		assert.True(t, errs.Is(err, ical.ErrSourceUnavailable), "got %v", err)
	})

	t.Run("unparseable feed propagates the parse failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not a calendar"))
		}))
		defer server.Close()

		src := ical.NewExternalSource(testCalendarConfig(), nil)
		_, err := src.EventsFor(context.Background(), instanceWithCalendar(t, &server.URL))

		assert.True(t, errs.Is(err, ical.ErrFeedParse), "got %v", err)
	})

	t.Run("cache hit skips the network", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			_, _ = w.Write(validBody)
		}))
		defer server.Close()

		cache := newMapFeedCache()
		src := ical.NewExternalSource(testCalendarConfig(), cache)
		inst := instanceWithCalendar(t, &server.URL)

		_, err := src.EventsFor(context.Background(), inst)
		require.NoError(t, err)
		_, err = src.EventsFor(context.Background(), inst)
		require.NoError(t, err)

		assert.Equal(t, 1, hits, "second lookup must be served from cache")
	})
}
