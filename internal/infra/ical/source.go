package ical

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
)

// ErrSourceUnavailable marks transport-level failures against the external
// booking calendar. Bookings fail closed on it: an unreachable feed means
// availability cannot be proven.
var ErrSourceUnavailable = errs.New("external calendar unavailable")

const maxFeedBytes = 4 << 20

// FeedCache is an optional short-TTL cache of raw feed bodies keyed by URL.
type FeedCache interface {
	Get(ctx context.Context, url string) ([]byte, bool)
	Set(ctx context.Context, url string, body []byte)
}

// ExternalSource fetches and parses the busy calendar of an apartment
// instance's third-party booking channel.
type ExternalSource struct {
	client    *http.Client
	cache     FeedCache
	userAgent string
}

// NewExternalSource builds a source with the configured fetch timeout.
// cache may be nil; every lookup then hits the network.
func NewExternalSource(cfg config.CalendarConfig, cache FeedCache) *ExternalSource {
	return &ExternalSource{
		client:    &http.Client{Timeout: cfg.FetchTimeout},
		cache:     cache,
		userAgent: cfg.UserAgent,
	}
}

// EventsFor returns the external busy intervals for an instance. Instances
// without a calendar URL have no external channel and yield no events.
func (s *ExternalSource) EventsFor(ctx context.Context, inst *apartment.Instance) ([]reservation.Event, error) {
	url := inst.CalendarURL()
	if url == nil {
		return nil, nil
	}

	body, err := s.fetch(ctx, *url)
	if err != nil {
		return nil, err
	}

	return Parse(body)
}

func (s *ExternalSource) fetch(ctx context.Context, url string) ([]byte, error) {
	if s.cache != nil {
		if body, ok := s.cache.Get(ctx, url); ok {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrSourceUnavailable)
	}
	req.Header.Set("Accept", "text/calendar")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrSourceUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Mark(fmt.Errorf("feed returned status %d", resp.StatusCode), ErrSourceUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, errs.Mark(err, ErrSourceUnavailable)
	}

	if s.cache != nil {
		s.cache.Set(ctx, url, body)
	}

	return body, nil
}
