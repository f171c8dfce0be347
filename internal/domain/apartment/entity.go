package apartment

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrNameTooLong        = errors.New("name is too long (max 255 characters)")
	ErrNonPositiveRate    = errors.New("nightly rate must be positive")
	ErrNonPositiveGuests  = errors.New("max guests must be positive")
	ErrInvalidCalendarURL = errors.New("booking calendar URL must be absolute http(s)")
)

const MaxNameLength = 255

// Apartment is a bookable property; its physically reservable units are
// Instances.
type Apartment struct {
	id          uuid.UUID
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewApartment(id uuid.UUID, name, description string) (*Apartment, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Apartment{
		id:          id,
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
	}, nil
}

func (a *Apartment) ID() uuid.UUID        { return a.id }
func (a *Apartment) Name() string         { return a.name }
func (a *Apartment) Description() string  { return a.description }
func (a *Apartment) CreatedAt() time.Time { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time { return a.updatedAt }

// Instance is one reservable unit (a room) within an Apartment. An instance
// optionally carries the URL of an external booking calendar (iCal feed)
// whose busy periods count against availability.
type Instance struct {
	id               uuid.UUID
	apartmentID      uuid.UUID
	name             string
	maxGuests        int
	nightlyRateCents int64
	calendarURL      *string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewInstance(id, apartmentID uuid.UUID, name string, maxGuests int, nightlyRateCents int64, calendarURL *string) (*Instance, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if maxGuests <= 0 {
		return nil, ErrNonPositiveGuests
	}
	if nightlyRateCents <= 0 {
		return nil, ErrNonPositiveRate
	}
	normalizedURL, err := normalizeCalendarURL(calendarURL)
	if err != nil {
		return nil, err
	}
	return &Instance{
		id:               id,
		apartmentID:      apartmentID,
		name:             strings.TrimSpace(name),
		maxGuests:        maxGuests,
		nightlyRateCents: nightlyRateCents,
		calendarURL:      normalizedURL,
	}, nil
}

func ReconstructInstance(
	id, apartmentID uuid.UUID,
	name string,
	maxGuests int,
	nightlyRateCents int64,
	calendarURL *string,
	createdAt, updatedAt time.Time,
) *Instance {
	return &Instance{
		id:               id,
		apartmentID:      apartmentID,
		name:             name,
		maxGuests:        maxGuests,
		nightlyRateCents: nightlyRateCents,
		calendarURL:      calendarURL,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (i *Instance) ID() uuid.UUID           { return i.id }
func (i *Instance) ApartmentID() uuid.UUID  { return i.apartmentID }
func (i *Instance) Name() string            { return i.name }
func (i *Instance) MaxGuests() int          { return i.maxGuests }
func (i *Instance) NightlyRateCents() int64 { return i.nightlyRateCents }
func (i *Instance) CreatedAt() time.Time    { return i.createdAt }
func (i *Instance) UpdatedAt() time.Time    { return i.updatedAt }

// CalendarURL returns the external booking calendar URL, or nil when the
// instance has no third-party channel.
func (i *Instance) CalendarURL() *string { return i.calendarURL }

func (i *Instance) HasCalendar() bool { return i.calendarURL != nil }

// FitsParty reports whether the requested party size can stay in this unit.
func (i *Instance) FitsParty(guests int) bool {
	return guests > 0 && guests <= i.maxGuests
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func normalizeCalendarURL(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, ErrInvalidCalendarURL
	}
	if !parsed.IsAbs() || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidCalendarURL
	}
	return &trimmed, nil
}
