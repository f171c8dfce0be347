package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type InstanceSnapshot struct {
	ID               uuid.UUID
	ApartmentID      uuid.UUID
	Name             string
	MaxGuests        int
	NightlyRateCents int64
	CalendarURL      *string
}

type ReservationSnapshot struct {
	ID               uuid.UUID
	InstanceID       uuid.UUID
	UserID           uuid.UUID
	Status           string
	ReservedFrom     time.Time
	ReservedTo       time.Time
	NightlyRateCents int64
	TotalPriceCents  int64
	RejectionReason  *string
	RejectedBy       *uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
