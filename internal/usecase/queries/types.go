package queries

import (
	"time"

	"github.com/google/uuid"
)

// ApartmentView represents read-optimized apartment data
type ApartmentView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InstanceView represents read-optimized apartment instance data
type InstanceView struct {
	ID               uuid.UUID `json:"id"`
	ApartmentID      uuid.UUID `json:"apartment_id"`
	Name             string    `json:"name"`
	MaxGuests        int32     `json:"max_guests"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	HasCalendar      bool      `json:"has_calendar"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReservationView represents the full read model of a single reservation
type ReservationView struct {
	ID               uuid.UUID  `json:"id"`
	InstanceID       uuid.UUID  `json:"instance_id"`
	InstanceName     string     `json:"instance_name"`
	ApartmentID      uuid.UUID  `json:"apartment_id"`
	ApartmentName    string     `json:"apartment_name"`
	UserID           uuid.UUID  `json:"user_id"`
	UserEmail        string     `json:"user_email"`
	ReservedFrom     time.Time  `json:"reserved_from"`
	ReservedTo       time.Time  `json:"reserved_to"`
	NightlyRateCents int64      `json:"nightly_rate_cents"`
	TotalPriceCents  int64      `json:"total_price_cents"`
	Status           string     `json:"status"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	RejectedBy       *uuid.UUID `json:"rejected_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ReservationListItem is the compact row for a user's own listing
type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	InstanceID      uuid.UUID `json:"instance_id"`
	InstanceName    string    `json:"instance_name"`
	ApartmentName   string    `json:"apartment_name"`
	ReservedFrom    time.Time `json:"reserved_from"`
	ReservedTo      time.Time `json:"reserved_to"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// ManagerReservationListItem adds guest identity for the manager-wide listing
type ManagerReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	InstanceID      uuid.UUID `json:"instance_id"`
	InstanceName    string    `json:"instance_name"`
	ApartmentName   string    `json:"apartment_name"`
	UserID          uuid.UUID `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	ReservedFrom    time.Time `json:"reserved_from"`
	ReservedTo      time.Time `json:"reserved_to"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	IsActive      bool      `json:"is_active"`
}
