package reservation

import (
	"errors"
	"strings"
	"time"

	"stayhub/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrAccessDenied    = errors.New("not allowed to act on this reservation")
	ErrAlreadyRejected = errors.New("reservation is already rejected")
	ErrEmptyReason     = errors.New("rejection reason cannot be empty")
	ErrReasonTooLong   = errors.New("rejection reason is too long (max 500 characters)")
)

const MaxRejectionReasonLength = 500

// Reservation is a booking of one apartment instance by one user. The owning
// user is fixed at creation; the only state transition is the one-way flip
// to rejected, which keeps the row for auditing instead of deleting it.
type Reservation struct {
	id              uuid.UUID
	instanceID      uuid.UUID
	userID          uuid.UUID
	details         Details
	status          Status
	rejectionReason *string
	rejectedBy      *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// NewReservation captures the stay and the instance's current nightly rate.
// Availability is the caller's concern; the entity only guarantees a valid
// range and a positive bill.
func NewReservation(instanceID, userID uuid.UUID, stay DateRange, nightlyRateCents int64) (*Reservation, error) {
	details, err := NewDetails(stay, nightlyRateCents)
	if err != nil {
		return nil, err
	}
	return &Reservation{
		id:         uuid.New(),
		instanceID: instanceID,
		userID:     userID,
		details:    details,
		status:     StatusActive,
	}, nil
}

func ReconstructReservation(
	id, instanceID, userID uuid.UUID,
	details Details,
	status Status,
	rejectionReason *string,
	rejectedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		instanceID:      instanceID,
		userID:          userID,
		details:         details,
		status:          status,
		rejectionReason: rejectionReason,
		rejectedBy:      rejectedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Reject flips the reservation to its terminal state. Only the owner or a
// user with manager privilege may reject; rejecting twice fails rather than
// silently succeeding.
func (r *Reservation) Reject(actorID uuid.UUID, actorRole user.Role, reason string) error {
	if actorID != r.userID && !actorRole.CanManageReservations() {
		return ErrAccessDenied
	}
	if r.status == StatusRejected {
		return ErrAlreadyRejected
	}
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return ErrEmptyReason
	}
	if len(trimmed) > MaxRejectionReasonLength {
		return ErrReasonTooLong
	}
	r.status = StatusRejected
	r.rejectionReason = &trimmed
	actor := actorID
	r.rejectedBy = &actor
	return nil
}

func (r *Reservation) IsActive() bool   { return r.status == StatusActive }
func (r *Reservation) IsRejected() bool { return r.status == StatusRejected }

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) InstanceID() uuid.UUID    { return r.instanceID }
func (r *Reservation) UserID() uuid.UUID        { return r.userID }
func (r *Reservation) Details() Details         { return r.details }
func (r *Reservation) Status() Status           { return r.status }
func (r *Reservation) RejectionReason() *string { return r.rejectionReason }
func (r *Reservation) RejectedBy() *uuid.UUID   { return r.rejectedBy }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
