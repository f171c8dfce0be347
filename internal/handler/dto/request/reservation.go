package request

import (
	"time"

	"stayhub/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	InstanceID uuid.UUID `json:"instance_id" binding:"required"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required"`
	Guests     int       `json:"guests" binding:"required,min=1"`
}

func (r CreateReservationRequest) ToDomain() (reservation.DateRange, error) {
	return reservation.NewDateRange(r.CheckIn, r.CheckOut)
}

type RejectReservationRequest struct {
	Reason string `json:"reason" binding:"required"`
}
