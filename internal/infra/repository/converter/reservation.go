package converter

import (
	"stayhub/internal/domain/reservation"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) sqlc.CreateReservationParams {
	stay := res.Details().Stay()

	return sqlc.CreateReservationParams{
		ID:               res.ID(),
		InstanceID:       res.InstanceID(),
		UserID:           res.UserID(),
		ReservedFrom:     pgconv.TimeToPgtype(stay.From()),
		ReservedTo:       pgconv.TimeToPgtype(stay.To()),
		NightlyRateCents: res.Details().NightlyRate().Cents(),
		TotalPriceCents:  res.Details().TotalPrice().Cents(),
		Status:           res.Status().String(),
	}
}

func RejectionToInfra(res *reservation.Reservation) sqlc.RejectReservationParams {
	return sqlc.RejectReservationParams{
		ID:              res.ID(),
		RejectionReason: pgconv.StringPtrToPgtype(res.RejectionReason()),
		RejectedBy:      pgconv.UUIDPtrToPgtype(res.RejectedBy()),
	}
}
