package repository

import (
	"context"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	RejectReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectReservationParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries *sqlc.Queries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create relies on the exclusion constraint over the stay range: an
// overlapping active reservation surfaces here as KindConflict.
func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	resultID, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return resultID, nil
}

// Reject persists a rejection already applied to the entity. The guarded
// UPDATE only touches active rows, so a concurrent rejection shows up as
// zero affected rows.
func (r *ReservationRepository) Reject(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	params := converter.RejectionToInfra(res)

	affected, err := r.queries.RejectReservation(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to reject reservation", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation already rejected or missing", nil, infra.KindConflict)
	}

	return nil
}
