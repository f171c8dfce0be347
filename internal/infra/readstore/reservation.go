package readstore

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetReservationsByUserIDFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserIDFirstPageParams) ([]sqlc.GetReservationsByUserIDFirstPageRow, error)
	GetReservationsByUserIDKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsByUserIDKeysetParams) ([]sqlc.GetReservationsByUserIDKeysetRow, error)
	GetReservationsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.GetReservationsFirstPageRow, error)
	GetReservationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationsKeysetParams) ([]sqlc.GetReservationsKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return rowToReservationView(row), nil
}

func (r *ReservationReadStore) FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.GetReservationsByUserIDFirstPageParams{
		UserID: userID,
		Limit:  limit,
	}

	rows, err := r.queries.GetReservationsByUserIDFirstPage(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			InstanceID:      row.InstanceID,
			InstanceName:    row.InstanceName,
			ApartmentName:   row.ApartmentName,
			ReservedFrom:    pgconv.TimeFromPgtype(row.ReservedFrom),
			ReservedTo:      pgconv.TimeFromPgtype(row.ReservedTo),
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *ReservationReadStore) FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	params := sqlc.GetReservationsByUserIDKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}

	rows, err := r.queries.GetReservationsByUserIDKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			InstanceID:      row.InstanceID,
			InstanceName:    row.InstanceName,
			ApartmentName:   row.ApartmentName,
			ReservedFrom:    pgconv.TimeFromPgtype(row.ReservedFrom),
			ReservedTo:      pgconv.TimeFromPgtype(row.ReservedTo),
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *ReservationReadStore) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.ManagerReservationListItem, error) {
	rows, err := r.queries.GetReservationsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all reservations first page", err)
	}

	result := make([]*queries.ManagerReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ManagerReservationListItem{
			ID:              row.ID,
			InstanceID:      row.InstanceID,
			InstanceName:    row.InstanceName,
			ApartmentName:   row.ApartmentName,
			UserID:          row.UserID,
			UserEmail:       row.UserEmail,
			ReservedFrom:    pgconv.TimeFromPgtype(row.ReservedFrom),
			ReservedTo:      pgconv.TimeFromPgtype(row.ReservedTo),
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func (r *ReservationReadStore) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ManagerReservationListItem, error) {
	params := sqlc.GetReservationsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}

	rows, err := r.queries.GetReservationsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all reservations keyset", err)
	}

	result := make([]*queries.ManagerReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ManagerReservationListItem{
			ID:              row.ID,
			InstanceID:      row.InstanceID,
			InstanceName:    row.InstanceName,
			ApartmentName:   row.ApartmentName,
			UserID:          row.UserID,
			UserEmail:       row.UserEmail,
			ReservedFrom:    pgconv.TimeFromPgtype(row.ReservedFrom),
			ReservedTo:      pgconv.TimeFromPgtype(row.ReservedTo),
			TotalPriceCents: row.TotalPriceCents,
			Status:          row.Status,
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}

	return result, nil
}

func rowToReservationView(row sqlc.GetReservationByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:               row.ID,
		InstanceID:       row.InstanceID,
		InstanceName:     row.InstanceName,
		ApartmentID:      row.ApartmentID,
		ApartmentName:    row.ApartmentName,
		UserID:           row.UserID,
		UserEmail:        row.UserEmail,
		ReservedFrom:     pgconv.TimeFromPgtype(row.ReservedFrom),
		ReservedTo:       pgconv.TimeFromPgtype(row.ReservedTo),
		NightlyRateCents: row.NightlyRateCents,
		TotalPriceCents:  row.TotalPriceCents,
		Status:           row.Status,
		RejectionReason:  pgconv.StringPtrFromPgtype(row.RejectionReason),
		RejectedBy:       pgconv.UUIDPtrFromPgtype(row.RejectedBy),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
