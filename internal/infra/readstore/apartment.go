package readstore

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApartmentViewQueries interface {
	GetApartments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Apartments, error)
	GetApartmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Apartments, error)
	GetInstancesByApartmentID(ctx context.Context, db sqlc.DBTX, apartmentID uuid.UUID) ([]sqlc.ApartmentInstances, error)
}

type ApartmentReadStore struct {
	queries ApartmentViewQueries
	db      sqlc.DBTX
}

func NewApartmentReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ApartmentReadStore {
	return &ApartmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ApartmentReadStore) FindAll(ctx context.Context) ([]*queries.ApartmentView, error) {
	rows, err := r.queries.GetApartments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartments", err)
	}

	result := make([]*queries.ApartmentView, len(rows))
	for i, row := range rows {
		result[i] = rowToApartmentView(row)
	}

	return result, nil
}

func (r *ApartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ApartmentView, error) {
	row, err := r.queries.GetApartmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find apartment by ID", err)
	}

	return rowToApartmentView(row), nil
}

func (r *ApartmentReadStore) FindInstancesByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*queries.InstanceView, error) {
	rows, err := r.queries.GetInstancesByApartmentID(ctx, r.db, apartmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list apartment instances", err)
	}

	result := make([]*queries.InstanceView, len(rows))
	for i, row := range rows {
		result[i] = &queries.InstanceView{
			ID:               row.ID,
			ApartmentID:      row.ApartmentID,
			Name:             row.Name,
			MaxGuests:        row.MaxGuests,
			NightlyRateCents: row.NightlyRateCents,
			HasCalendar:      row.CalendarUrl.Valid,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}

	return result, nil
}

func rowToApartmentView(row sqlc.Apartments) *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
