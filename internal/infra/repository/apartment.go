package repository

import (
	"context"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ApartmentWriteQueries interface {
	CreateApartment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateApartmentParams) (uuid.UUID, error)
	CreateApartmentInstance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateApartmentInstanceParams) (uuid.UUID, error)
}

type ApartmentRepository struct {
	queries ApartmentWriteQueries
}

func NewApartmentRepository(queries *sqlc.Queries) *ApartmentRepository {
	return &ApartmentRepository{
		queries: queries,
	}
}

func (r *ApartmentRepository) CreateApartment(ctx context.Context, tx sqlc.DBTX, a *apartment.Apartment) (uuid.UUID, error) {
	params := sqlc.CreateApartmentParams{
		ID:          a.ID(),
		Name:        a.Name(),
		Description: a.Description(),
	}

	id, err := r.queries.CreateApartment(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create apartment", err)
	}
	return id, nil
}

func (r *ApartmentRepository) CreateInstance(ctx context.Context, tx sqlc.DBTX, inst *apartment.Instance) (uuid.UUID, error) {
	params := sqlc.CreateApartmentInstanceParams{
		ID:               inst.ID(),
		ApartmentID:      inst.ApartmentID(),
		Name:             inst.Name(),
		MaxGuests:        int32(inst.MaxGuests()),
		NightlyRateCents: inst.NightlyRateCents(),
		CalendarUrl:      pgconv.StringPtrToPgtype(inst.CalendarURL()),
	}

	id, err := r.queries.CreateApartmentInstance(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create apartment instance", err)
	}
	return id, nil
}
