package queries

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrApartmentNotFound = errs.New("apartment not found")

// ApartmentDetailView bundles an apartment with its reservable instances.
type ApartmentDetailView struct {
	Apartment ApartmentView   `json:"apartment"`
	Instances []*InstanceView `json:"instances"`
}

type ApartmentQueries interface {
	List(ctx context.Context) ([]*ApartmentView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ApartmentDetailView, error)
}

type ApartmentReadStore interface {
	FindAll(ctx context.Context) ([]*ApartmentView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ApartmentView, error)
	FindInstancesByApartmentID(ctx context.Context, apartmentID uuid.UUID) ([]*InstanceView, error)
}

type apartmentQueriesImpl struct {
	readStore ApartmentReadStore
}

func NewApartmentQueries(readStore ApartmentReadStore) ApartmentQueries {
	return &apartmentQueriesImpl{readStore: readStore}
}

func (q *apartmentQueriesImpl) List(ctx context.Context) ([]*ApartmentView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *apartmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ApartmentDetailView, error) {
	apartmentView, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}

	instances, err := q.readStore.FindInstancesByApartmentID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ApartmentDetailView{
		Apartment: *apartmentView,
		Instances: instances,
	}, nil
}
