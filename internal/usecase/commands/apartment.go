package commands

import (
	"context"

	"stayhub/internal/domain/apartment"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrApartmentValidation = errs.New("apartment validation failed")

type ApartmentCommands interface {
	CreateApartment(ctx context.Context, req reqdto.CreateApartmentRequest) (uuid.UUID, error)
	CreateInstance(ctx context.Context, apartmentID uuid.UUID, req reqdto.CreateInstanceRequest) (uuid.UUID, error)
}

type apartmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewApartmentCommands(uow shared.UnitOfWork) ApartmentCommands {
	return &apartmentCommandsImpl{uow: uow}
}

func (a *apartmentCommandsImpl) CreateApartment(ctx context.Context, req reqdto.CreateApartmentRequest) (uuid.UUID, error) {
	entity, err := apartment.NewApartment(uuid.New(), req.Name, req.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrApartmentValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Apartments().CreateApartment(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (a *apartmentCommandsImpl) CreateInstance(ctx context.Context, apartmentID uuid.UUID, req reqdto.CreateInstanceRequest) (uuid.UUID, error) {
	entity, err := apartment.NewInstance(uuid.New(), apartmentID, req.Name, req.MaxGuests, req.NightlyRateCents, req.CalendarURL)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrApartmentValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Apartments().CreateInstance(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrApartmentNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}
