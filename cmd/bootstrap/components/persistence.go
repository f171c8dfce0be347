package components

import (
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/infra/uow"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewApartmentReadStore,
			fx.As(new(queries.ApartmentReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(worker.ReservationViews)),
		),
		// Notification outbox (write side shared with the dispatcher)
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(worker.JobStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
