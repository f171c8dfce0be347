package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/domain/reservation"
	sqlc "stayhub/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Apartments() ApartmentRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Tokens() TokenRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	InstanceByID(ctx context.Context, id uuid.UUID) (*InstanceSnapshot, error)
	ActiveStaysForInstance(ctx context.Context, instanceID uuid.UUID) ([]reservation.Event, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	Reject(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type ApartmentRepository interface {
	CreateApartment(ctx context.Context, tx sqlc.DBTX, a *apartment.Apartment) (uuid.UUID, error)
	CreateInstance(ctx context.Context, tx sqlc.DBTX, inst *apartment.Instance) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	MarkEmailVerified(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type TokenRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, token string, userID uuid.UUID, expiresAt time.Time) error
	Consume(ctx context.Context, tx sqlc.DBTX, token string) (uuid.UUID, error)
}
