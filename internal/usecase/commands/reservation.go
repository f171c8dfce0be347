package commands

import (
	"context"
	"encoding/json"
	"time"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrApartmentNotFound       = errs.New("apartment instance not found")
	ErrInvalidStayRange        = errs.New("invalid stay range")
	ErrPartyTooLarge           = errs.New("party exceeds instance capacity")
	ErrApartmentNotAvailable   = errs.New("apartment not available for the requested stay")
	ErrCalendarUnavailable     = errs.New("external booking calendar unavailable")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrRejectionDenied         = errs.New("not allowed to reject this reservation")
	ErrReservationRejected     = errs.New("reservation is already rejected")
	ErrInvalidRejectionReason  = errs.New("invalid rejection reason")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

const (
	notificationKindEmail    = "email"
	topicReservationCreated  = "reservation_created"
	topicReservationRejected = "reservation_rejected"
)

// ExternalEventsSource yields busy intervals from an instance's third-party
// booking channel. Failures must propagate: an unverifiable calendar blocks
// the booking rather than risking a double sell.
type ExternalEventsSource interface {
	EventsFor(ctx context.Context, inst *apartment.Instance) ([]reservation.Event, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest, userID uuid.UUID) (*queries.ReservationView, error)
	RejectReservation(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role, reason string) error
}

type reservationCommandsImpl struct {
	uow       shared.UnitOfWork
	external  ExternalEventsSource
	readStore queries.ReservationReadStore
	clock     clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	external ExternalEventsSource,
	readStore queries.ReservationReadStore,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:       uow,
		external:  external,
		readStore: readStore,
		clock:     clk,
	}
}

func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	req reqdto.CreateReservationRequest,
	userID uuid.UUID,
) (*queries.ReservationView, error) {
	stay, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	instance, err := r.loadInstance(ctx, req.InstanceID)
	if err != nil {
		return nil, err
	}

	if !instance.FitsParty(req.Guests) {
		return nil, ErrPartyTooLarge
	}

	busy, err := r.collectBusyIntervals(ctx, instance)
	if err != nil {
		return nil, err
	}

	// Early rejection only. The exclusion constraint at insert time is the
	// authoritative answer under concurrency.
	if !reservation.FreeFor(busy, stay) {
		return nil, ErrApartmentNotAvailable
	}

	entity, err := reservation.NewReservation(instance.ID(), userID, stay, instance.NightlyRateCents())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reservationID, createErr := tx.Reservations().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}

		return r.enqueueReservationMail(ctx, tx, topicReservationCreated, reservationID, userID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrApartmentNotAvailable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete view from the read store
	view, err := r.readStore.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (r *reservationCommandsImpl) RejectReservation(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
	actorRole user.Role,
	reason string,
) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, readErr := tx.Reads().ReservationByID(ctx, id)
		if readErr != nil {
			return readErr
		}

		entity, rebuildErr := reservationFromSnapshot(snapshot)
		if rebuildErr != nil {
			return rebuildErr
		}

		if rejectErr := entity.Reject(actorID, actorRole, reason); rejectErr != nil {
			return rejectErr
		}

		if writeErr := tx.Reservations().Reject(ctx, tx.DB(), entity); writeErr != nil {
			return writeErr
		}

		return r.enqueueReservationMail(ctx, tx, topicReservationRejected, entity.ID(), entity.UserID())
	})

	return mapRejectionError(err)
}

func (r *reservationCommandsImpl) loadInstance(ctx context.Context, id uuid.UUID) (*apartment.Instance, error) {
	snapshot, err := r.uow.CommandReads().InstanceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	instance := apartment.ReconstructInstance(
		snapshot.ID,
		snapshot.ApartmentID,
		snapshot.Name,
		snapshot.MaxGuests,
		snapshot.NightlyRateCents,
		snapshot.CalendarURL,
		time.Time{}, time.Time{},
	)
	return instance, nil
}

func (r *reservationCommandsImpl) collectBusyIntervals(ctx context.Context, instance *apartment.Instance) ([]reservation.Event, error) {
	local, err := r.uow.CommandReads().ActiveStaysForInstance(ctx, instance.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	external, err := r.external.EventsFor(ctx, instance)
	if err != nil {
		// Fail closed: availability cannot be proven against a broken feed
		return nil, errs.Mark(err, ErrCalendarUnavailable)
	}

	return append(local, external...), nil
}

func (r *reservationCommandsImpl) enqueueReservationMail(ctx context.Context, tx shared.Tx, topic string, reservationID, userID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"reservation_id": reservationID,
		"user_id":        userID,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKindEmail, topic, payload, r.clock.Now())
}

func reservationFromSnapshot(s *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	stay, err := reservation.NewDateRange(s.ReservedFrom, s.ReservedTo)
	if err != nil {
		return nil, err
	}
	nightly, err := reservation.NewMoney(s.NightlyRateCents)
	if err != nil {
		return nil, err
	}
	total, err := reservation.NewMoney(s.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(s.Status)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		s.ID, s.InstanceID, s.UserID,
		reservation.ReconstructDetails(stay, nightly, total),
		status,
		s.RejectionReason,
		s.RejectedBy,
		s.CreatedAt, s.UpdatedAt,
	), nil
}

func mapRejectionError(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReservationNotFound
	case infra.IsKind(err, infra.KindConflict):
		// Lost the race against a concurrent rejection
		return ErrReservationRejected
	case errs.Is(err, reservation.ErrAccessDenied):
		return errs.Mark(err, ErrRejectionDenied)
	case errs.Is(err, reservation.ErrAlreadyRejected):
		return errs.Mark(err, ErrReservationRejected)
	case errs.Is(err, reservation.ErrEmptyReason), errs.Is(err, reservation.ErrReasonTooLong):
		return errs.Mark(err, ErrInvalidRejectionReason)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
