//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/apartment"
	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservationRepo struct {
	created   *reservation.Reservation
	createErr error
	rejected  *reservation.Reservation
	rejectErr error
}

func (f *fakeReservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = res
	return res.ID(), nil
}

func (f *fakeReservationRepo) Reject(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if f.rejectErr != nil {
		return f.rejectErr
	}
	f.rejected = res
	return nil
}

type enqueuedJob struct {
	kind    string
	topic   string
	payload []byte
}

type fakeNotificationRepo struct {
	jobs []enqueuedJob
}

func (f *fakeNotificationRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, _ time.Time) error {
	f.jobs = append(f.jobs, enqueuedJob{kind: kind, topic: topic, payload: payload})
	return nil
}

type fakeCommandReads struct {
	instance    *shared.InstanceSnapshot
	instanceErr error
	stays       []reservation.Event
	staysErr    error
	snapshot    *shared.ReservationSnapshot
	snapshotErr error
}

func (f *fakeCommandReads) InstanceByID(context.Context, uuid.UUID) (*shared.InstanceSnapshot, error) {
	return f.instance, f.instanceErr
}

func (f *fakeCommandReads) ActiveStaysForInstance(context.Context, uuid.UUID) ([]reservation.Event, error) {
	return f.stays, f.staysErr
}

func (f *fakeCommandReads) ReservationByID(context.Context, uuid.UUID) (*shared.ReservationSnapshot, error) {
	return f.snapshot, f.snapshotErr
}

type fakeTx struct {
	reservations *fakeReservationRepo
	notifs       *fakeNotificationRepo
	reads        *fakeCommandReads
}

func (f *fakeTx) Reservations() shared.ReservationRepository   { return f.reservations }
func (f *fakeTx) Apartments() shared.ApartmentRepository       { panic("not used") }
func (f *fakeTx) Notifications() shared.NotificationRepository { return f.notifs }
func (f *fakeTx) Users() shared.UserRepository                 { panic("not used") }
func (f *fakeTx) Tokens() shared.TokenRepository               { panic("not used") }
func (f *fakeTx) Reads() shared.CommandReads                   { return f.reads }
func (f *fakeTx) DB() sqlc.DBTX                                { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.tx.reads }

type fakeExternalSource struct {
	events []reservation.Event
	err    error
	called bool
}

func (f *fakeExternalSource) EventsFor(context.Context, *apartment.Instance) ([]reservation.Event, error) {
	f.called = true
	return f.events, f.err
}

type fakeViewStore struct {
	view *queries.ReservationView
}

func (f *fakeViewStore) FindByID(context.Context, uuid.UUID) (*queries.ReservationView, error) {
	return f.view, nil
}

func (f *fakeViewStore) FindByUserIDFirstPage(context.Context, uuid.UUID, int32) ([]*queries.ReservationListItem, error) {
	panic("not used")
}

func (f *fakeViewStore) FindByUserIDKeyset(context.Context, uuid.UUID, time.Time, uuid.UUID, int32) ([]*queries.ReservationListItem, error) {
	panic("not used")
}

func (f *fakeViewStore) FindAllFirstPage(context.Context, int32) ([]*queries.ManagerReservationListItem, error) {
	panic("not used")
}

func (f *fakeViewStore) FindAllKeyset(context.Context, time.Time, uuid.UUID, int32) ([]*queries.ManagerReservationListItem, error) {
	panic("not used")
}

type reservationFixture struct {
	commands ReservationCommands
	uow      *fakeUoW
	external *fakeExternalSource
	instance *shared.InstanceSnapshot
}

func day(d int) time.Time {
	return time.Date(2030, 6, d, 0, 0, 0, 0, time.UTC)
}

func newReservationFixture(reads *fakeCommandReads, external *fakeExternalSource) *reservationFixture {
	if reads.instance == nil {
		calendarURL := "https://feeds.example.com/unit.ics"
		reads.instance = &shared.InstanceSnapshot{
			ID:               uuid.New(),
			ApartmentID:      uuid.New(),
			Name:             "Unit 2B",
			MaxGuests:        4,
			NightlyRateCents: 12000,
			CalendarURL:      &calendarURL,
		}
	}

	tx := &fakeTx{
		reservations: &fakeReservationRepo{},
		notifs:       &fakeNotificationRepo{},
		reads:        reads,
	}
	uow := &fakeUoW{tx: tx}
	view := &queries.ReservationView{ID: uuid.New(), Status: "active"}

	return &reservationFixture{
		commands: NewReservationCommands(uow, external, &fakeViewStore{view: view}, clock.NewRealClock()),
		uow:      uow,
		external: external,
		instance: reads.instance,
	}
}

func bookingRequest(instanceID uuid.UUID, from, to time.Time, guests int) reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		InstanceID: instanceID,
		CheckIn:    from,
		CheckOut:   to,
		Guests:     guests,
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("books a free range and queues the confirmation mail", func(t *testing.T) {
		f := newReservationFixture(&fakeCommandReads{}, &fakeExternalSource{})

		view, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(1), day(4), 2), uuid.New())

		require.NoError(t, err)
		require.NotNil(t, view)

		created := f.uow.tx.reservations.created
		require.NotNil(t, created)
		assert.Equal(t, int64(3*12000), created.Details().TotalPrice().Cents())

		jobs := f.uow.tx.notifs.jobs
		require.Len(t, jobs, 1)
		assert.Equal(t, "reservation_created", jobs[0].topic)
	})

	t.Run("back-to-back with a local stay is allowed", func(t *testing.T) {
		reads := &fakeCommandReads{
			stays: []reservation.Event{reservation.NewEvent(day(1), day(4), "existing")},
		}
		f := newReservationFixture(reads, &fakeExternalSource{})

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(4), day(7), 2), uuid.New())

		assert.NoError(t, err)
	})

	t.Run("overlap with a local stay is rejected before insert", func(t *testing.T) {
		reads := &fakeCommandReads{
			stays: []reservation.Event{reservation.NewEvent(day(1), day(4), "existing")},
		}
		f := newReservationFixture(reads, &fakeExternalSource{})

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(3), day(6), 2), uuid.New())

		assert.ErrorIs(t, err, ErrApartmentNotAvailable)
		assert.Nil(t, f.uow.tx.reservations.created)
	})

	t.Run("overlap with an external calendar event is rejected", func(t *testing.T) {
		external := &fakeExternalSource{
			events: []reservation.Event{reservation.NewEvent(day(2), day(5), "Airbnb")},
		}
		f := newReservationFixture(&fakeCommandReads{}, external)

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(4), day(7), 2), uuid.New())

		assert.ErrorIs(t, err, ErrApartmentNotAvailable)
	})

	t.Run("unreachable calendar blocks the booking", func(t *testing.T) {
		external := &fakeExternalSource{err: assert.AnError}
		f := newReservationFixture(&fakeCommandReads{}, external)

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(1), day(4), 2), uuid.New())

		assert.True(t, errs.Is(err, ErrCalendarUnavailable), "got %v", err)
		assert.Nil(t, f.uow.tx.reservations.created)
	})

	t.Run("party above capacity is rejected", func(t *testing.T) {
		f := newReservationFixture(&fakeCommandReads{}, &fakeExternalSource{})

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(1), day(4), 5), uuid.New())

		assert.ErrorIs(t, err, ErrPartyTooLarge)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		f := newReservationFixture(&fakeCommandReads{}, &fakeExternalSource{})

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(4), day(1), 2), uuid.New())

		assert.True(t, errs.Is(err, ErrInvalidStayRange), "got %v", err)
	})

	t.Run("unknown instance", func(t *testing.T) {
		reads := &fakeCommandReads{
			instanceErr: infra.WrapRepoErr("missing", nil, infra.KindNotFound),
		}
		f := newReservationFixture(reads, &fakeExternalSource{})

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(uuid.New(), day(1), day(4), 2), uuid.New())

		assert.ErrorIs(t, err, ErrApartmentNotFound)
	})

	t.Run("losing the insert race maps to not available", func(t *testing.T) {
		f := newReservationFixture(&fakeCommandReads{}, &fakeExternalSource{})
		f.uow.tx.reservations.createErr = infra.WrapRepoErr("overlap", nil, infra.KindConflict)

		_, err := f.commands.CreateReservation(context.Background(),
			bookingRequest(f.instance.ID, day(1), day(4), 2), uuid.New())

		assert.ErrorIs(t, err, ErrApartmentNotAvailable)
	})
}

func TestRejectReservation(t *testing.T) {
	owner := uuid.New()

	activeSnapshot := func() *shared.ReservationSnapshot {
		return &shared.ReservationSnapshot{
			ID:               uuid.New(),
			InstanceID:       uuid.New(),
			UserID:           owner,
			Status:           "active",
			ReservedFrom:     day(1),
			ReservedTo:       day(4),
			NightlyRateCents: 12000,
			TotalPriceCents:  36000,
		}
	}

	t.Run("manager rejects and the guest is notified", func(t *testing.T) {
		reads := &fakeCommandReads{snapshot: activeSnapshot()}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			reads.snapshot.ID, uuid.New(), user.RoleManager, "flood damage")

		require.NoError(t, err)
		require.NotNil(t, f.uow.tx.reservations.rejected)
		assert.True(t, f.uow.tx.reservations.rejected.IsRejected())

		jobs := f.uow.tx.notifs.jobs
		require.Len(t, jobs, 1)
		assert.Equal(t, "reservation_rejected", jobs[0].topic)
	})

	t.Run("owner may cancel their own booking", func(t *testing.T) {
		reads := &fakeCommandReads{snapshot: activeSnapshot()}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			reads.snapshot.ID, owner, user.RoleGuest, "change of plans")

		assert.NoError(t, err)
	})

	t.Run("strangers are denied", func(t *testing.T) {
		reads := &fakeCommandReads{snapshot: activeSnapshot()}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			reads.snapshot.ID, uuid.New(), user.RoleGuest, "not mine")

		assert.True(t, errs.Is(err, ErrRejectionDenied), "got %v", err)
	})

	t.Run("double rejection conflicts", func(t *testing.T) {
		snapshot := activeSnapshot()
		snapshot.Status = "rejected"
		reads := &fakeCommandReads{snapshot: snapshot}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			snapshot.ID, uuid.New(), user.RoleManager, "again")

		assert.True(t, errs.Is(err, ErrReservationRejected), "got %v", err)
	})

	t.Run("blank reason is invalid", func(t *testing.T) {
		reads := &fakeCommandReads{snapshot: activeSnapshot()}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			reads.snapshot.ID, uuid.New(), user.RoleManager, "   ")

		assert.True(t, errs.Is(err, ErrInvalidRejectionReason), "got %v", err)
	})

	t.Run("missing reservation", func(t *testing.T) {
		reads := &fakeCommandReads{
			snapshotErr: infra.WrapRepoErr("missing", nil, infra.KindNotFound),
		}
		f := newReservationFixture(reads, &fakeExternalSource{})

		err := f.commands.RejectReservation(context.Background(),
			uuid.New(), uuid.New(), user.RoleManager, "whatever")

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}
