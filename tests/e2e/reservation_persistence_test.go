//go:build e2e

package e2e

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stayhub/internal/domain/reservation"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository"
	sqlc "stayhub/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Exercises the pieces that only a real database can prove: the gist
// exclusion constraint on overlapping stays, the guarded rejection UPDATE,
// and the SKIP LOCKED outbox claim.
type ReservationPersistenceSuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool

	reservations  *repository.ReservationRepository
	notifications *repository.NotificationRepository

	userID     uuid.UUID
	instanceID uuid.UUID
}

func TestReservationPersistenceSuite(t *testing.T) {
	suite.Run(t, new(ReservationPersistenceSuite))
}

func (s *ReservationPersistenceSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("stayhub_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(s.T(), err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pool, err = pgxpool.New(ctx, dsn)
	require.NoError(s.T(), err)

	s.applyMigrations(ctx)
	s.seedCatalog(ctx)

	queries := sqlc.New()
	s.reservations = repository.NewReservationRepository(queries, s.pool)
	s.notifications = repository.NewNotificationRepository(queries)
}

func (s *ReservationPersistenceSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.container.Terminate(ctx)
	}
}

func (s *ReservationPersistenceSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE reservations, notification_jobs")
	require.NoError(s.T(), err)
}

func (s *ReservationPersistenceSuite) applyMigrations(ctx context.Context) {
	candidates := []string{
		filepath.Join("migrations", "0001_init.sql"),
		filepath.Join("..", "..", "migrations", "0001_init.sql"),
	}

	var (
		sqlContent []byte
		readErr    error
	)
	for _, cand := range candidates {
		sqlContent, readErr = os.ReadFile(cand)
		if readErr == nil {
			break
		}
	}
	require.NoError(s.T(), readErr, "migration file not found")

	_, err := s.pool.Exec(ctx, string(sqlContent))
	require.NoError(s.T(), err)
}

func (s *ReservationPersistenceSuite) seedCatalog(ctx context.Context) {
	s.userID = uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, email_verified)
		 VALUES ($1, 'guest@example.com', 'x', 'guest', true)`, s.userID)
	require.NoError(s.T(), err)

	apartmentID := uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO apartments (id, name) VALUES ($1, 'Seaside Loft')`, apartmentID)
	require.NoError(s.T(), err)

	s.instanceID = uuid.New()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO apartment_instances (id, apartment_id, name, max_guests, nightly_rate_cents)
		 VALUES ($1, $2, 'Unit 2B', 4, 12000)`, s.instanceID, apartmentID)
	require.NoError(s.T(), err)
}

func (s *ReservationPersistenceSuite) newReservation(fromDay, toDay int) *reservation.Reservation {
	stay, err := reservation.NewDateRange(
		time.Date(2030, 6, fromDay, 0, 0, 0, 0, time.UTC),
		time.Date(2030, 6, toDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(s.T(), err)

	entity, err := reservation.NewReservation(s.instanceID, s.userID, stay, 12000)
	require.NoError(s.T(), err)
	return entity
}

func (s *ReservationPersistenceSuite) TestOverlapIsRejectedByTheDatabase() {
	ctx := context.Background()

	_, err := s.reservations.Create(ctx, s.pool, s.newReservation(1, 4))
	require.NoError(s.T(), err)

	_, err = s.reservations.Create(ctx, s.pool, s.newReservation(3, 6))
	require.Error(s.T(), err)
	s.True(infra.IsKind(err, infra.KindConflict))

	// Checkout day equals the next check-in: the half-open range leaves the
	// boundary free.
	_, err = s.reservations.Create(ctx, s.pool, s.newReservation(4, 7))
	s.NoError(err)
}

func (s *ReservationPersistenceSuite) TestRejectionFreesTheWindow() {
	ctx := context.Background()

	first := s.newReservation(1, 4)
	_, err := s.reservations.Create(ctx, s.pool, first)
	require.NoError(s.T(), err)

	require.NoError(s.T(), first.Reject(s.userID, user.RoleGuest, "change of plans"))
	require.NoError(s.T(), s.reservations.Reject(ctx, s.pool, first))

	// The same window is bookable again once the blocker is rejected.
	_, err = s.reservations.Create(ctx, s.pool, s.newReservation(1, 4))
	s.NoError(err)

	// A second rejection finds no active row.
	err = s.reservations.Reject(ctx, s.pool, first)
	require.Error(s.T(), err)
	s.True(infra.IsKind(err, infra.KindConflict))
}

func (s *ReservationPersistenceSuite) TestOutboxClaimSkipsFutureJobs() {
	ctx := context.Background()

	payload := []byte(`{"reservation_id":"` + uuid.New().String() + `"}`)
	require.NoError(s.T(), s.notifications.CreateJob(ctx, s.pool,
		"email", "reservation_created", payload, time.Now().Add(-time.Minute)))
	require.NoError(s.T(), s.notifications.CreateJob(ctx, s.pool,
		"email", "reservation_created", payload, time.Now().Add(time.Hour)))

	claimed, err := s.notifications.ClaimDue(ctx, s.pool, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), claimed, 1)
	s.Equal("processing", claimed[0].Status)
	s.Equal(int32(1), claimed[0].Attempts)

	// Claimed rows are out of the queue until requeued or finished.
	again, err := s.notifications.ClaimDue(ctx, s.pool, 10)
	require.NoError(s.T(), err)
	s.Empty(again)
}

func (s *ReservationPersistenceSuite) TestOutboxReclaimsStaleClaims() {
	ctx := context.Background()

	payload := []byte(`{"reservation_id":"` + uuid.New().String() + `"}`)
	require.NoError(s.T(), s.notifications.CreateJob(ctx, s.pool,
		"email", "reservation_created", payload, time.Now().Add(-time.Minute)))

	claimed, err := s.notifications.ClaimDue(ctx, s.pool, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), claimed, 1)

	// A dispatcher that dies mid-claim leaves the row in processing. Age the
	// claim past the reclaim window and it must become claimable again.
	_, err = s.pool.Exec(ctx,
		`UPDATE notification_jobs SET updated_at = now() - interval '15 minutes' WHERE id = $1`,
		claimed[0].ID)
	require.NoError(s.T(), err)

	reclaimed, err := s.notifications.ClaimDue(ctx, s.pool, 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), reclaimed, 1)
	s.Equal(claimed[0].ID, reclaimed[0].ID)
	s.Equal("processing", reclaimed[0].Status)
	s.Equal(int32(2), reclaimed[0].Attempts)

	// A fresh claim is not stolen while its holder may still be working.
	none, err := s.notifications.ClaimDue(ctx, s.pool, 10)
	require.NoError(s.T(), err)
	s.Empty(none)
}
