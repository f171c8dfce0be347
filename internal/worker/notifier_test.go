//go:build unit

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUoW passes callbacks straight through; the dispatcher only ever uses
// WithDB.
type fakeUoW struct{}

func (fakeUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	panic("not used by the dispatcher")
}

func (fakeUoW) WithinReadOnly(context.Context, func(context.Context, sqlc.DBTX) error) error {
	panic("not used by the dispatcher")
}

func (fakeUoW) WithDB(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (fakeUoW) CommandReads() shared.CommandReads {
	panic("not used by the dispatcher")
}

type fakeJobStore struct {
	mu       sync.Mutex
	due      []sqlc.NotificationJobs
	statuses map[uuid.UUID]string
	requeued map[uuid.UUID]time.Time
}

func newFakeJobStore(due ...sqlc.NotificationJobs) *fakeJobStore {
	return &fakeJobStore{
		due:      due,
		statuses: make(map[uuid.UUID]string),
		requeued: make(map[uuid.UUID]time.Time),
	}
}

func (f *fakeJobStore) ClaimDue(_ context.Context, _ sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(limit) < len(f.due) {
		return f.due[:limit], nil
	}
	return f.due, nil
}

func (f *fakeJobStore) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, _ *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[jobID] = status
	return nil
}

func (f *fakeJobStore) Requeue(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, runAt time.Time, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requeued[jobID] = runAt
	return nil
}

func (f *fakeJobStore) statusOf(jobID uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statuses[jobID]
}

type fakeReservationViews struct {
	view *queries.ReservationView
	err  error
}

func (f *fakeReservationViews) FindByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return f.view, f.err
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func workerConfig() config.WorkerConfig {
	return config.WorkerConfig{
		DispatchSchedule: "@every 1s",
		Concurrency:      2,
		BatchSize:        10,
		MaxAttempts:      3,
	}
}

func registrationJob(attempts int32) sqlc.NotificationJobs {
	payload, _ := json.Marshal(map[string]string{
		"email": "guest@example.com",
		"token": "verify-me",
	})
	return sqlc.NotificationJobs{
		ID:       uuid.New(),
		Kind:     "email",
		Topic:    "user_registered",
		Payload:  payload,
		Status:   "processing",
		Attempts: attempts,
	}
}

func reservationJob(topic string, reservationID uuid.UUID) sqlc.NotificationJobs {
	payload, _ := json.Marshal(map[string]string{
		"reservation_id": reservationID.String(),
	})
	return sqlc.NotificationJobs{
		ID:       uuid.New(),
		Kind:     "email",
		Topic:    topic,
		Payload:  payload,
		Status:   "processing",
		Attempts: 1,
	}
}

func newTestDispatcher(jobs JobStore, views ReservationViews, mailer Mailer) *Dispatcher {
	return NewDispatcher(fakeUoW{}, jobs, views, mailer, workerConfig(), clock.NewRealClock())
}

func TestDispatchDue(t *testing.T) {
	t.Run("delivers a registration mail", func(t *testing.T) {
		job := registrationJob(1)
		store := newFakeJobStore(job)
		mailer := &recordingMailer{}

		d := newTestDispatcher(store, &fakeReservationViews{}, mailer)
		require.NoError(t, d.DispatchDue(context.Background()))

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "guest@example.com", mailer.sent[0].to)
		assert.Contains(t, mailer.sent[0].body, "verify-me")
		assert.Equal(t, JobStatusSent, store.statusOf(job.ID))
	})

	t.Run("delivers a reservation confirmation to the guest", func(t *testing.T) {
		reservationID := uuid.New()
		job := reservationJob("reservation_created", reservationID)
		store := newFakeJobStore(job)
		mailer := &recordingMailer{}
		views := &fakeReservationViews{view: &queries.ReservationView{
			ID:              reservationID,
			ApartmentName:   "Seaside Loft",
			InstanceName:    "Unit 2B",
			UserEmail:       "guest@example.com",
			ReservedFrom:    time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
			ReservedTo:      time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC),
			TotalPriceCents: 36000,
		}}

		d := newTestDispatcher(store, views, mailer)
		require.NoError(t, d.DispatchDue(context.Background()))

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "guest@example.com", mailer.sent[0].to)
		assert.Contains(t, mailer.sent[0].body, "Seaside Loft")
		assert.Contains(t, mailer.sent[0].body, "2030-06-01 to 2030-06-04")
		assert.Equal(t, JobStatusSent, store.statusOf(job.ID))
	})

	t.Run("requeues a transient send failure", func(t *testing.T) {
		job := registrationJob(1)
		store := newFakeJobStore(job)
		mailer := &recordingMailer{err: errors.New("smtp: connection refused")}

		d := newTestDispatcher(store, &fakeReservationViews{}, mailer)
		require.NoError(t, d.DispatchDue(context.Background()))

		store.mu.Lock()
		_, requeued := store.requeued[job.ID]
		store.mu.Unlock()
		assert.True(t, requeued)
		assert.Empty(t, store.statusOf(job.ID))
	})

	t.Run("fails permanently after max attempts", func(t *testing.T) {
		job := registrationJob(3)
		store := newFakeJobStore(job)
		mailer := &recordingMailer{err: errors.New("smtp: connection refused")}

		d := newTestDispatcher(store, &fakeReservationViews{}, mailer)
		require.NoError(t, d.DispatchDue(context.Background()))

		assert.Equal(t, JobStatusFailed, store.statusOf(job.ID))
	})

	t.Run("unknown topic fails without retry", func(t *testing.T) {
		job := registrationJob(1)
		job.Topic = "sms_blast"
		store := newFakeJobStore(job)
		mailer := &recordingMailer{}

		d := newTestDispatcher(store, &fakeReservationViews{}, mailer)
		require.NoError(t, d.DispatchDue(context.Background()))

		assert.Equal(t, JobStatusFailed, store.statusOf(job.ID))
		assert.Empty(t, mailer.sent)
	})
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Minute, retryDelay(1))
	assert.Equal(t, 4*time.Minute, retryDelay(2))
	assert.Equal(t, maxRetryDelay, retryDelay(12))
}
