// Package worker runs the notification outbox dispatcher. Jobs are written
// transactionally by the command side and delivered here on a schedule, so
// no request handler ever sends mail inline or forks a fire-and-forget
// goroutine.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const (
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"

	topicUserRegistered      = "user_registered"
	topicReservationCreated  = "reservation_created"
	topicReservationRejected = "reservation_rejected"

	maxRetryDelay = time.Hour
)

var errUnknownTopic = errs.New("unknown notification topic")

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type JobStore interface {
	ClaimDue(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	UpdateJobStatus(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
	Requeue(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, runAt time.Time, lastError string) error
}

type ReservationViews interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type Dispatcher struct {
	uow          shared.UnitOfWork
	jobs         JobStore
	reservations ReservationViews
	mailer       Mailer
	cfg          config.WorkerConfig
	clock        clock.Clock
	cron         *cron.Cron
}

func NewDispatcher(
	uow shared.UnitOfWork,
	jobs JobStore,
	reservations ReservationViews,
	mailer Mailer,
	cfg config.WorkerConfig,
	clk clock.Clock,
) *Dispatcher {
	return &Dispatcher{
		uow:          uow,
		jobs:         jobs,
		reservations: reservations,
		mailer:       mailer,
		cfg:          cfg,
		clock:        clk,
	}
}

func (d *Dispatcher) Start() error {
	d.cron = cron.New()
	_, err := d.cron.AddFunc(d.cfg.DispatchSchedule, func() {
		if err := d.DispatchDue(context.Background()); err != nil {
			slog.Error("notification dispatch cycle failed", "error", err.Error())
		}
	})
	if err != nil {
		return errs.Wrap(err, "failed to schedule notification dispatcher")
	}

	d.cron.Start()
	slog.Info("notification dispatcher started", "schedule", d.cfg.DispatchSchedule)
	return nil
}

// Stop halts the schedule and waits for in-flight jobs to finish.
func (d *Dispatcher) Stop() {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}
}

// DispatchDue claims one batch of due jobs and delivers them with bounded
// concurrency. Claiming uses SKIP LOCKED, so concurrent dispatchers never
// double-send.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	var claimed []sqlc.NotificationJobs
	err := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var claimErr error
		claimed, claimErr = d.jobs.ClaimDue(ctx, db, int32(d.cfg.BatchSize))
		return claimErr
	})
	if err != nil {
		return err
	}
	if len(claimed) == 0 {
		return nil
	}

	sem := make(chan struct{}, d.cfg.Concurrency)
	var wg sync.WaitGroup
	for _, job := range claimed {
		wg.Add(1)
		sem <- struct{}{}
		go func(job sqlc.NotificationJobs) {
			defer wg.Done()
			defer func() { <-sem }()
			d.process(ctx, job)
		}(job)
	}
	wg.Wait()

	return nil
}

func (d *Dispatcher) process(ctx context.Context, job sqlc.NotificationJobs) {
	to, subject, body, err := d.render(ctx, job)
	if err != nil {
		// Unrenderable payloads never improve with retries
		d.finishJob(ctx, job.ID, JobStatusFailed, err)
		slog.Error("notification job unrenderable",
			"job_id", job.ID, "topic", job.Topic, "error", err.Error())
		return
	}

	if err := d.mailer.Send(ctx, to, subject, body); err != nil {
		d.handleSendFailure(ctx, job, err)
		return
	}

	d.finishJob(ctx, job.ID, JobStatusSent, nil)
}

func (d *Dispatcher) handleSendFailure(ctx context.Context, job sqlc.NotificationJobs, sendErr error) {
	// Attempts was already incremented by the claim
	if int(job.Attempts) >= d.cfg.MaxAttempts {
		d.finishJob(ctx, job.ID, JobStatusFailed, sendErr)
		slog.Error("notification job exhausted retries",
			"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", sendErr.Error())
		return
	}

	runAt := d.clock.Now().Add(retryDelay(int(job.Attempts)))
	err := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return d.jobs.Requeue(ctx, db, job.ID, runAt, sendErr.Error())
	})
	if err != nil {
		slog.Error("failed to requeue notification job", "job_id", job.ID, "error", err.Error())
		return
	}

	slog.Warn("notification send failed, requeued",
		"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "run_at", runAt)
}

func (d *Dispatcher) finishJob(ctx context.Context, jobID uuid.UUID, status string, cause error) {
	var lastError *string
	if cause != nil {
		msg := cause.Error()
		lastError = &msg
	}

	err := d.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return d.jobs.UpdateJobStatus(ctx, db, jobID, status, lastError)
	})
	if err != nil {
		slog.Error("failed to update notification job status",
			"job_id", jobID, "status", status, "error", err.Error())
	}
}

func retryDelay(attempts int) time.Duration {
	delay := time.Duration(1<<attempts) * time.Minute
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}

func (d *Dispatcher) render(ctx context.Context, job sqlc.NotificationJobs) (to, subject, body string, err error) {
	switch job.Topic {
	case topicUserRegistered:
		return renderUserRegistered(job.Payload)
	case topicReservationCreated, topicReservationRejected:
		return d.renderReservationMail(ctx, job)
	default:
		return "", "", "", errs.Mark(fmt.Errorf("topic %q", job.Topic), errUnknownTopic)
	}
}

type userRegisteredPayload struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func renderUserRegistered(payload []byte) (string, string, string, error) {
	var p userRegisteredPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", "", "", errs.Wrap(err, "invalid user_registered payload")
	}
	if p.Email == "" || p.Token == "" {
		return "", "", "", errs.New("user_registered payload missing email or token")
	}

	body := fmt.Sprintf(
		"Welcome!\n\nPlease confirm your email address with this verification code:\n\n    %s\n\nThe code expires in 48 hours.\n",
		p.Token,
	)
	return p.Email, "Confirm your email address", body, nil
}

type reservationPayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
}

func (d *Dispatcher) renderReservationMail(ctx context.Context, job sqlc.NotificationJobs) (string, string, string, error) {
	var p reservationPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return "", "", "", errs.Wrap(err, "invalid reservation payload")
	}

	view, err := d.reservations.FindByID(ctx, p.ReservationID)
	if err != nil {
		return "", "", "", errs.Wrap(err, "failed to load reservation for notification")
	}

	stay := fmt.Sprintf("%s to %s",
		view.ReservedFrom.Format("2006-01-02"),
		view.ReservedTo.Format("2006-01-02"))

	if job.Topic == topicReservationRejected {
		reason := ""
		if view.RejectionReason != nil {
			reason = "\nReason: " + *view.RejectionReason
		}
		body := fmt.Sprintf(
			"Your reservation of %s (%s), %s, has been cancelled.%s\n",
			view.ApartmentName, view.InstanceName, stay, reason,
		)
		return view.UserEmail, "Your reservation was cancelled", body, nil
	}

	body := fmt.Sprintf(
		"Your reservation is confirmed.\n\nApartment: %s (%s)\nStay: %s\nTotal: %.2f\n",
		view.ApartmentName, view.InstanceName, stay, float64(view.TotalPriceCents)/100,
	)
	return view.UserEmail, "Your reservation is confirmed", body, nil
}
