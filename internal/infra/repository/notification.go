package repository

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
	RequeueNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RequeueNotificationJobParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries *sqlc.Queries) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		Status:  "queued",
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error) {
	jobs, err := r.queries.ClaimDueNotificationJobs(ctx, db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:     jobID,
		Status: status,
	}

	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	} else {
		params.LastError = pgtype.Text{Valid: false}
	}

	if err := r.queries.UpdateNotificationJobStatus(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}

func (r *NotificationRepository) Requeue(ctx context.Context, db sqlc.DBTX, jobID uuid.UUID, runAt time.Time, lastError string) error {
	params := sqlc.RequeueNotificationJobParams{
		ID:        jobID,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgtype.Text{String: lastError, Valid: true},
	}

	if err := r.queries.RequeueNotificationJob(ctx, db, params); err != nil {
		return infra.WrapRepoErr("failed to requeue notification job", err)
	}

	return nil
}
