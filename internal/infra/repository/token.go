package repository

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TokenWriteQueries interface {
	UpsertEmailVerificationToken(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertEmailVerificationTokenParams) error
	ConsumeEmailVerificationToken(ctx context.Context, db sqlc.DBTX, token string) (uuid.UUID, error)
}

type TokenRepository struct {
	queries TokenWriteQueries
}

func NewTokenRepository(queries *sqlc.Queries) *TokenRepository {
	return &TokenRepository{
		queries: queries,
	}
}

func (r *TokenRepository) Insert(ctx context.Context, tx sqlc.DBTX, token string, userID uuid.UUID, expiresAt time.Time) error {
	params := sqlc.UpsertEmailVerificationTokenParams{
		Token:     token,
		UserID:    userID,
		ExpiresAt: pgconv.TimeToPgtype(expiresAt),
	}

	if err := r.queries.UpsertEmailVerificationToken(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to store verification token", err)
	}

	return nil
}

// Consume atomically marks an unexpired, unused token as consumed and
// returns its owner. Unknown, expired, and reused tokens all come back
// as KindNotFound; callers must not distinguish them.
func (r *TokenRepository) Consume(ctx context.Context, tx sqlc.DBTX, token string) (uuid.UUID, error) {
	userID, err := r.queries.ConsumeEmailVerificationToken(ctx, tx, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("verification token not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to consume verification token", err)
	}

	return userID, nil
}
