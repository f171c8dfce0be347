package readstore

import (
	"context"

	"github.com/google/uuid"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/queries"
)

type UserViewQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserViewQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries *sqlc.Queries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:            row.ID,
		Email:         row.Email,
		Role:          row.Role,
		EmailVerified: row.EmailVerified,
		IsActive:      row.IsActive,
	}, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	view := &queries.AuthorizedUserView{
		ID:            row.ID,
		Email:         row.Email,
		Role:          row.Role,
		EmailVerified: row.EmailVerified,
		IsActive:      row.IsActive,
	}

	return view, row.PasswordHash, nil
}
