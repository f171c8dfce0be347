package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	ListAll(ctx context.Context, after *Cursor, limit int) ([]*ManagerReservationListItem, *Cursor, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserIDFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByUserIDKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindAllFirstPage(ctx context.Context, limit int32) ([]*ManagerReservationListItem, error)
	FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ManagerReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if view.UserID != actorID && !actorRole.CanManageReservations() {
		return nil, ErrReservationAccess
	}

	return view, nil
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, after *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	// Fetch one extra row to decide whether a next page exists
	fetchLimit := int32(limit + 1)

	var (
		rows []*ReservationListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.readStore.FindByUserIDFirstPage(ctx, userID, fetchLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		rows, err = q.readStore.FindByUserIDKeyset(ctx, userID, lastCreatedAt, lastID, fetchLimit)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return rows, next, nil
}

func (q *reservationQueriesImpl) ListAll(ctx context.Context, after *Cursor, limit int) ([]*ManagerReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetchLimit := int32(limit + 1)

	var (
		rows []*ManagerReservationListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.readStore.FindAllFirstPage(ctx, fetchLimit)
	} else {
		lastCreatedAt, lastID, decodeErr := DecodeAfterCursor(after.After)
		if decodeErr != nil {
			return nil, nil, errs.Mark(decodeErr, ErrInvalidCursor)
		}
		rows, err = q.readStore.FindAllKeyset(ctx, lastCreatedAt, lastID, fetchLimit)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}

	return rows, next, nil
}
