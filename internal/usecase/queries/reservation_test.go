//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationReadStore struct {
	view       *ReservationView
	viewErr    error
	userRows   []*ReservationListItem
	allRows    []*ManagerReservationListItem
	keysetSeen bool
}

func (s *stubReservationReadStore) FindByID(_ context.Context, _ uuid.UUID) (*ReservationView, error) {
	return s.view, s.viewErr
}

func (s *stubReservationReadStore) FindByUserIDFirstPage(_ context.Context, _ uuid.UUID, limit int32) ([]*ReservationListItem, error) {
	return capRows(s.userRows, limit), nil
}

func (s *stubReservationReadStore) FindByUserIDKeyset(_ context.Context, _ uuid.UUID, _ time.Time, _ uuid.UUID, limit int32) ([]*ReservationListItem, error) {
	s.keysetSeen = true
	return capRows(s.userRows, limit), nil
}

func (s *stubReservationReadStore) FindAllFirstPage(_ context.Context, limit int32) ([]*ManagerReservationListItem, error) {
	return capRows(s.allRows, limit), nil
}

func (s *stubReservationReadStore) FindAllKeyset(_ context.Context, _ time.Time, _ uuid.UUID, limit int32) ([]*ManagerReservationListItem, error) {
	s.keysetSeen = true
	return capRows(s.allRows, limit), nil
}

func capRows[T any](rows []T, limit int32) []T {
	if len(rows) > int(limit) {
		return rows[:limit]
	}
	return rows
}

func userListItems(n int) []*ReservationListItem {
	items := make([]*ReservationListItem, n)
	base := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := range items {
		items[i] = &ReservationListItem{
			ID:        uuid.New(),
			Status:    "active",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return items
}

func TestReservationQueriesGetByID(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	view := &ReservationView{ID: uuid.New(), UserID: owner, Status: "active"}

	tests := []struct {
		name      string
		actorID   uuid.UUID
		actorRole user.Role
		storeView *ReservationView
		storeErr  error
		wantErr   error
	}{
		{name: "owner can read", actorID: owner, actorRole: user.RoleGuest, storeView: view},
		{name: "manager can read any", actorID: stranger, actorRole: user.RoleManager, storeView: view},
		{name: "stranger denied", actorID: stranger, actorRole: user.RoleGuest, storeView: view, wantErr: ErrReservationAccess},
		{
			name:      "missing row",
			actorID:   owner,
			actorRole: user.RoleGuest,
			storeErr:  infra.WrapRepoErr("missing", nil, infra.KindNotFound),
			wantErr:   ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubReservationReadStore{view: tt.storeView, viewErr: tt.storeErr}
			q := NewReservationQueries(store)

			got, err := q.GetByID(context.Background(), tt.actorID, tt.actorRole, view.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestReservationQueriesListByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("full page yields a next cursor", func(t *testing.T) {
		store := &stubReservationReadStore{userRows: userListItems(4)}
		q := NewReservationQueries(store)

		items, next, err := q.ListByUser(context.Background(), userID, nil, 3)
		require.NoError(t, err)
		assert.Len(t, items, 3)
		require.NotNil(t, next)

		gotTime, gotID, err := DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[2].ID, gotID)
		assert.True(t, items[2].CreatedAt.Equal(gotTime))
	})

	t.Run("short page has no next cursor", func(t *testing.T) {
		store := &stubReservationReadStore{userRows: userListItems(2)}
		q := NewReservationQueries(store)

		items, next, err := q.ListByUser(context.Background(), userID, nil, 3)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor routes to the keyset query", func(t *testing.T) {
		store := &stubReservationReadStore{userRows: userListItems(1)}
		q := NewReservationQueries(store)

		after := &Cursor{After: EncodeAfterCursor(time.Now(), uuid.New())}
		_, _, err := q.ListByUser(context.Background(), userID, after, 3)
		require.NoError(t, err)
		assert.True(t, store.keysetSeen)
	})

	t.Run("garbage cursor is rejected", func(t *testing.T) {
		q := NewReservationQueries(&stubReservationReadStore{})

		_, _, err := q.ListByUser(context.Background(), userID, &Cursor{After: "garbage"}, 3)
		assert.True(t, errs.Is(err, ErrInvalidCursor), "got %v", err)
	})
}
