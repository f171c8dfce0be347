//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPriceCents(t *testing.T) {
	t.Run("two nights at 100", func(t *testing.T) {
		total, err := reservation.TotalPriceCents(100, mustRange(t, day(1), day(3)))
		require.NoError(t, err)
		assert.Equal(t, int64(200), total)
	})

	t.Run("single night", func(t *testing.T) {
		total, err := reservation.TotalPriceCents(12500, mustRange(t, day(1), day(2)))
		require.NoError(t, err)
		assert.Equal(t, int64(12500), total)
	})

	t.Run("time of day does not change the night count", func(t *testing.T) {
		from := time.Date(2030, 1, 1, 14, 0, 0, 0, time.UTC)
		to := time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)
		total, err := reservation.TotalPriceCents(100, mustRange(t, from, to))
		require.NoError(t, err)
		assert.Equal(t, int64(100), total)
	})

	t.Run("same-day range bills zero nights and fails", func(t *testing.T) {
		from := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
		to := time.Date(2030, 1, 1, 18, 0, 0, 0, time.UTC)
		_, err := reservation.TotalPriceCents(100, mustRange(t, from, to))
		assert.ErrorIs(t, err, reservation.ErrInvalidRange)
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, int64(2), reservation.Nights(mustRange(t, day(1), day(3))))
	assert.Equal(t, int64(30), reservation.Nights(mustRange(t, day(1), day(31))))
}
