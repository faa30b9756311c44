package hr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/shared"
)

func TestParsePeriod(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ParsePeriod("2026-07")
		require.NoError(t, err)
		assert.Equal(t, "2026-07", p.String())
		assert.False(t, p.IsZero())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, in := range []string{"", "July 2026", "2026-13", "2026-7", "2026/07", "2026-07-01"} {
			_, err := ParsePeriod(in)
			require.Error(t, err, "input %q", in)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "INVALID_PERIOD", domainErr.Code)
		}
	})
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2026, time.February, 17, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, "2026-02", p.String())
}

func TestPeriodBounds(t *testing.T) {
	p, err := ParsePeriod("2026-02")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), p.FirstDay())
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), p.LastDay())

	leap, err := ParsePeriod("2028-02")
	require.NoError(t, err)
	assert.Equal(t, 29, leap.LastDay().Day())
}

func TestPeriodPrevious(t *testing.T) {
	p, err := ParsePeriod("2026-07")
	require.NoError(t, err)
	assert.Equal(t, "2026-06", p.Previous().String())

	jan, err := ParsePeriod("2026-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12", jan.Previous().String())
}

func TestPeriodContainsDate(t *testing.T) {
	p, err := ParsePeriod("2026-07")
	require.NoError(t, err)

	assert.True(t, p.ContainsDate(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.ContainsDate(time.Date(2026, time.July, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.ContainsDate(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.ContainsDate(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.ContainsDate(time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPeriodOverlapsRange(t *testing.T) {
	p, err := ParsePeriod("2026-07")
	require.NoError(t, err)

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("range inside the period", func(t *testing.T) {
		assert.True(t, p.OverlapsRange(day(2026, time.July, 10), day(2026, time.July, 14)))
	})

	t.Run("range starting in the period counts", func(t *testing.T) {
		assert.True(t, p.OverlapsRange(day(2026, time.July, 28), day(2026, time.August, 3)))
	})

	t.Run("range ending in the period counts", func(t *testing.T) {
		assert.True(t, p.OverlapsRange(day(2026, time.June, 25), day(2026, time.July, 2)))
	})

	t.Run("range spanning the whole period counts", func(t *testing.T) {
		assert.True(t, p.OverlapsRange(day(2026, time.June, 1), day(2026, time.August, 31)))
	})

	t.Run("disjoint ranges do not count", func(t *testing.T) {
		assert.False(t, p.OverlapsRange(day(2026, time.June, 1), day(2026, time.June, 30)))
		assert.False(t, p.OverlapsRange(day(2026, time.August, 1), day(2026, time.August, 5)))
	})
}
