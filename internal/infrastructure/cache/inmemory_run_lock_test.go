package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRunLock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire then contend", func(t *testing.T) {
		lock := NewInMemoryRunLock()

		acquired, err := lock.Acquire(ctx, "payroll:run:t1:e1:2025-03", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)

		again, err := lock.Acquire(ctx, "payroll:run:t1:e1:2025-03", time.Minute)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("release frees the key", func(t *testing.T) {
		lock := NewInMemoryRunLock()

		acquired, err := lock.Acquire(ctx, "k", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		require.NoError(t, lock.Release(ctx, "k"))

		acquired, err = lock.Acquire(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("expired lock can be retaken", func(t *testing.T) {
		lock := NewInMemoryRunLock()

		acquired, err := lock.Acquire(ctx, "k", time.Millisecond)
		require.NoError(t, err)
		require.True(t, acquired)

		time.Sleep(5 * time.Millisecond)

		acquired, err = lock.Acquire(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("independent keys do not contend", func(t *testing.T) {
		lock := NewInMemoryRunLock()

		a, err := lock.Acquire(ctx, "a", time.Minute)
		require.NoError(t, err)
		b, err := lock.Acquire(ctx, "b", time.Minute)
		require.NoError(t, err)

		assert.True(t, a)
		assert.True(t, b)
	})
}
