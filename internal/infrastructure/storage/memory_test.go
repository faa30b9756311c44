package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryObjectStorage(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryObjectStorage()

	t.Run("upload and read back", func(t *testing.T) {
		err := store.Upload(ctx, "payslips/abc_2025-03.txt", []byte("PAYSLIP"), "text/plain; charset=utf-8")
		require.NoError(t, err)

		exists, err := store.ObjectExists(ctx, "payslips/abc_2025-03.txt")
		require.NoError(t, err)
		assert.True(t, exists)

		data, contentType, ok := store.Get("payslips/abc_2025-03.txt")
		require.True(t, ok)
		assert.Equal(t, []byte("PAYSLIP"), data)
		assert.Equal(t, "text/plain; charset=utf-8", contentType)
	})

	t.Run("delete removes object", func(t *testing.T) {
		require.NoError(t, store.Upload(ctx, "payslips/tmp.txt", []byte("x"), "text/plain"))
		require.NoError(t, store.DeleteObject(ctx, "payslips/tmp.txt"))

		exists, err := store.ObjectExists(ctx, "payslips/tmp.txt")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete of missing key succeeds", func(t *testing.T) {
		assert.NoError(t, store.DeleteObject(ctx, "payslips/never-existed.txt"))
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, store.Upload(ctx, "", []byte("x"), "text/plain"))
		assert.Error(t, store.DeleteObject(ctx, ""))
		_, err := store.ObjectExists(ctx, "")
		assert.Error(t, err)
	})
}
