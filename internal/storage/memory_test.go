package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "cart", "[]"))
	require.NoError(t, s.Set(ctx, "cart", `[{"id":1}]`))

	value, found, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":1}]`, value)

	require.NoError(t, s.Delete(ctx, "cart"))
	require.NoError(t, s.Delete(ctx, "cart"))

	_, found, err = s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, found)
}
