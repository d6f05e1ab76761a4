package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStoreAddAccumulates(t *testing.T) {
	store := NewMemoryCartStore()

	require.NoError(t, store.Add("s1", 1, 2))
	require.NoError(t, store.Add("s1", 1, 3))
	require.NoError(t, store.Add("s1", 2, 1))

	lines, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []CartLine{{ProductID: 1, Quantity: 5}, {ProductID: 2, Quantity: 1}}, lines)
}

func TestMemoryCartStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemoryCartStore()

	require.NoError(t, store.Add("s1", 1, 1))
	require.NoError(t, store.Add("s2", 2, 2))

	lines, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, []CartLine{{ProductID: 1, Quantity: 1}}, lines)
}

func TestMemoryCartStoreUpdate(t *testing.T) {
	store := NewMemoryCartStore()
	require.NoError(t, store.Add("s1", 1, 2))

	require.NoError(t, store.Update("s1", 1, 7))

	lines, _ := store.Get("s1")
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestMemoryCartStoreUpdateMissingLine(t *testing.T) {
	store := NewMemoryCartStore()

	err := store.Update("s1", 1, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCartStoreUpdateToZeroRemoves(t *testing.T) {
	store := NewMemoryCartStore()
	require.NoError(t, store.Add("s1", 1, 2))

	require.NoError(t, store.Update("s1", 1, 0))

	lines, _ := store.Get("s1")
	assert.Empty(t, lines)
}

func TestMemoryCartStoreRejectsNonPositiveAdd(t *testing.T) {
	store := NewMemoryCartStore()

	assert.ErrorIs(t, store.Add("s1", 1, 0), ErrValidation)
	assert.ErrorIs(t, store.Add("s1", 1, -2), ErrValidation)
}

func TestMemoryCartStoreRemoveAndClear(t *testing.T) {
	store := NewMemoryCartStore()
	require.NoError(t, store.Add("s1", 1, 1))
	require.NoError(t, store.Add("s1", 2, 1))

	require.NoError(t, store.Remove("s1", 1))
	lines, _ := store.Get("s1")
	assert.Equal(t, []CartLine{{ProductID: 2, Quantity: 1}}, lines)

	require.NoError(t, store.Clear("s1"))
	lines, _ = store.Get("s1")
	assert.Empty(t, lines)

	// Removing from an unknown session is a no-op.
	assert.NoError(t, store.Remove("ghost", 1))
}

func TestNewCartStoreUnknownBackend(t *testing.T) {
	_, err := NewCartStore("redis", nil)
	assert.Error(t, err)
}
