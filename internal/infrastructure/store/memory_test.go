package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", "value", 0))

	val, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", val)
}

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryExpiration(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "short", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, err := m.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := m.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryZeroExpirationClearsDeadline(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", "v1", time.Millisecond))
	require.NoError(t, m.Set(ctx, "key", "v2", 0))
	time.Sleep(5 * time.Millisecond)

	val, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
}

func TestMemoryDel(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "1", 0))
	require.NoError(t, m.Set(ctx, "b", "2", 0))
	require.NoError(t, m.Del(ctx, "a", "b"))

	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJSONRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, m, "doc", payload{Name: "test", Count: 3}, 0))

	var got payload
	require.NoError(t, GetJSON(ctx, m, "doc", &got))
	assert.Equal(t, payload{Name: "test", Count: 3}, got)
}

func TestGetJSONMissing(t *testing.T) {
	m := NewMemory()

	var got map[string]string
	err := GetJSON(context.Background(), m, "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}
