package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "eventconnect_events", Key("eventconnect", "events"))
	assert.Equal(t, "events", Key("", "events"))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	_, err := m.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	value := []byte(`[{"id":"1"}]`)
	require.NoError(t, m.Save(ctx, "k", value))
	value[0] = 'X'

	got, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))

	got[0] = 'Y'
	again, _ := m.Load(ctx, "k")
	assert.Equal(t, byte('['), again[0])

	require.NoError(t, m.Save(ctx, "a", []byte("1")))
	assert.Equal(t, []string{"a", "k"}, m.Keys())
	assert.Equal(t, 2, m.Writes())

	require.NoError(t, m.Remove(ctx, "k"))
	require.NoError(t, m.Remove(ctx, "never-written"))
	_, err = m.Load(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemoryStore()

	require.ErrorIs(t, m.Save(ctx, "k", []byte("v")), context.Canceled)
	_, err := m.Load(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, m.Remove(ctx, "k"), context.Canceled)
	assert.Zero(t, m.Writes())
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	type row struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, SaveJSON(ctx, m, "rows", []row{{ID: "1", Name: "Sangeet"}}))

	var rows []row
	require.NoError(t, LoadJSON(ctx, m, "rows", &rows))
	assert.Equal(t, []row{{ID: "1", Name: "Sangeet"}}, rows)

	require.NoError(t, m.Save(ctx, "broken", []byte("{")))
	err := LoadJSON(ctx, m, "broken", &rows)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, LoadJSON(ctx, m, "absent", &rows), ErrNotFound)
}
