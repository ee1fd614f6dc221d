package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/joshua-takyi/eventconnect/internal/storage"
	"github.com/joshua-takyi/eventconnect/internal/store"
	"github.com/stretchr/testify/require"
)

var testParams = &argon2id.Params{
	Memory:      64,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestData(t *testing.T) (*store.DataStore, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	data, err := store.Open(context.Background(), kv, store.Options{Logger: discardLogger()})
	require.NoError(t, err)
	return data, kv
}

func newTestAuth(t *testing.T, latency time.Duration) (*AuthService, *store.DataStore, *storage.MemoryStore) {
	t.Helper()
	data, kv := newTestData(t)
	auth := NewAuthService(data, kv, AuthOptions{
		Latency: latency,
		Params:  testParams,
		Logger:  discardLogger(),
	})
	return auth, data, kv
}
