package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The network backends run against real servers named by these variables
// and are skipped when they are unset.
const (
	envRedisAddr    = "EVENTCONNECT_TEST_REDIS_ADDR"
	envDatabaseURL  = "EVENTCONNECT_TEST_DATABASE_URL"
	envMongoURI     = "EVENTCONNECT_TEST_MONGODB_URI"
	envSupabaseURL  = "EVENTCONNECT_TEST_SUPABASE_URL"
	envSupabaseKey  = "EVENTCONNECT_TEST_SUPABASE_KEY"
	backendTimeout  = 10 * time.Second
	contractPayload = `[{"id":"1","title":"Sangeet Night","price":90000}]`
)

func requireEnv(t *testing.T, names ...string) []string {
	t.Helper()
	values := make([]string, 0, len(names))
	for _, name := range names {
		v := os.Getenv(name)
		if v == "" {
			t.Skipf("%s not set", name)
		}
		values = append(values, v)
	}
	return values
}

// testKVContract checks the behaviour the data store relies on: a missing
// key loads as ErrNotFound, Save overwrites, and Remove is idempotent.
func testKVContract(t *testing.T, kv KVStore) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()

	key := Key("eventconnect_test_"+uuid.NewString(), "events")
	t.Cleanup(func() { _ = kv.Remove(context.Background(), key) })

	_, err := kv.Load(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Save(ctx, key, []byte(contractPayload)))
	got, err := kv.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, contractPayload, string(got))

	require.NoError(t, kv.Save(ctx, key, []byte(`[]`)))
	got, err = kv.Load(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, kv.Remove(ctx, key))
	require.NoError(t, kv.Remove(ctx, key))
	_, err = kv.Load(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreContract(t *testing.T) {
	testKVContract(t, NewMemoryStore())
}

func TestRedisStoreContract(t *testing.T) {
	addr := requireEnv(t, envRedisAddr)[0]
	client := redis.NewClient(&redis.Options{Addr: addr})
	kv := NewRedisStore(client)
	t.Cleanup(func() { _ = kv.Close(context.Background()) })

	testKVContract(t, kv)
}

func TestPostgresStoreContract(t *testing.T) {
	url := requireEnv(t, envDatabaseURL)[0]
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	kv, err := NewPostgresStore(ctx, pool)
	if err != nil {
		pool.Close()
		require.NoError(t, err)
	}
	t.Cleanup(func() { _ = kv.Close(context.Background()) })

	testKVContract(t, kv)
}

func TestMongoStoreContract(t *testing.T) {
	uri := requireEnv(t, envMongoURI)[0]
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	kv, err := NewMongoStore(client, "eventconnect_test", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close(context.Background()) })

	testKVContract(t, kv)
}

func TestSupabaseStoreContract(t *testing.T) {
	env := requireEnv(t, envSupabaseURL, envSupabaseKey)
	client, err := supabase.NewClient(env[0], env[1], nil)
	require.NoError(t, err)

	testKVContract(t, NewSupabaseStore(client, ""))
}

func TestNewMongoStoreNeedsClient(t *testing.T) {
	_, err := NewMongoStore(nil, "", "")
	require.Error(t, err)
}

func TestNewSupabaseStoreDefaultTable(t *testing.T) {
	assert.Equal(t, DefaultSupabaseTable, NewSupabaseStore(nil, "").table)
	assert.Equal(t, "sessions", NewSupabaseStore(nil, "sessions").table)
}
