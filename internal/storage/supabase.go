package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"
)

const DefaultSupabaseTable = "kv_store"

type supabaseRow struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// SupabaseStore keeps values in a postgrest-exposed table with columns
// key (text, primary key) and value (jsonb).
type SupabaseStore struct {
	client *supabase.Client
	table  string
}

func NewSupabaseStore(client *supabase.Client, table string) *SupabaseStore {
	if table == "" {
		table = DefaultSupabaseTable
	}
	return &SupabaseStore{client: client, table: table}
}

func (s *SupabaseStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, status, err := s.client.From(s.table).
		Select("key,value", "", false).
		Eq("key", key).
		Execute()
	if err != nil {
		if status != 0 {
			return nil, fmt.Errorf("postgrest error: status=%d body=%s err=%v", status, string(raw), err)
		}
		return nil, fmt.Errorf("failed to load %s: %v", key, err)
	}

	// Supabase returns an array even for single results
	var rows []supabaseRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s rows: %v", key, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].Value, nil
}

func (s *SupabaseStore) Save(ctx context.Context, key string, value []byte) error {
	row := supabaseRow{Key: key, Value: json.RawMessage(value)}
	_, _, err := s.client.From(s.table).
		Insert(row, true, "key", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %v", key, err)
	}
	return nil
}

func (s *SupabaseStore) Remove(ctx context.Context, key string) error {
	_, _, err := s.client.From(s.table).
		Delete("minimal", "").
		Eq("key", key).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete %s: %v", key, err)
	}
	return nil
}

func (s *SupabaseStore) Close(ctx context.Context) error {
	return nil
}

var _ KVStore = (*SupabaseStore)(nil)
