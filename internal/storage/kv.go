// Package storage is the persistent key-value substrate behind the data
// store. Every collection lives under one key as a JSON document; backends
// only move opaque bytes.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when the key has never been written or was removed.
var ErrNotFound = errors.New("storage: key not found")

// KVStore is implemented by every backend. Save overwrites the whole value;
// Remove on a missing key is not an error.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close(ctx context.Context) error
}

// LoadJSON decodes the value stored under key into v.
func LoadJSON(ctx context.Context, kv KVStore, key string, v interface{}) error {
	raw, err := kv.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SaveJSON encodes v and stores it under key.
func SaveJSON(ctx context.Context, kv KVStore, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Save(ctx, key, raw)
}

// Key namespaces a collection name under the application prefix,
// e.g. Key("eventconnect", "events") == "eventconnect_events".
func Key(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}
