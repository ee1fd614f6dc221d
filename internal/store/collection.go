package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/joshua-takyi/eventconnect/internal/storage"
)

// SeedPolicy decides what a collection holds when it is opened.
type SeedPolicy int

const (
	// StartEmpty uses the persisted value, or nothing.
	StartEmpty SeedPolicy = iota
	// SeedIfAbsent uses the persisted value, or the built-in defaults.
	SeedIfAbsent
	// SeedUnion always contains the defaults; persisted records win on id
	// collision and persisted-only records are kept.
	SeedUnion
)

// persister is the untyped view of a collection used by the lifecycle code.
type persister interface {
	name() string
	load(ctx context.Context, kv storage.KVStore) (seeded bool, err error)
	save(ctx context.Context, kv storage.KVStore) error
}

// collection is an ordered list of records persisted under a single key.
type collection[T any] struct {
	label  string
	key    string
	policy SeedPolicy
	seed   func() []T
	idOf   func(T) string
	clone  func(T) T
	items  []T
}

func newCollection[T any](label, key string, policy SeedPolicy, seed func() []T, idOf func(T) string) *collection[T] {
	return &collection[T]{
		label:  label,
		key:    key,
		policy: policy,
		seed:   seed,
		idOf:   idOf,
		clone:  func(v T) T { return v },
		items:  []T{},
	}
}

func (c *collection[T]) name() string { return c.label }

func (c *collection[T]) defaults() []T {
	if c.seed == nil || c.policy == StartEmpty {
		return []T{}
	}
	return c.seed()
}

func (c *collection[T]) load(ctx context.Context, kv storage.KVStore) (bool, error) {
	raw, err := kv.Load(ctx, c.key)
	if errors.Is(err, storage.ErrNotFound) {
		c.items = c.defaults()
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", c.label, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return false, fmt.Errorf("decode %s: %w", c.label, err)
	}
	if items == nil {
		items = []T{}
	}

	seeded := false
	if c.policy == SeedUnion {
		var added int
		items, added = unionByID(c.defaults(), items, c.idOf)
		seeded = added > 0
	}
	c.items = items
	return seeded, nil
}

func (c *collection[T]) save(ctx context.Context, kv storage.KVStore) error {
	if err := storage.SaveJSON(ctx, kv, c.key, c.items); err != nil {
		return fmt.Errorf("save %s: %w", c.label, err)
	}
	return nil
}

func (c *collection[T]) index(id string) int {
	for i, item := range c.items {
		if c.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) all() []T {
	return c.filter(func(T) bool { return true })
}

func (c *collection[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	for _, item := range c.items {
		if match(item) {
			return c.clone(item), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) add(item T) {
	c.items = append(c.items, c.clone(item))
}

func (c *collection[T]) set(i int, item T) {
	c.items[i] = c.clone(item)
}

// removeWhere drops every matching record and returns the removed ids.
func (c *collection[T]) removeWhere(match func(T) bool) []string {
	var removed []string
	kept := c.items[:0]
	for _, item := range c.items {
		if match(item) {
			removed = append(removed, c.idOf(item))
			continue
		}
		kept = append(kept, item)
	}
	clear(c.items[len(kept):])
	c.items = kept
	return removed
}

func (c *collection[T]) count() int { return len(c.items) }

// unionByID returns persisted followed by every default whose id is not
// persisted, plus how many defaults were appended.
func unionByID[T any](defaults, persisted []T, idOf func(T) string) ([]T, int) {
	seen := make(map[string]struct{}, len(persisted))
	for _, item := range persisted {
		seen[idOf(item)] = struct{}{}
	}
	out := append([]T{}, persisted...)
	added := 0
	for _, item := range defaults {
		if _, ok := seen[idOf(item)]; ok {
			continue
		}
		out = append(out, item)
		added++
	}
	return out, added
}
