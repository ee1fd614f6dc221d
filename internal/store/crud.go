package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// updateRecord is the shared update path: merge, validate, replace, persist.
// A missing id reports false without touching storage.
func updateRecord[T any](ctx context.Context, s *DataStore, c *collection[T], name, id string, patch models.Patch, protected ...string) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		i := c.index(id)
		if i < 0 {
			return nil, nil
		}
		merged, err := models.ApplyPatch(c.items[i], patch, protected...)
		if err != nil {
			return nil, err
		}
		found = true
		c.set(i, merged)
		return s.stamp(updated(name, id)...), s.persist(ctx, c)
	})
	return found, err
}

// deleteRecord removes one record without cascading.
func deleteRecord[T any](ctx context.Context, s *DataStore, c *collection[T], name, id string) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		removed := c.removeWhere(func(v T) bool { return c.idOf(v) == id })
		if len(removed) == 0 {
			return nil, nil
		}
		found = true
		return s.stamp(deleted(name, removed...)...), s.persist(ctx, c)
	})
	return found, err
}
