package store

import (
	"context"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

func (s *DataStore) AddQuery(ctx context.Context, q models.Query) (models.Query, error) {
	q.ID = s.newID("query")
	q.CreatedAt = s.now()
	q.Sanitize()
	if q.Status == "" {
		q.Status = models.QueryOpen
	}
	if err := validate("query", q); err != nil {
		return models.Query{}, err
	}

	err := s.mutate(func() ([]Change, error) {
		s.queries.add(q)
		return s.stamp(created(CollectionQueries, q.ID)...), s.persist(ctx, s.queries)
	})
	return q, err
}

func (s *DataStore) UpdateQuery(ctx context.Context, id string, patch models.Patch) (bool, error) {
	return updateRecord(ctx, s, s.queries, CollectionQueries, id, patch)
}

func (s *DataStore) DeleteQuery(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.queries, CollectionQueries, id)
}

func (s *DataStore) Queries() []models.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries.all()
}
