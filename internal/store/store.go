// Package store holds every marketplace collection in memory and mirrors
// each mutation to a storage.KVStore. A DataStore is built once at startup
// and passed to whoever needs it.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/storage"
)

const DefaultPrefix = "eventconnect"

// Collection names, also used as the storage key suffix.
const (
	CollectionUsers        = "users"
	CollectionEvents       = "events"
	CollectionBookings     = "bookings"
	CollectionReviews      = "reviews"
	CollectionTestimonials = "testimonials"
	CollectionQueries      = "queries"
	CollectionCompanies    = "companies"
	CollectionOffers       = "offers"
)

type Options struct {
	// Prefix namespaces every key; defaults to DefaultPrefix.
	Prefix string
	Logger *slog.Logger
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func(prefix string) string
}

type DataStore struct {
	mu     sync.Mutex
	kv     storage.KVStore
	logger *slog.Logger
	now    func() time.Time
	newID  func(prefix string) string

	users        *collection[models.User]
	events       *collection[models.Event]
	bookings     *collection[models.Booking]
	reviews      *collection[models.Review]
	testimonials *collection[models.Testimonial]
	queries      *collection[models.Query]
	companies    *collection[models.Company]
	offers       *collection[models.EventCompanyOffer]

	feed changeFeed
}

// NewID returns "{prefix}_{uuidv7}". v7 ids are time ordered and unique
// even when two records are created in the same millisecond.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "_" + id.String()
}

// Open loads every collection from kv, seeding the ones that are absent, and
// writes seeded collections back. A corrupt collection aborts Open.
func Open(ctx context.Context, kv storage.KVStore, opts Options) (*DataStore, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = NewID
	}

	key := func(name string) string { return storage.Key(opts.Prefix, name) }

	s := &DataStore{
		kv:     kv,
		logger: opts.Logger,
		now:    opts.Now,
		newID:  opts.NewID,

		users: newCollection(CollectionUsers, key(CollectionUsers), SeedIfAbsent,
			models.DefaultUsers, func(u models.User) string { return u.ID }),
		events: newCollection(CollectionEvents, key(CollectionEvents), SeedIfAbsent,
			models.DefaultEvents, func(e models.Event) string { return e.ID }),
		bookings: newCollection(CollectionBookings, key(CollectionBookings), StartEmpty,
			nil, func(b models.Booking) string { return b.ID }),
		reviews: newCollection(CollectionReviews, key(CollectionReviews), StartEmpty,
			nil, func(r models.Review) string { return r.ID }),
		testimonials: newCollection(CollectionTestimonials, key(CollectionTestimonials), SeedIfAbsent,
			models.DefaultTestimonials, func(t models.Testimonial) string { return t.ID }),
		queries: newCollection(CollectionQueries, key(CollectionQueries), StartEmpty,
			nil, func(q models.Query) string { return q.ID }),
		companies: newCollection(CollectionCompanies, key(CollectionCompanies), SeedUnion,
			models.DefaultCompanies, func(c models.Company) string { return c.ID }),
		offers: newCollection(CollectionOffers, key(CollectionOffers), SeedIfAbsent,
			models.DefaultOffers, func(o models.EventCompanyOffer) string { return o.ID }),
	}
	s.offers.clone = models.EventCompanyOffer.Clone

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DataStore) collections() []persister {
	return []persister{
		s.events,
		s.bookings,
		s.reviews,
		s.testimonials,
		s.queries,
		s.users,
		s.companies,
		s.offers,
	}
}

// Reload replaces the in-memory state with what the substrate holds now.
func (s *DataStore) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.collections() {
		seeded, err := c.load(ctx, s.kv)
		if err != nil {
			s.logger.Error("Failed to load collection", "collection", c.name(), "error", err)
			return err
		}
		if !seeded {
			continue
		}
		s.logger.Debug("Seeded collection", "collection", c.name())
		if err := s.persist(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// persist writes the whole collection. Callers hold s.mu.
func (s *DataStore) persist(ctx context.Context, cols ...persister) error {
	for _, c := range cols {
		if err := c.save(ctx, s.kv); err != nil {
			s.logger.Error("Write-through failed", "collection", c.name(), "error", err)
			return err
		}
	}
	return nil
}

// mutate runs fn under the store lock and publishes its changes once the
// lock is released, so subscribers may call back into the store.
func (s *DataStore) mutate(fn func() ([]Change, error)) error {
	s.mu.Lock()
	changes, err := fn()
	s.mu.Unlock()

	s.feed.publish(changes)
	return err
}

func (s *DataStore) stamp(changes ...Change) []Change {
	now := s.now()
	for i := range changes {
		changes[i].At = now
	}
	return changes
}

func validate(kind string, v interface{}) error {
	if err := models.Validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrInvalid, kind, err)
	}
	return nil
}
