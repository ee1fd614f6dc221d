package store

import (
	"sync"
	"time"
)

type Op string

const (
	OpCreated Op = "created"
	OpUpdated Op = "updated"
	OpDeleted Op = "deleted"
)

// Change describes one record touched by a mutation.
type Change struct {
	Collection string    `json:"collection"`
	Op         Op        `json:"op"`
	ID         string    `json:"id"`
	At         time.Time `json:"at"`
}

type changeFeed struct {
	mu     sync.RWMutex
	next   int
	notify map[int]func(Change)
}

// Subscribe registers fn for every change published after the call. The
// returned function removes the subscription.
func (s *DataStore) Subscribe(fn func(Change)) (cancel func()) {
	f := &s.feed
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.notify == nil {
		f.notify = make(map[int]func(Change))
	}
	id := f.next
	f.next++
	f.notify[id] = fn

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.notify, id)
	}
}

func (f *changeFeed) publish(changes []Change) {
	if len(changes) == 0 {
		return
	}
	f.mu.RLock()
	subs := make([]func(Change), 0, len(f.notify))
	for _, fn := range f.notify {
		subs = append(subs, fn)
	}
	f.mu.RUnlock()

	for _, ch := range changes {
		for _, fn := range subs {
			fn(ch)
		}
	}
}

func created(collection string, ids ...string) []Change {
	return changesFor(collection, OpCreated, ids)
}

func updated(collection string, ids ...string) []Change {
	return changesFor(collection, OpUpdated, ids)
}

func deleted(collection string, ids ...string) []Change {
	return changesFor(collection, OpDeleted, ids)
}

func changesFor(collection string, op Op, ids []string) []Change {
	out := make([]Change, 0, len(ids))
	for _, id := range ids {
		out = append(out, Change{Collection: collection, Op: op, ID: id})
	}
	return out
}
