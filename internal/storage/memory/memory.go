// Package memory is a transactional in-memory storage.Store. Transactions are
// serialised: WithinTx works on a copy of the data and swaps it in on commit.
// Store methods must not be called from inside a WithinTx callback.
package memory

import (
	"context"
	"sort"
	"sync"

	"communityHub/internal/models"
	"communityHub/internal/storage"
)

type dataset struct {
	events        map[string]models.Event
	registrations map[string]models.Registration
	listings      map[string]models.MarketListing
	requests      map[string]models.MarketRequest
	// order keeps insertion order as a tie breaker for equal timestamps.
	order map[string]int64
	seq   int64
}

func newDataset() *dataset {
	return &dataset{
		events:        make(map[string]models.Event),
		registrations: make(map[string]models.Registration),
		listings:      make(map[string]models.MarketListing),
		requests:      make(map[string]models.MarketRequest),
		order:         make(map[string]int64),
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		events:        make(map[string]models.Event, len(d.events)),
		registrations: make(map[string]models.Registration, len(d.registrations)),
		listings:      make(map[string]models.MarketListing, len(d.listings)),
		requests:      make(map[string]models.MarketRequest, len(d.requests)),
		order:         make(map[string]int64, len(d.order)),
		seq:           d.seq,
	}
	for k, v := range d.events {
		c.events[k] = v
	}
	for k, v := range d.registrations {
		c.registrations[k] = v
	}
	for k, v := range d.listings {
		c.listings[k] = v
	}
	for k, v := range d.requests {
		c.requests[k] = v
	}
	for k, v := range d.order {
		c.order[k] = v
	}
	return c
}

func (d *dataset) insert(id string) {
	d.seq++
	d.order[id] = d.seq
}

type Store struct {
	mu   sync.Mutex
	data *dataset
}

var _ storage.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: newDataset()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.data.clone()
	if err := fn(&txn{d: work}); err != nil {
		return err
	}

	s.data = work
	return nil
}

// view runs fn against the committed data under the store lock.
func (s *Store) view(fn func(tx *txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&txn{d: s.data})
}

func sortByOrder[T any](d *dataset, items []T, id func(T) string, less func(a, b T) (bool, bool)) {
	sort.SliceStable(items, func(i, j int) bool {
		if l, decided := less(items[i], items[j]); decided {
			return l
		}
		return d.order[id(items[i])] < d.order[id(items[j])]
	})
}

func window[T any](items []T, limit, offset int) []T {
	limit, offset = storage.Page(limit, offset)
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
