package models

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ReviewStore is the persistence boundary for the review collection. The store
// holds the full set as one document; callers read-modify-write the whole set
// on every mutation. A store never reports corruption: an unreadable payload
// loads as an empty collection.
type ReviewStore interface {
	Load(ctx context.Context) ([]Review, error)
	Save(ctx context.Context, reviews []Review) error
}

// MemoryStore keeps the collection in process memory. It backs tests and
// development runs without Redis or MongoDB.
type MemoryStore struct {
	mu      sync.Mutex
	reviews []Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// A nil slice means nothing was ever saved; callers use that to decide
	// whether to seed.
	if m.reviews == nil {
		return nil, nil
	}
	out := make([]Review, len(m.reviews))
	copy(out, m.reviews)
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, reviews []Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = make([]Review, len(reviews))
	copy(m.reviews, reviews)
	return nil
}
