// Package vector exposes vector-database collection and point tools.
package vector

import (
	"context"
	"sync"

	"mcpbridge/tools"
)

// Point is one stored vector with its payload.
type Point struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// ScoredPoint is a query hit.
type ScoredPoint struct {
	Point
	Score float32 `json:"score"`
}

// VectorStore is the external client handle behind the vector tools.
type VectorStore interface {
	CreateCollection(ctx context.Context, name string, vectorSize uint64, distance string) error
	ListCollections(ctx context.Context) ([]string, error)
	DeleteCollection(ctx context.Context, name string) error
	Upsert(ctx context.Context, collection string, points []Point) error
	Get(ctx context.Context, collection string, ids []string) ([]Point, error)
	Query(ctx context.Context, collection string, vector []float32, limit uint64) ([]ScoredPoint, error)
}

// TestVectorStore is a simple in-memory implementation for testing.
type TestVectorStore struct {
	mu          sync.Mutex
	collections map[string]map[string]Point
	order       []string
}

func NewTestVectorStore() *TestVectorStore {
	return &TestVectorStore{collections: make(map[string]map[string]Point)}
}

func (s *TestVectorStore) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.collections[name]; exists {
		return tools.E(tools.KindInternal, "collection %q already exists", name)
	}
	s.collections[name] = make(map[string]Point)
	s.order = append(s.order, name)
	return nil
}

func (s *TestVectorStore) ListCollections(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...), nil
}

func (s *TestVectorStore) DeleteCollection(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.collections[name]; !exists {
		return tools.E(tools.KindCollectionNotFound, "collection %q does not exist", name)
	}
	delete(s.collections, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *TestVectorStore) Upsert(ctx context.Context, collection string, points []Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pts, exists := s.collections[collection]
	if !exists {
		return tools.E(tools.KindCollectionNotFound, "collection %q does not exist", collection)
	}
	for _, p := range points {
		pts[p.ID] = p
	}
	return nil
}

func (s *TestVectorStore) Get(ctx context.Context, collection string, ids []string) ([]Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pts, exists := s.collections[collection]
	if !exists {
		return nil, tools.E(tools.KindCollectionNotFound, "collection %q does not exist", collection)
	}
	found := make([]Point, 0, len(ids))
	for _, id := range ids {
		if p, ok := pts[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

func (s *TestVectorStore) Query(ctx context.Context, collection string, vector []float32, limit uint64) ([]ScoredPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pts, exists := s.collections[collection]
	if !exists {
		return nil, tools.E(tools.KindCollectionNotFound, "collection %q does not exist", collection)
	}
	hits := make([]ScoredPoint, 0, len(pts))
	for _, p := range pts {
		hits = append(hits, ScoredPoint{Point: p, Score: 1})
		if limit > 0 && uint64(len(hits)) >= limit {
			break
		}
	}
	return hits, nil
}
