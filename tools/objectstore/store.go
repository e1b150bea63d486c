package objectstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"mcpbridge/tools"
)

// Object is one stored object with its metadata.
type Object struct {
	Body         []byte
	ContentType  string
	Size         int64
	LastModified time.Time
}

// ObjectInfo is the listing view of an object.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// BucketInfo is the listing view of a bucket.
type BucketInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ObjectStore is the single external client handle behind the storage tools.
type ObjectStore interface {
	GetObject(ctx context.Context, bucket, key string) (Object, error)
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
	ListObjects(ctx context.Context, bucket, prefix string, maxKeys int32) ([]ObjectInfo, error)
	DeleteObject(ctx context.Context, bucket, key string) error
	ListBuckets(ctx context.Context) ([]BucketInfo, error)
	CreateBucket(ctx context.Context, bucket, region string) error
}

// MemoryStore is a simple in-memory implementation for testing.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]map[string]Object
	created map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]map[string]Object),
		created: make(map[string]time.Time),
	}
}

func (m *MemoryStore) GetObject(ctx context.Context, bucket, key string) (Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return Object{}, tools.E(tools.KindNotFound, "bucket %q does not exist", bucket)
	}
	obj, ok := objects[key]
	if !ok {
		return Object{}, tools.E(tools.KindNotFound, "object %q does not exist in bucket %q", key, bucket)
	}
	return obj, nil
}

func (m *MemoryStore) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return tools.E(tools.KindNotFound, "bucket %q does not exist", bucket)
	}
	objects[key] = Object{
		Body:        append([]byte(nil), body...),
		ContentType: contentType,
		Size:        int64(len(body)),
	}
	return nil
}

func (m *MemoryStore) ListObjects(ctx context.Context, bucket, prefix string, maxKeys int32) ([]ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return nil, tools.E(tools.KindNotFound, "bucket %q does not exist", bucket)
	}
	infos := make([]ObjectInfo, 0, len(objects))
	for key, obj := range objects {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		infos = append(infos, ObjectInfo{Key: key, Size: obj.Size, LastModified: obj.LastModified})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	if maxKeys > 0 && int(maxKeys) < len(infos) {
		infos = infos[:maxKeys]
	}
	return infos, nil
}

func (m *MemoryStore) DeleteObject(ctx context.Context, bucket, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	objects, ok := m.buckets[bucket]
	if !ok {
		return tools.E(tools.KindNotFound, "bucket %q does not exist", bucket)
	}
	delete(objects, key)
	return nil
}

func (m *MemoryStore) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	infos := make([]BucketInfo, 0, len(m.buckets))
	for name := range m.buckets {
		infos = append(infos, BucketInfo{Name: name, CreatedAt: m.created[name]})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (m *MemoryStore) CreateBucket(ctx context.Context, bucket, region string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.buckets[bucket]; exists {
		return tools.E(tools.KindAccessDenied, "bucket %q already exists", bucket)
	}
	m.buckets[bucket] = make(map[string]Object)
	m.created[bucket] = time.Now()
	return nil
}
