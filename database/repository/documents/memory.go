package documentsRepo

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDocumentStore keeps documents in memory in insertion order.
// Safe for concurrent use.
type MemoryDocumentStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]bson.M
	now         func() time.Time
}

func NewMemoryDocumentStore(name string) *MemoryDocumentStore {
	return &MemoryDocumentStore{
		name:        name,
		collections: make(map[string][]bson.M),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// copyDoc round-trips a document through BSON so callers never share maps
// with the store and see the same value types a Mongo read would produce.
func copyDoc(src bson.M) (bson.M, error) {
	raw, err := bson.Marshal(src)
	if err != nil {
		return nil, err
	}
	var dst bson.M
	if err := bson.Unmarshal(raw, &dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func (m *MemoryDocumentStore) CreateDocument(_ context.Context, collection string, record any) (string, error) {
	doc, err := toDocument(record, m.now())
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	stored, err := copyDoc(doc)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()
	return id.Hex(), nil
}

func (m *MemoryDocumentStore) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	out := []bson.M{}
	if limit <= 0 {
		return out, nil
	}
	var want bson.M
	if len(filter) > 0 {
		var err error
		if want, err = copyDoc(filter); err != nil {
			return nil, err
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.collections[collection] {
		if int64(len(out)) >= limit {
			break
		}
		if !matches(doc, want) {
			continue
		}
		cp, err := copyDoc(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

// matches is top-level equality only.
func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

func (m *MemoryDocumentStore) Name() string {
	return m.name
}

func (m *MemoryDocumentStore) ListCollectionNames(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
