package documentsRepo

import (
	"context"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentStore is the only way the rest of the service talks to the
// document database.
type DocumentStore interface {
	// CreateDocument stamps created_at/updated_at on record, inserts it and
	// returns the assigned identifier as text.
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	// GetDocuments returns up to limit documents matching filter in natural
	// order. A nil filter matches everything; limit <= 0 yields no documents.
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)

	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// CollectionNamer lets a record type override its collection name.
type CollectionNamer interface {
	CollectionName() string
}

// CollectionName returns the collection a record of v's type lives in: the
// type name lowercased, unless the type implements CollectionNamer.
func CollectionName(v any) string {
	if n, ok := v.(CollectionNamer); ok {
		return n.CollectionName()
	}
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return strings.ToLower(t.Name())
}

type mongoDocumentStore struct {
	db *mongo.Database
}

// NewMongoDocumentStore returns a DocumentStore backed by the named database.
func NewMongoDocumentStore(client *mongo.Client, dbName string) DocumentStore {
	return &mongoDocumentStore{
		db: client.Database(dbName),
	}
}
