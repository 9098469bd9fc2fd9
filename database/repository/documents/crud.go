package documentsRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// toDocument flattens record into a bson.M and stamps both timestamps.
func toDocument(record any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	doc["created_at"] = now
	doc["updated_at"] = now
	return doc, nil
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

// CreateDocument inserts record into collection and returns its ObjectID hex.
func (s *mongoDocumentStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	doc, err := toDocument(record, time.Now().UTC())
	if err != nil {
		return "", err
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return idString(res.InsertedID), nil
}

// GetDocuments fetches up to limit documents from collection.
func (s *mongoDocumentStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	// Mongo reads a zero limit as "no limit".
	if limit <= 0 {
		return []bson.M{}, nil
	}
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return docs, nil
}

func (s *mongoDocumentStore) Name() string {
	return s.db.Name()
}

func (s *mongoDocumentStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
