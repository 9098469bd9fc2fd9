package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoClient is the shared MongoDB client, nil until InitDB succeeds.
var MongoClient *mongo.Client

// InitDB creates the MongoDB client. A failed ping is only logged so the
// process still starts and the diagnostics endpoint can report the problem.
func InitDB(ctx context.Context, url string, logger *zap.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(url).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Warn("MongoDB ping failed; continuing without a verified connection", zap.Error(err))
	} else {
		logger.Info("Connected to MongoDB successfully")
	}
	MongoClient = client
	return client, nil
}

// Close disconnects the shared client if one was created.
func Close(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	err := MongoClient.Disconnect(ctx)
	MongoClient = nil
	return err
}
