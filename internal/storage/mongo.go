package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultMongoDatabase   = "eventconnect"
	DefaultMongoCollection = "kv_store"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per key.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName, colName string) (*MongoStore, error) {
	if client == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	if dbName == "" {
		dbName = DefaultMongoDatabase
	}
	if colName == "" {
		colName = DefaultMongoCollection
	}
	return &MongoStore{
		client: client,
		col:    client.Database(dbName).Collection(colName),
	}, nil
}

func (m *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error loading %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (m *MongoStore) Save(ctx context.Context, key string, value []byte) error {
	filter := bson.M{"_id": key}
	update := bson.M{
		"$set": bson.M{
			"value":      string(value),
			"updated_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.col.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting %s: %w", key, err)
	}
	return nil
}

func (m *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := m.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("error removing %s: %w", key, err)
	}
	return nil
}

func (m *MongoStore) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect MongoDB: %w", err)
	}
	return nil
}

var _ KVStore = (*MongoStore)(nil)
