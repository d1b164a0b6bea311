package theme

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStorage struct {
	collection *mongo.Collection
}

type dbPreference struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

func NewMongoStorage(c *mongo.Collection) *MongoStorage {
	return &MongoStorage{collection: c}
}

func (m *MongoStorage) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	var p dbPreference
	sr := m.collection.FindOne(ctx, bson.M{"_id": key})
	if sr.Err() == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err := sr.Decode(&p); err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return p.Value, true, nil
}

func (m *MongoStorage) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()

	p := dbPreference{Key: key, Value: value}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, p, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
