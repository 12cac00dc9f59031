package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyagebj-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bsonObjectTooLarge is the server error code for an oversized document
const bsonObjectTooLarge = 10334

// NewMongoClient creates a new MongoDB client
func NewMongoClient(ctx context.Context, uri, username, password string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	if username != "" && password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: username,
			Password: password,
		})
	}

	// Set connection timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to check connection
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client, nil
}

// GetDatabase gets a database from the client
func GetDatabase(client *mongo.Client, name string) *mongo.Database {
	return client.Database(name)
}

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoMedium keeps each key as one document of a collection
type MongoMedium struct {
	collection    *mongo.Collection
	maxValueBytes int64
}

// NewMongoMedium creates a medium over db.collection. Values larger than
// maxValueBytes are refused with a quota error; zero means no client-side limit.
func NewMongoMedium(db *mongo.Database, collection string, maxValueBytes int64) *MongoMedium {
	return &MongoMedium{
		collection:    db.Collection(collection),
		maxValueBytes: maxValueBytes,
	}
}

// Get finds the document for key
func (m *MongoMedium) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

// Set upserts the document for key
func (m *MongoMedium) Set(ctx context.Context, key, value string) error {
	if m.maxValueBytes > 0 && int64(len(value)) > m.maxValueBytes {
		return fmt.Errorf("value for %q is %d bytes, limit %d: %w", key, len(value), m.maxValueBytes, repository.ErrQuotaExceeded)
	}

	_, err := m.collection.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now()}},
		options.Update().SetUpsert(true),
	)
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) && serverErr.HasErrorCode(bsonObjectTooLarge) {
		return fmt.Errorf("value for %q too large: %w", key, repository.ErrQuotaExceeded)
	}
	return err
}

// Remove deletes the document for key
func (m *MongoMedium) Remove(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
