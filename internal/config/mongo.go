package config

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoClient is the process-wide document store handle. It is built once in
// main, handed to the repositories, and closed on shutdown.
type MongoClient struct {
	client *mongo.Client
	dbName string
}

func InitMongo(ctx context.Context, cfg *Config) (*MongoClient, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("✅ MongoDB connected successfully")

	return &MongoClient{client: client, dbName: cfg.Mongo.DBName}, nil
}

// Collection returns a named collection of the configured database.
func (m *MongoClient) Collection(name string) *mongo.Collection {
	return m.client.Database(m.dbName).Collection(name)
}

func (m *MongoClient) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}
