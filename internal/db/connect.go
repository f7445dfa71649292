package db

import (
	"context"
	"time"

	"taskboard/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a Mongo client, verifies the connection and ensures the
// unique email index on the users collection. Fatal on failure; the server
// cannot run without its store.
func Connect(uri, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal("failed to create mongo client", "error", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping mongo", "error", err)
	}

	database := client.Database(dbName)

	// Duplicate registrations are rejected by the store even when two
	// requests race past the service-level existence check.
	_, err = database.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Fatal("failed to create unique email index", "error", err)
	}

	logger.Info("database connected", "db", dbName)
	return database
}

// Close disconnects the underlying client.
func Close(database *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Client().Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect mongo", "error", err)
	}
}
