package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"Backend-FormCraft/src/logger"
)

// Collection names.
const (
	UsersCollection     = "users"
	FormsCollection     = "forms"
	ResponsesCollection = "responses"
	ViewsCollection     = "views"
)

var (
	client     *mongo.Client
	db         *mongo.Database
	once       sync.Once // ConnectMongoDB runs once per process
	connectErr error
)

// ConnectMongoDB connects, pings and ensures indexes exactly once.
func ConnectMongoDB(uri, dbName string) (*mongo.Database, error) {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		clientOptions := options.Client().ApplyURI(uri).SetServerSelectionTimeout(15 * time.Second)
		client, connectErr = mongo.Connect(ctx, clientOptions)
		if connectErr != nil {
			logger.Errorf("❌ Failed to connect to MongoDB: %v", connectErr)
			return
		}

		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			logger.Errorf("❌ MongoDB ping failed: %v", connectErr)
			return
		}

		db = client.Database(dbName)
		if connectErr = EnsureIndexes(ctx, db); connectErr != nil {
			logger.Errorf("❌ Failed to create indexes: %v", connectErr)
			return
		}
		logger.Infof("✅ MongoDB connected successfully (db=%s)", dbName)
	})
	return db, connectErr
}

// EnsureIndexes creates the lookup indexes used by the services.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	if database == nil {
		return errors.New("mongo database is nil")
	}
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		FormsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "updatedAt", Value: -1}}},
		},
		ResponsesCollection: {
			{Keys: bson.D{{Key: "form", Value: 1}, {Key: "submittedAt", Value: -1}}},
			{Keys: bson.D{{Key: "form", Value: 1}, {Key: "meta.ip", Value: 1}}},
		},
		ViewsCollection: {
			{Keys: bson.D{{Key: "form", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
	for name, idx := range specs {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

// Disconnect closes the client if it was opened.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
