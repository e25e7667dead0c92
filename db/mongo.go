package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bloglist/config"
	"bloglist/logger"
)

// Connect dials MongoDB, verifies the connection and makes sure the
// collection indexes exist. The returned client and database are passed
// explicitly to the components that need them.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	database := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, database); err != nil {
		return nil, nil, err
	}
	logger.Log.Info("MongoDB connected and indexes ensured")

	return client, database, nil
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// users: unique index on username. Concurrent registrations race on this
	// index, not on an in-process existence check.
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		}
		if _, err := d.Collection("users").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	// blogs: index on the owning user reference
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetName("idx_user"),
		}
		if _, err := d.Collection("blogs").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}

	return nil
}
