package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// Connect opens a client and returns the named database plus a
// disconnect func for shutdown.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, func() error, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	disconnect := func() error {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return client.Disconnect(disconnectCtx)
	}

	return client.Database(dbName), disconnect, nil
}
