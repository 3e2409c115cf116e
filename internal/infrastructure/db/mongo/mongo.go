// Package mongo wires the MongoDB persistence layer: the users collection and
// the two review collections that are always replaced together during an
// academic-year transition.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

const (
	// defaultTimeout bounds individual repository calls.
	defaultTimeout = 10 * time.Second
	// connectTimeout bounds the initial dial and ping.
	connectTimeout = 10 * time.Second
)

// Config captures the settings required to reach the review store.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// clientOptions builds the driver options. Majority read and write concerns
// match the session transaction the roster swap runs in: a committed swap must
// be visible to every subsequent read.
func clientOptions(cfg Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Majority()).
		SetRetryWrites(true)
}

// Connect establishes the client, verifies connectivity with a ping, and
// returns the selected database. The deployment must be a replica set:
// ReviewRepository.ReplaceAll runs inside a transaction, which standalone
// servers reject.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
