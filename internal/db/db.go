package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/config"
)

// Store owns the Mongo client and the collection handles the repositories use.
type Store struct {
	client *mongo.Client

	Products *mongo.Collection
	Orders   *mongo.Collection
	Cart     *mongo.Collection
}

// Open connects to Mongo and verifies the connection with a single ping.
// A ping failure is returned, not fatal: the caller keeps the Store and the
// read paths degrade to fallback data until the database comes back.
func Open(cfg config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	database := client.Database(cfg.MongoDB)
	s := &Store{
		client:   client,
		Products: database.Collection("products"),
		Orders:   database.Collection("orders"),
		Cart:     database.Collection("cart"),
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return s, fmt.Errorf("ping mongo: %w", err)
	}

	return s, nil
}

// Ping reports whether the database is currently reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
