// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-hub/internal/config"
	"github.com/MKhiriev/course-hub/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB wraps the client and the database holding the four collections.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("error occurred during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// EnsureIndexes creates the unique uid index on users. It is the Mongo
// counterpart of the SQL migrations and is safe to run on every start.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.Collection(usersTable).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uid_unique"),
	})
	if err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Msg("error creating users index")
		return fmt.Errorf("error creating users index: %w", err)
	}

	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
