// internal/database/indexes.go
package database

import (
	"context"

	"go.uber.org/zap"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *MongoDB) CreateIndexes(ctx context.Context) error {
	zap.L().Debug("Creating database indexes")

	usersCollection := m.GetCollection("users")
	if err := m.createUsersIndexes(ctx, usersCollection); err != nil {
		return err
	}

	zap.L().Info("Database indexes created successfully")
	return nil
}

func (m *MongoDB) createUsersIndexes(ctx context.Context, collection *mongo.Collection) error {
	// Email is the sole account key; keep it unique.
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
