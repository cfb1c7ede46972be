package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes every collection relies on. Safe to run
// repeatedly.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "votes.participant", Value: 1}}},
		},
		collectionCountries: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionCompetitions: {
			{Keys: bson.D{{Key: "year", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionParticipants: {
			{Keys: bson.D{{Key: "year", Value: 1}}},
			{Keys: bson.D{{Key: "votes.user", Value: 1}}},
		},
		collectionVoteEvents: {
			{Keys: bson.D{{Key: "participant", Value: 1}, {Key: "occurredAt", Value: -1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
