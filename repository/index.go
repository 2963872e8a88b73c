package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_notes_recency").
				SetUnique(false),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "category", Value: 1},
			},
			Options: options.Index().
				SetName("user_category"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "tags", Value: 1},
			},
			Options: options.Index().
				SetName("user_tags"),
		},
	}

	versionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "note_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("note_versions_recency"),
		},
	}

	shareIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "shared_with_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().
				SetName("shares_recipient"),
		},
		{
			Keys: bson.D{
				{Key: "note_id", Value: 1},
				{Key: "owner_id", Value: 1},
			},
			Options: options.Index().
				SetName("shares_owner_note"),
		},
	}

	progressIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: -1},
			},
			Options: options.Index().
				SetName("user_progress_day").
				SetUnique(true),
		},
	}

	planIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "end_date", Value: 1},
			},
			Options: options.Index().
				SetName("user_plans_deadline"),
		},
	}

	fileIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "uploaded_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_files_recency"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "note_id", Value: 1},
			},
			Options: options.Index().
				SetName("user_note_files"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().
				SetName("session_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "last_activity_at", Value: -1},
			},
			Options: options.Index().
				SetName("user_sessions_activity"),
		},
	}

	for collection, indexes := range map[string][]mongo.IndexModel{
		"notes":         noteIndexes,
		"note_versions": versionIndexes,
		"note_shares":   shareIndexes,
		"progress_logs": progressIndexes,
		"study_plans":   planIndexes,
		"files":         fileIndexes,
		"users":         userIndexes,
		"sessions":      sessionIndexes,
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", collection, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
