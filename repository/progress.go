package repository

import (
	"context"
	"os"
	"time"

	"studybuddy/model"
	"studybuddy/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepo struct {
	MongoCollection *mongo.Collection
}

func GetProgressRepo(client *mongo.Client) *ProgressRepo {
	return &ProgressRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("progress_logs"),
	}
}

// AddMinutes adds study minutes to the user's log row for the given
// day, creating the row if it does not exist yet.
func (r *ProgressRepo) AddMinutes(ctx context.Context, userID string, date string, minutes int) error {
	timer := utils.TrackDBOperation("update", "progress_logs")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "date": date}
	update := bson.M{
		"$inc": bson.M{"minutes": minutes},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": time.Now(),
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	return err
}

// IncrementCounter bumps a per-day counter field such as
// "notes_created" or "quizzes_done".
func (r *ProgressRepo) IncrementCounter(ctx context.Context, userID string, date string, field string) error {
	timer := utils.TrackDBOperation("update", "progress_logs")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID, "date": date}
	update := bson.M{
		"$inc": bson.M{field: 1},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": time.Now(),
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update,
		options.Update().SetUpsert(true))
	return err
}

// GetUserLogs retrieves the user's progress rows on or after the given
// day (formatted 2006-01-02), newest day first.
func (r *ProgressRepo) GetUserLogs(ctx context.Context, userID string, since string) ([]*model.ProgressLog, error) {
	timer := utils.TrackDBOperation("find", "progress_logs")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	filter := bson.M{"user_id": userID, "date": bson.M{"$gte": since}}
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []*model.ProgressLog
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
