package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"studybuddy/model"
	"studybuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfilesRepo struct {
	MongoCollection *mongo.Collection
}

func GetProfilesRepo(client *mongo.Client) *ProfilesRepo {
	return &ProfilesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("profiles"),
	}
}

// GetProfile retrieves a user's profile row.
func (r *ProfilesRepo) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	timer := utils.TrackDBOperation("find", "profiles")
	defer timer.ObserveDuration()

	var profile model.Profile
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the profile row if missing, otherwise leaves
// the existing row untouched. Returns the canonical row.
func (r *ProfilesRepo) UpsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	timer := utils.TrackDBOperation("update", "profiles")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"email":          profile.Email,
			"display_name":   profile.DisplayName,
			"is_premium":     false,
			"has_seen_intro": false,
			"created_at":     time.Now(),
			"updated_at":     time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result model.Profile
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProfile applies a partial update to the profile row.
func (r *ProfilesRepo) UpdateProfile(ctx context.Context, userID string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", "profiles")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}
