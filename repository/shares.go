package repository

import (
	"context"
	"errors"
	"os"

	"studybuddy/model"
	"studybuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrShareNotFound = errors.New("share not found")

type SharesRepo struct {
	MongoCollection *mongo.Collection
}

func GetSharesRepo(client *mongo.Client) *SharesRepo {
	return &SharesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("note_shares"),
	}
}

// CreateShare records that a note is shared with another user.
func (r *SharesRepo) CreateShare(ctx context.Context, share *model.NoteShare) error {
	timer := utils.TrackDBOperation("insert", "note_shares")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, share)
	return err
}

// GetSharesForUser lists all shares where the user is the recipient,
// newest first.
func (r *SharesRepo) GetSharesForUser(ctx context.Context, userID string) ([]*model.NoteShare, error) {
	timer := utils.TrackDBOperation("find", "note_shares")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"shared_with_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shares []*model.NoteShare
	if err = cursor.All(ctx, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// GetSharesByOwner lists the shares an owner has granted on a note.
func (r *SharesRepo) GetSharesByOwner(ctx context.Context, noteID string, ownerID string) ([]*model.NoteShare, error) {
	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"note_id":  noteID,
		"owner_id": ownerID,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var shares []*model.NoteShare
	if err = cursor.All(ctx, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

// DeleteShare revokes a share. Only the owner may revoke.
func (r *SharesRepo) DeleteShare(ctx context.Context, shareID string, ownerID string) error {
	timer := utils.TrackDBOperation("delete", "note_shares")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":      shareID,
		"owner_id": ownerID,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrShareNotFound
	}
	return nil
}

// DeleteSharesForNote removes every share of a note. Called when the
// note is deleted.
func (r *SharesRepo) DeleteSharesForNote(ctx context.Context, noteID string) error {
	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{"note_id": noteID})
	return err
}
