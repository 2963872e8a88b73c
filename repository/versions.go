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

var ErrVersionNotFound = errors.New("version not found")

type VersionsRepo struct {
	MongoCollection *mongo.Collection
}

func GetVersionsRepo(client *mongo.Client) *VersionsRepo {
	return &VersionsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("note_versions"),
	}
}

// CreateVersion stores a snapshot of a note's title and content.
func (r *VersionsRepo) CreateVersion(ctx context.Context, version *model.NoteVersion) error {
	timer := utils.TrackDBOperation("insert", "note_versions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, version)
	return err
}

// GetNoteVersions lists a note's snapshots, newest first.
func (r *VersionsRepo) GetNoteVersions(ctx context.Context, noteID string, userID string) ([]*model.NoteVersion, error) {
	timer := utils.TrackDBOperation("find", "note_versions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{
		"note_id": noteID,
		"user_id": userID,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var versions []*model.NoteVersion
	if err = cursor.All(ctx, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetVersion retrieves a single snapshot owned by the user.
func (r *VersionsRepo) GetVersion(ctx context.Context, versionID string, userID string) (*model.NoteVersion, error) {
	var version model.NoteVersion
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     versionID,
		"user_id": userID,
	}).Decode(&version)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrVersionNotFound
		}
		return nil, err
	}
	return &version, nil
}

// DeleteNoteVersions removes all snapshots of a note. Called when the
// note itself is deleted.
func (r *VersionsRepo) DeleteNoteVersions(ctx context.Context, noteID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "note_versions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteMany(ctx, bson.M{
		"note_id": noteID,
		"user_id": userID,
	})
	return err
}
