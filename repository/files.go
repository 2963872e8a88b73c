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

var ErrFileNotFound = errors.New("file not found")

type FilesRepo struct {
	MongoCollection *mongo.Collection
}

func GetFilesRepo(client *mongo.Client) *FilesRepo {
	return &FilesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("files"),
	}
}

// CreateFile records an uploaded file's metadata.
func (r *FilesRepo) CreateFile(ctx context.Context, file *model.FileRecord) error {
	timer := utils.TrackDBOperation("insert", "files")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, file)
	return err
}

// GetUserFiles lists a user's files, newest first. When noteID is
// non-empty the listing is restricted to that note's attachments.
func (r *FilesRepo) GetUserFiles(ctx context.Context, userID string, noteID string) ([]*model.FileRecord, error) {
	timer := utils.TrackDBOperation("find", "files")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": userID}
	if noteID != "" {
		filter["note_id"] = noteID
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*model.FileRecord
	if err = cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetFile retrieves one file record owned by the user.
func (r *FilesRepo) GetFile(ctx context.Context, fileID string, userID string) (*model.FileRecord, error) {
	var file model.FileRecord
	err := r.MongoCollection.FindOne(ctx, bson.M{
		"_id":     fileID,
		"user_id": userID,
	}).Decode(&file)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

// DeleteFile removes a file record.
func (r *FilesRepo) DeleteFile(ctx context.Context, fileID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "files")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     fileID,
		"user_id": userID,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrFileNotFound
	}
	return nil
}
