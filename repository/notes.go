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

var ErrNoteNotFound = errors.New("note not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// SearchOptions describes a server-side filtered note query.
type SearchOptions struct {
	UserID   string
	Query    string    // matches title, content or tags
	Category string    // equality
	Tags     []string  // containment: every requested tag must be present
	DateFrom time.Time // created_at range
	DateTo   time.Time
	SortBy   string // "updated", "created" or "title"
}

// CreateNote inserts a new note row.
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// GetUserNotes retrieves all notes for a user, most recently updated
// first.
func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var notes []*model.Note
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote retrieves a specific note owned by the user.
func (r *NotesRepo) GetNote(ctx context.Context, noteID string, userID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// GetNoteAny retrieves a note by id regardless of owner. Used when
// resolving shared notes.
func (r *NotesRepo) GetNoteAny(ctx context.Context, noteID string) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a partial update and returns the canonical
// post-update row.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID string, userID string, fields bson.M) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	fields["updated_at"] = time.Now()

	filter := bson.M{
		"_id":     noteID,
		"user_id": userID,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteNote deletes a specific note.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{
		"_id":     noteID,
		"user_id": userID,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// SearchNotes runs a filtered query. Alphabetical title sort is
// ascending, recency sorts are descending.
func (r *NotesRepo) SearchNotes(ctx context.Context, opts SearchOptions) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"user_id": opts.UserID}

	if opts.Query != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": opts.Query, "$options": "i"}},
			{"content": bson.M{"$regex": opts.Query, "$options": "i"}},
			{"tags": bson.M{"$regex": opts.Query, "$options": "i"}},
		}
	}

	if opts.Category != "" {
		filter["category"] = opts.Category
	}

	if len(opts.Tags) > 0 {
		filter["tags"] = bson.M{"$all": opts.Tags}
	}

	created := bson.M{}
	if !opts.DateFrom.IsZero() {
		created["$gte"] = opts.DateFrom
	}
	if !opts.DateTo.IsZero() {
		created["$lte"] = opts.DateTo
	}
	if len(created) > 0 {
		filter["created_at"] = created
	}

	var sort bson.D
	switch opts.SortBy {
	case "title":
		sort = bson.D{{Key: "title", Value: 1}}
	case "created":
		sort = bson.D{{Key: "created_at", Value: -1}}
	default:
		sort = bson.D{{Key: "updated_at", Value: -1}}
	}

	findOpts := options.Find().SetSort(sort)

	var notes []*model.Note
	cursor, err := r.MongoCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetUserCategories lists the distinct non-empty categories of a user's
// notes.
func (r *NotesRepo) GetUserCategories(ctx context.Context, userID string) ([]string, error) {
	values, err := r.MongoCollection.Distinct(ctx, "category", bson.M{
		"user_id":  userID,
		"category": bson.M{"$ne": ""},
	})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// CountUserNotes counts the number of notes for a user.
func (r *NotesRepo) CountUserNotes(ctx context.Context, userID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
