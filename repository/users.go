package repository

import (
	"context"
	"errors"
	"os"

	"studybuddy/model"
	"studybuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUserNotFound = errors.New("user not found")

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(client *mongo.Client) *UsersRepo {
	return &UsersRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

// AddUser inserts a new user row. Email and username must be unique.
func (r *UsersRepo) AddUser(ctx context.Context, user *model.User) (string, error) {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"username": user.Username},
			{"email": user.Email},
		},
	})
	if err != nil {
		return "", err
	}
	if count > 0 {
		return "", errors.New("username or email already exists")
	}

	_, err = r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return user.UserID, nil
}

// FindUser looks a user up by username.
func (r *UsersRepo) FindUser(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByEmail looks a user up by email address. Used when sharing
// a note with another account.
func (r *UsersRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID looks a user up by id.
func (r *UsersRepo) FindUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
