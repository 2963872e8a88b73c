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

var ErrPlanNotFound = errors.New("study plan not found")

type PlansRepo struct {
	MongoCollection *mongo.Collection
}

func GetPlansRepo(client *mongo.Client) *PlansRepo {
	return &PlansRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("study_plans"),
	}
}

func (r *PlansRepo) CreatePlan(ctx context.Context, plan *model.StudyPlan) error {
	timer := utils.TrackDBOperation("insert", "study_plans")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, plan)
	return err
}

// GetUserPlans retrieves all of a user's plans, soonest ending first.
func (r *PlansRepo) GetUserPlans(ctx context.Context, userID string) ([]*model.StudyPlan, error) {
	timer := utils.TrackDBOperation("find", "study_plans")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "end_date", Value: 1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*model.StudyPlan
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlansRepo) GetPlan(ctx context.Context, planID string, userID string) (*model.StudyPlan, error) {
	timer := utils.TrackDBOperation("find_one", "study_plans")
	defer timer.ObserveDuration()

	var plan model.StudyPlan
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"_id": planID, "user_id": userID}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// UpdatePlan applies the given field updates and returns the updated
// document.
func (r *PlansRepo) UpdatePlan(ctx context.Context, planID string, userID string, updates bson.M) (*model.StudyPlan, error) {
	timer := utils.TrackDBOperation("update", "study_plans")
	defer timer.ObserveDuration()

	updates["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var plan model.StudyPlan
	err := r.MongoCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": planID, "user_id": userID},
		bson.M{"$set": updates}, opts).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlansRepo) DeletePlan(ctx context.Context, planID string, userID string) error {
	timer := utils.TrackDBOperation("delete", "study_plans")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"_id": planID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPlanNotFound
	}
	return nil
}
