package repository

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"studybuddy/model"
	"studybuddy/services"
	"studybuddy/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	return &SessionRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("sessions"),
	}
}

func (r *SessionRepo) CreateSession(session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}
	if session.SessionID == "" || session.UserID == "" {
		return fmt.Errorf("invalid session data: missing required fields")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, session); err != nil {
		utils.TrackError("database")
		return fmt.Errorf("failed to create session in database: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Warning: Failed to cache session: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) GetSession(sessionID string) (*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	if services.GlobalSessionCache != nil {
		if session, err := services.GlobalSessionCache.GetSession(sessionID); err == nil && session != nil {
			return session, nil
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var session model.Session
	err := r.MongoCollection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database")
		return nil, fmt.Errorf("failed to fetch session from database: %w", err)
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(&session); err != nil {
			log.Printf("Warning: Failed to cache session: %v", err)
		}
	}

	return &session, nil
}

func (r *SessionRepo) UpdateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"last_activity_at": time.Now(),
			"is_active":        session.IsActive,
			"expires_at":       session.ExpiresAt,
			"device_info":      session.DeviceInfo,
			"ip_address":       session.IPAddress,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"session_id": session.SessionID}, update)
	if err != nil {
		return fmt.Errorf("failed to update session in database: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("session not found")
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.SetSession(session); err != nil {
			log.Printf("Warning: Failed to update session cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) DeleteSession(sessionID string) error {
	timer := utils.TrackDBOperation("delete", "sessions")
	defer timer.ObserveDuration()

	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		utils.TrackError("database")
		return fmt.Errorf("failed to delete session from database: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("session not found")
	}

	if services.GlobalSessionCache != nil {
		if err := services.GlobalSessionCache.DeleteSession(sessionID); err != nil {
			log.Printf("Warning: Failed to delete session from cache: %v", err)
		}
	}

	return nil
}

func (r *SessionRepo) DeleteUserSessions(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := r.MongoCollection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	log.Printf("Deleted %d sessions for user %s", result.DeletedCount, userID)
	return nil
}

// GetUserActiveSessions lists a user's live sessions, most recently
// active first.
func (r *SessionRepo) GetUserActiveSessions(userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"last_activity_at": -1})
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{
			"user_id":    userID,
			"is_active":  true,
			"expires_at": bson.M{"$gt": time.Now()},
		}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	return sessions, nil
}
