package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"studybuddy/model"
	"studybuddy/utils"

	"github.com/redis/go-redis/v9"
)

// NoteFeed is the change-feed broker. Every committed note mutation is
// published on the owner's channel; subscribers receive events in
// publish order. Events are fire-and-forget: a publish failure never
// fails the mutation that produced it.
type NoteFeed struct {
	client *redis.Client
}

var GlobalNoteFeed *NoteFeed

// NewNoteFeed connects the feed broker to Redis.
func NewNoteFeed(redisURL string) (*NoteFeed, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &NoteFeed{client: client}, nil
}

func feedChannel(userID string) string {
	return "feed:notes:" + userID
}

// Publish sends a change event to the user's feed channel. Errors are
// logged and swallowed.
func (f *NoteFeed) Publish(ctx context.Context, userID string, event model.FeedEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Warning: failed to marshal feed event: %v", err)
		return
	}

	if err := f.client.Publish(ctx, feedChannel(userID), data).Err(); err != nil {
		utils.TrackError("feed_publish")
		log.Printf("Warning: failed to publish feed event: %v", err)
		return
	}

	utils.TrackFeedEvent(event.Type)
}

// Subscribe opens a feed subscription for the user. The returned cancel
// function must be called on every exit path; it closes both the Redis
// subscription and the event channel.
func (f *NoteFeed) Subscribe(ctx context.Context, userID string) (<-chan model.FeedEvent, func()) {
	sub := f.client.Subscribe(ctx, feedChannel(userID))
	events := make(chan model.FeedEvent, 16)

	utils.FeedSubscribers.Inc()

	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event model.FeedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Warning: dropping malformed feed event: %v", err)
				continue
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() {
		utils.FeedSubscribers.Dec()
		if err := sub.Close(); err != nil {
			log.Printf("Warning: failed to close feed subscription: %v", err)
		}
	}

	return events, cancel
}
