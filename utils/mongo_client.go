package utils

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the shared MongoDB client, initialized once at startup.
var MongoClient *mongo.Client

// InitMongoClient connects to MongoDB using MONGO_URI and verifies the
// connection with a ping.
func InitMongoClient() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MongoDB URI is not set")
	}

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetMaxPoolSize(GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10)).
		SetMaxConnIdleTime(time.Duration(GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second)

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	MongoClient = client
}
