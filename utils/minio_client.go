package utils

import (
	"context"
	"log"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient is the shared object-storage client, initialized once at
// startup.
var MinioClient *minio.Client

// InitMinioClient connects to the MinIO endpoint and makes sure the
// files bucket exists.
func InitMinioClient() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Fatal("MinIO endpoint is not set")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			"",
		),
		Secure: GetEnvAsBool("MINIO_USE_SSL", false),
	})
	if err != nil {
		log.Fatal("Failed to connect to MinIO:", err)
	}

	bucket := GetEnvAsString("MINIO_BUCKET", "files")
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatal("Failed to check MinIO bucket:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("Failed to create MinIO bucket:", err)
		}
	}

	MinioClient = client
}
