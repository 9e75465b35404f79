package s3client

import (
	"context"

	"recruitment-backend/config"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// EnsureBucket creates the configured bucket when it does not exist yet.
func EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
