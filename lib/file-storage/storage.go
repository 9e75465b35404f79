package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"recruitment-backend/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	// UploadResume stores the file under resumes/<candidateID>/ and
	// returns a retrievable URL.
	UploadResume(ctx context.Context, candidateID, fileName string, file []byte) (url string, err error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, candidateID, fileName string, file []byte) (string, error) {
	if i.s3client == nil {
		return "", errors.New("object storage is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Conf.App.CallTimeoutS)*time.Second)
	defer cancel()

	objectName := fmt.Sprintf("resumes/%s/%s-%s", candidateID, uuid.NewString(), fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "resume upload failed")
	}
	return fmt.Sprintf("%s/%s/%s", config.Conf.S3.PublicBaseUrl, config.Conf.S3.BucketName, objectName), nil
}
