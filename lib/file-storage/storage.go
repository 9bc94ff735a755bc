package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"recruit-flow-backend/config"
)

type Provider interface {
	// UploadResume stores the resume document and returns its object key.
	// Every upload gets a fresh key so earlier resumes stay retrievable.
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) (objectKey string, err error)
	GetResume(ctx context.Context, objectKey string) ([]byte, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s%s", candidateID, uuid.NewString(), path.Ext(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (i impl) GetResume(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}
