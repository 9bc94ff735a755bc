package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "recruit-flow-backend/lib/file-storage"
	s3client "recruit-flow-backend/s3"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("s3 client initialization failed")
		return
	}
	if err := s3client.EnsureBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("s3 resume bucket not available")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("s3 client initialized")
}
