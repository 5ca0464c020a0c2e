package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-go/service-api/internal/models"
)

type MediaRepository interface {
	Save(ctx context.Context, media *models.ServiceMedia) error
	GetByServiceID(ctx context.Context, serviceID string) ([]models.ServiceMedia, error)
}

// ObjectStore is satisfied by *minio.Client.
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

type MediaService struct {
	repo      MediaRepository
	store     ObjectStore
	bucket    string
	publicURL string
	now       func() time.Time
}

func NewMediaService(r MediaRepository, store ObjectStore, bucket, publicURL string) *MediaService {
	return &MediaService{
		repo:      r,
		store:     store,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}
}

func (s *MediaService) UploadMedia(ctx context.Context, serviceID string, file io.Reader, filename, contentType string, size int64) (*models.ServiceMedia, error) {
	if _, err := primitive.ObjectIDFromHex(serviceID); err != nil {
		return nil, models.ErrInvalidID
	}

	uploadedAt := s.now().UTC()
	objectName := fmt.Sprintf("services/%s/%s_%s", serviceID, uploadedAt.Format("20060102150405"), path.Base("/"+filename))
	_, err := s.store.PutObject(ctx, s.bucket, objectName, file, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("store object: %w", err)
	}

	media := &models.ServiceMedia{
		ServiceID:   serviceID,
		URL:         s.publicURL + "/" + s.bucket + "/" + objectName,
		ContentType: contentType,
		Size:        size,
		UploadedAt:  uploadedAt,
	}
	if err := s.repo.Save(ctx, media); err != nil {
		return nil, fmt.Errorf("save media: %w", err)
	}
	return media, nil
}

func (s *MediaService) GetMediaByService(ctx context.Context, serviceID string) ([]models.ServiceMedia, error) {
	return s.repo.GetByServiceID(ctx, serviceID)
}
