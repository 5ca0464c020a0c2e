package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-go/service-api/internal/models"
)

// memServiceRepo keeps services in insertion order.
type memServiceRepo struct {
	mu       sync.Mutex
	ids      []primitive.ObjectID
	docs     map[primitive.ObjectID]models.Service
	getCalls int
	err      error
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{docs: map[primitive.ObjectID]models.Service{}}
}

func (r *memServiceRepo) GetAll(_ context.Context, limit int64) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Service{}
	for _, id := range r.ids {
		if limit > 0 && int64(len(out)) == limit {
			break
		}
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *memServiceRepo) GetByID(_ context.Context, id primitive.ObjectID) (models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.err != nil {
		return nil, r.err
	}
	return r.docs[id], nil
}

func (r *memServiceRepo) Create(_ context.Context, service models.Service) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	id := primitive.NewObjectID()
	doc := models.Service{"_id": id}
	for k, v := range service {
		doc[k] = v
	}
	r.ids = append(r.ids, id)
	r.docs[id] = doc
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// memCache stores JSON like the Redis client does.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	err     error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	data, ok := c.entries[key]
	if !ok {
		return models.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *memCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type fakeReviewRepo struct {
	created    []models.Review
	updatedID  primitive.ObjectID
	updateText string
	deletedID  primitive.ObjectID
	err        error
}

func (r *fakeReviewRepo) Create(_ context.Context, review models.Review) (*models.InsertResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, review)
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (r *fakeReviewRepo) GetByServiceID(_ context.Context, serviceID string) ([]models.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []models.Review{{models.FieldServiceID: serviceID}}, nil
}

func (r *fakeReviewRepo) GetByServiceOrEmail(_ context.Context, serviceID, email string) ([]models.Review, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []models.Review{{models.FieldServiceID: serviceID}, {models.FieldEmail: email}}, nil
}

func (r *fakeReviewRepo) UpdateText(_ context.Context, id primitive.ObjectID, text string) (*models.UpdateResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.updatedID, r.updateText = id, text
	return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.deletedID = id
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type fakeSigner struct {
	payload map[string]interface{}
}

func (s *fakeSigner) GenerateToken(payload map[string]interface{}) (string, error) {
	s.payload = payload
	return "signed-token", nil
}

type fakeObjectStore struct {
	bucket, object, contentType string
	body                        []byte
	err                         error
}

func (s *fakeObjectStore) PutObject(_ context.Context, bucketName, objectName string, reader io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if s.err != nil {
		return minio.UploadInfo{}, s.err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	s.bucket, s.object, s.contentType, s.body = bucketName, objectName, opts.ContentType, body
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(body))}, nil
}

type fakeMediaRepo struct {
	saved []*models.ServiceMedia
}

func (r *fakeMediaRepo) Save(_ context.Context, media *models.ServiceMedia) error {
	media.ID = primitive.NewObjectID()
	r.saved = append(r.saved, media)
	return nil
}

func (r *fakeMediaRepo) GetByServiceID(_ context.Context, serviceID string) ([]models.ServiceMedia, error) {
	out := []models.ServiceMedia{}
	for _, m := range r.saved {
		if m.ServiceID == serviceID {
			out = append(out, *m)
		}
	}
	return out, nil
}

var errStore = errors.New("store down")
