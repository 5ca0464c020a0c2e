package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travel-go/service-api/internal/models"
)

const (
	detailKeyPrefix = "services:detail:"
	listKeyPrefix   = "services:list:"
)

type ServiceRepository interface {
	GetAll(ctx context.Context, limit int64) ([]models.Service, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Service, error)
	Create(ctx context.Context, service models.Service) (*models.InsertResult, error)
}

// Cache is the subset of utils.RedisClient the catalog needs. Values go
// through JSON, so a cached service holds _id as a hex string and numbers as
// float64 rather than the store's BSON types.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// CatalogService serves travel services. With a cache attached, reads go
// cache-aside; cache failures are logged and never fail the request.
type CatalogService struct {
	repo  ServiceRepository
	cache Cache
	ttl   time.Duration
}

func NewCatalogService(repo ServiceRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// WithCache attaches a cache whose entries live for ttl.
func (s *CatalogService) WithCache(cache Cache, ttl time.Duration) *CatalogService {
	s.cache = cache
	s.ttl = ttl
	return s
}

// ListServices returns at most limit services; limit <= 0 returns all.
func (s *CatalogService) ListServices(ctx context.Context, limit int64) ([]models.Service, error) {
	if limit < 0 {
		limit = 0
	}
	key := listKeyPrefix + strconv.FormatInt(limit, 10)

	var cached []models.Service
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	services, err := s.repo.GetAll(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	s.cacheSet(ctx, key, services)
	return services, nil
}

// GetService returns nil when the service does not exist.
func (s *CatalogService) GetService(ctx context.Context, id string) (models.Service, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidID
	}
	key := detailKeyPrefix + objID.Hex()

	var cached models.Service
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	service, err := s.repo.GetByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", id, err)
	}
	if service != nil {
		s.cacheSet(ctx, key, service)
	}
	return service, nil
}

func (s *CatalogService) AddService(ctx context.Context, service models.Service) (*models.InsertResult, error) {
	res, err := s.repo.Create(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("add service: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeletePrefix(ctx, listKeyPrefix); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to invalidate service listings")
		}
	}
	return res, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, models.ErrCacheMiss) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	return false
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}
