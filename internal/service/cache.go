package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisDb "github.com/captainblair/movie-recommendation-api/db/redis"
	errorHandler "github.com/captainblair/movie-recommendation-api/pkg/error"

	"github.com/redis/go-redis/v9"
)

type ICacheService interface {
	GetCatalogCache(ctx context.Context, key string, dest interface{}) bool
	SetCatalogCache(ctx context.Context, key string, value interface{}, duration time.Duration) error
	IsJwtBlacklisted(ctx context.Context, jti string) (bool, error)
	SetJwtBlacklist(ctx context.Context, jti string, duration time.Duration) error
}

type CacheService struct {
	rdb redis.Cmdable
}

func NewCacheService(rdb redis.Cmdable) *CacheService {
	return &CacheService{rdb: rdb}
}

const (
	jwtDataCachePrefix = "jwtKey:"
	catalogCachePrefix = "tmdb:"
)

//------------------------------------------
//------------------------------------------

// GetCatalogCache decodes a cached catalog payload into dest. Any store
// error is reported and treated as a miss.
func (m *CacheService) GetCatalogCache(ctx context.Context, key string, dest interface{}) bool {
	result, err := m.rdb.Get(ctx, catalogCachePrefix+key).Result()
	if err != nil {
		if !redisDb.IsNil(err) {
			errorMessage := fmt.Sprintf("Redis Error on reading catalog cache: %v", err)
			errorHandler.SaveError(errorMessage, err)
		}
		return false
	}
	if result == "" {
		return false
	}
	if err = json.Unmarshal([]byte(result), dest); err != nil {
		errorMessage := fmt.Sprintf("Redis Error on decoding catalog cache %s: %v", key, err)
		errorHandler.SaveError(errorMessage, err)
		return false
	}
	return true
}

func (m *CacheService) SetCatalogCache(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving catalog cache: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return err
	}
	err = m.rdb.Set(ctx, catalogCachePrefix+key, jsonData, duration).Err()
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving catalog cache: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}

//------------------------------------------
//------------------------------------------

func (m *CacheService) IsJwtBlacklisted(ctx context.Context, jti string) (bool, error) {
	result, err := m.rdb.Get(ctx, jwtDataCachePrefix+jti).Result()
	if err != nil {
		if redisDb.IsNil(err) {
			return false, nil
		}
		return false, err
	}
	return result != "", nil
}

func (m *CacheService) SetJwtBlacklist(ctx context.Context, jti string, duration time.Duration) error {
	err := m.rdb.Set(ctx, jwtDataCachePrefix+jti, "blacklisted", duration).Err()
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving jwt: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
