package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"hrhub/internal/models"
)

type CacheService interface {
	// Resolved tenant config, keyed by subdomain. A nil, nil return is a
	// cache miss.
	GetTenantConfig(ctx context.Context, subdomain string) (*models.TenantConfig, error)
	SetTenantConfig(ctx context.Context, subdomain string, config *models.TenantConfig, ttl time.Duration) error
	DeleteTenantConfig(ctx context.Context, subdomain string) error

	// Generic string operations for refresh token storage
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port style addresses as well as plain host:port
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         parsedAddr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func tenantConfigKey(subdomain string) string {
	return fmt.Sprintf("hrhub:tenant_config:%s", strings.ToLower(subdomain))
}

func (r *redisCacheService) GetTenantConfig(ctx context.Context, subdomain string) (*models.TenantConfig, error) {
	data, err := r.client.Get(ctx, tenantConfigKey(subdomain)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var config models.TenantConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *redisCacheService) SetTenantConfig(ctx context.Context, subdomain string, config *models.TenantConfig, ttl time.Duration) error {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, tenantConfigKey(subdomain), data, ttl).Err()
}

func (r *redisCacheService) DeleteTenantConfig(ctx context.Context, subdomain string) error {
	return r.client.Del(ctx, tenantConfigKey(subdomain)).Err()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
