// file: service/permission_service.go

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"go-auth-api/model"
	"go-auth-api/repository"
	"time"
)

// PermissionService serves the read-only group permission lookup, utilizing
// a cache-aside strategy in front of the database.
type PermissionService struct {
	repo        repository.IPermissionRepository
	redisClient ICacheClient
}

// NewPermissionService creates a new PermissionService. The cache client may
// be nil, in which case every lookup goes to the database.
func NewPermissionService(repo repository.IPermissionRepository, redisClient ICacheClient) *PermissionService {
	return &PermissionService{
		repo:        repo,
		redisClient: redisClient,
	}
}

// PermissionsByGroup returns all permission rows for a group in store order.
// An unknown group yields an empty list. No authorization decision is made
// here; callers are already past the access token guard.
func (s *PermissionService) PermissionsByGroup(group string) ([]*model.Permission, error) {
	cacheKey := fmt.Sprintf("permissions:%s", group)
	ctx := context.Background()

	// 1. Try to get data from Redis.
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var permissions []*model.Permission
			if err := json.Unmarshal([]byte(cached), &permissions); err == nil {
				return permissions, nil
			}
		}
	}

	// 2. Cache miss. Fetch from the database.
	permissions, err := s.repo.GetByGroup(group)
	if err != nil {
		return nil, err
	}

	// 3. Store the result in Redis for future requests.
	if s.redisClient != nil {
		if data, err := json.Marshal(permissions); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, 10*time.Minute)
		}
	}

	return permissions, nil
}
