package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/client/dashapi"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

type IDashboardService interface {
	GetDashboard(ctx context.Context, token string) (*dto.DashboardResponse, error)
}

// dashboardService caches backend aggregates briefly so a dashboard that
// polls does not hammer the upstream API.
type dashboardService struct {
	dashClient *dashapi.Client
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewDashboardService(dashClient *dashapi.Client, log logger.ILogger) IDashboardService {
	return &dashboardService{
		dashClient: dashClient,
		cache:      cache.New(1*time.Minute, 5*time.Minute),
		logger:     log,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, token string) (*dto.DashboardResponse, error) {
	key := cacheKey(token)
	if cached, found := s.cache.Get(key); found {
		return cached.(*dto.DashboardResponse), nil
	}

	res, err := s.dashClient.Fetch(ctx, token)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, res, cache.DefaultExpiration)
	return res, nil
}

// cacheKey hashes the token so raw credentials never sit in the cache index.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "dashboard:" + hex.EncodeToString(sum[:8])
}
