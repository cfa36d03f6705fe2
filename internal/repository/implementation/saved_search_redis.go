package implementation

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
)

// savedSearchKeyPrefix is the fixed storage key name; the client relies on it
// across reloads.
const savedSearchKeyPrefix = "quote_search_filters:"

type RedisSavedSearchRepository struct {
	rdb *redis.Client
}

func NewRedisSavedSearchRepository(rdb *redis.Client) contract.SavedSearchRepository {
	return &RedisSavedSearchRepository{rdb: rdb}
}

func (r *RedisSavedSearchRepository) Save(ctx context.Context, userId string, filters dto.QuoteFilters) error {
	payload, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, savedSearchKeyPrefix+userId, payload, 0).Err()
}

func (r *RedisSavedSearchRepository) Load(ctx context.Context, userId string) (*dto.QuoteFilters, error) {
	payload, err := r.rdb.Get(ctx, savedSearchKeyPrefix+userId).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var filters dto.QuoteFilters
	if err := json.Unmarshal(payload, &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}
