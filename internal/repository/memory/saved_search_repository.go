package memory

import (
	"context"
	"sync"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
)

// SavedSearchRepository is the in-process fallback used when Redis is not
// available. State is lost on restart, which only costs the user a default
// filter set.
type SavedSearchRepository struct {
	mu      sync.RWMutex
	filters map[string]dto.QuoteFilters
}

func NewSavedSearchRepository() contract.SavedSearchRepository {
	return &SavedSearchRepository{
		filters: make(map[string]dto.QuoteFilters),
	}
}

func (r *SavedSearchRepository) Save(ctx context.Context, userId string, filters dto.QuoteFilters) error {
	r.mu.Lock()
	r.filters[userId] = filters
	r.mu.Unlock()
	return nil
}

func (r *SavedSearchRepository) Load(ctx context.Context, userId string) (*dto.QuoteFilters, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	filters, ok := r.filters[userId]
	if !ok {
		return nil, nil
	}
	return &filters, nil
}
