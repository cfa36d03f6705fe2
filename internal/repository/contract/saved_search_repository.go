package contract

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
)

// SavedSearchRepository persists each user's quote filter state under a fixed
// key so it survives a reload and seeds the first subscription on reconnect.
type SavedSearchRepository interface {
	Save(ctx context.Context, userId string, filters dto.QuoteFilters) error
	Load(ctx context.Context, userId string) (*dto.QuoteFilters, error)
}
