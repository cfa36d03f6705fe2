package contract

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

type QuoteRepository interface {
	Create(ctx context.Context, req *dto.CreateQuoteRequest, authorId, authorName string) (string, error)
	Update(ctx context.Context, id string, req *dto.UpdateQuoteRequest) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Quote, error)

	// List applies store-indexable filters server-side and the remaining
	// filters client-side, in a fixed order.
	List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error)

	// Subscribe has List's filter semantics; the full filtered set is pushed
	// on every matching mutation. An empty push means zero results, not an
	// error.
	Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe

	// Dual-representation foreign-key lookups; see the reconciliation layer.
	// A failed sub-query degrades to an empty partial result, so the live
	// variant has no error callback.
	GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error)
	GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error)
	SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe
}
