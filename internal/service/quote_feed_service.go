package service

import (
	"context"
	"sync"
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/utils"
)

// savedFiltersDelay is the quiet period before a filter change is persisted.
const savedFiltersDelay = 800 * time.Millisecond

// FeedState is the snapshot pushed to a feed consumer. During a resubscribe
// Loading is true and Quotes still holds the previous list; after a
// subscription failure Error is set and the list stays frozen.
type FeedState struct {
	Quotes  []entity.Quote `json:"quotes"`
	Loading bool           `json:"loading"`
	Error   string         `json:"error,omitempty"`
}

type IQuoteFeedService interface {
	Open(ctx context.Context, userId string, filters dto.QuoteFilters, push func(FeedState)) *FeedSession
	LoadSavedFilters(ctx context.Context, userId string) (*dto.QuoteFilters, error)
}

type quoteFeedService struct {
	quoteService IQuoteService
	savedSearch  contract.SavedSearchRepository
	logger       logger.ILogger
}

func NewQuoteFeedService(
	quoteService IQuoteService,
	savedSearch contract.SavedSearchRepository,
	log logger.ILogger,
) IQuoteFeedService {
	return &quoteFeedService{
		quoteService: quoteService,
		savedSearch:  savedSearch,
		logger:       log,
	}
}

func (s *quoteFeedService) LoadSavedFilters(ctx context.Context, userId string) (*dto.QuoteFilters, error) {
	return s.savedSearch.Load(ctx, userId)
}

// Open starts a feed session for one consumer. The initial filter set is
// applied immediately; the caller owns the session and must Close it.
func (s *quoteFeedService) Open(ctx context.Context, userId string, filters dto.QuoteFilters, push func(FeedState)) *FeedSession {
	session := &FeedSession{
		ctx:     ctx,
		userId:  userId,
		service: s.quoteService,
		saved:   s.savedSearch,
		logger:  s.logger,
		push:    push,
		persist: utils.NewDebouncer(savedFiltersDelay),
	}
	session.apply(filters, true)
	return session
}

// FeedSession is one consumer's live view over the quote collection. List
// changes only ever arrive through subscription pushes; mutations done
// through the quote service are never applied optimistically here.
type FeedSession struct {
	ctx     context.Context
	userId  string
	service IQuoteService
	saved   contract.SavedSearchRepository
	logger  logger.ILogger
	push    func(FeedState)
	persist *utils.Debouncer

	mu          sync.Mutex
	filters     dto.QuoteFilters
	signature   string
	unsubscribe docstore.Unsubscribe
	state       FeedState
	closed      bool
}

// SetFilters swaps the session onto a new filter set. A set whose signature
// matches the current one is a no-op, so a fresh but equal tags slice does not
// tear down the subscription.
func (fs *FeedSession) SetFilters(filters dto.QuoteFilters) {
	fs.mu.Lock()
	if fs.closed || filters.Signature() == fs.signature {
		fs.mu.Unlock()
		return
	}
	fs.mu.Unlock()

	fs.apply(filters, false)
	fs.persistFilters(filters)
}

// Refresh re-runs the one-shot query for sessions that opted out of real-time
// delivery. Live sessions ignore it, their pushes already track the store.
func (fs *FeedSession) Refresh() {
	fs.mu.Lock()
	if fs.closed || fs.filters.RealTime {
		fs.mu.Unlock()
		return
	}
	filters := fs.filters
	fs.mu.Unlock()

	fs.setLoading()
	quotes, err := fs.service.List(fs.ctx, filters)
	if err != nil {
		fs.setError(err)
		return
	}
	fs.setQuotes(quotes)
}

// Filters returns the active filter set.
func (fs *FeedSession) Filters() dto.QuoteFilters {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.filters
}

// Close tears the session down. No push happens after Close returns.
func (fs *FeedSession) Close() {
	fs.mu.Lock()
	if fs.closed {
		fs.mu.Unlock()
		return
	}
	fs.closed = true
	unsub := fs.unsubscribe
	fs.unsubscribe = nil
	fs.mu.Unlock()

	fs.persist.Stop()
	if unsub != nil {
		unsub()
	}
}

func (fs *FeedSession) apply(filters dto.QuoteFilters, initial bool) {
	fs.mu.Lock()
	if fs.closed {
		fs.mu.Unlock()
		return
	}
	old := fs.unsubscribe
	fs.unsubscribe = nil
	fs.filters = filters
	fs.signature = filters.Signature()
	fs.mu.Unlock()

	if old != nil {
		old()
	}

	fs.setLoading()

	if !filters.RealTime {
		quotes, err := fs.service.List(fs.ctx, filters)
		if err != nil {
			fs.setError(err)
			return
		}
		fs.setQuotes(quotes)
		return
	}

	unsub := fs.service.Subscribe(fs.ctx, filters,
		func(quotes []entity.Quote) { fs.setQuotes(quotes) },
		func(err error) { fs.setError(err) },
	)

	fs.mu.Lock()
	if fs.closed {
		fs.mu.Unlock()
		unsub()
		return
	}
	fs.unsubscribe = unsub
	fs.mu.Unlock()
}

func (fs *FeedSession) persistFilters(filters dto.QuoteFilters) {
	if fs.saved == nil || fs.userId == "" {
		return
	}
	fs.persistDebounced(filters)
}

func (fs *FeedSession) persistDebounced(filters dto.QuoteFilters) {
	fs.persist.Do(func() {
		if err := fs.saved.Save(context.Background(), fs.userId, filters); err != nil {
			fs.logger.Warn("QuoteFeed", "Failed to persist filters", map[string]interface{}{
				"user_id": fs.userId,
				"error":   err.Error(),
			})
		}
	})
}

func (fs *FeedSession) setLoading() {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.closed {
		return
	}
	fs.state.Loading = true
	fs.state.Error = ""
	fs.pushLocked()
}

func (fs *FeedSession) setQuotes(quotes []entity.Quote) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.closed {
		return
	}
	// A failed subscription keeps pushing stale snapshots on some backends.
	// Once an error is surfaced, the frozen list only thaws when a new
	// filter change restarts the stream through setLoading.
	if fs.state.Error != "" {
		return
	}
	fs.state = FeedState{Quotes: quotes}
	fs.pushLocked()
}

// setError freezes the current list and surfaces the failure.
func (fs *FeedSession) setError(err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.closed {
		return
	}
	fs.state.Loading = false
	fs.state.Error = err.Error()
	fs.pushLocked()
}

func (fs *FeedSession) pushLocked() {
	if fs.push != nil {
		fs.push(fs.state)
	}
}
