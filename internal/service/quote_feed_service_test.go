package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

// stubQuoteService drives feed sessions without a store. Subscriptions hand
// their callbacks back to the test so pushes can be injected.
type stubQuoteService struct {
	mu             sync.Mutex
	listResult     []entity.Quote
	listErr        error
	listCalls      int
	subscribeCalls int
	unsubCalls     int
	onQuotes       func([]entity.Quote)
	onError        func(error)
}

func (s *stubQuoteService) Create(ctx context.Context, userId, userName string, req *dto.CreateQuoteRequest) (*dto.CreateQuoteResponse, error) {
	return nil, nil
}
func (s *stubQuoteService) Update(ctx context.Context, userId, id string, req *dto.UpdateQuoteRequest) error {
	return nil
}
func (s *stubQuoteService) Delete(ctx context.Context, userId, id string) error { return nil }
func (s *stubQuoteService) Get(ctx context.Context, id string) (*entity.Quote, error) {
	return nil, nil
}

func (s *stubQuoteService) List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return s.listResult, s.listErr
}

func (s *stubQuoteService) Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe {
	s.mu.Lock()
	s.subscribeCalls++
	s.onQuotes = onQuotes
	s.onError = onError
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.unsubCalls++
		s.mu.Unlock()
	}
}

func (s *stubQuoteService) GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error) {
	return nil, nil
}
func (s *stubQuoteService) GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error) {
	return nil, nil
}
func (s *stubQuoteService) SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe {
	return func() {}
}

type stubSavedSearch struct {
	mu        sync.Mutex
	saveCalls int
	last      dto.QuoteFilters
}

func (s *stubSavedSearch) Save(ctx context.Context, userId string, filters dto.QuoteFilters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	s.last = filters
	return nil
}

func (s *stubSavedSearch) Load(ctx context.Context, userId string) (*dto.QuoteFilters, error) {
	return nil, nil
}

type stateRecorder struct {
	mu     sync.Mutex
	states []FeedState
}

func (r *stateRecorder) push(state FeedState) {
	r.mu.Lock()
	r.states = append(r.states, state)
	r.mu.Unlock()
}

func (r *stateRecorder) all() []FeedState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FeedState(nil), r.states...)
}

func (r *stateRecorder) last() FeedState {
	states := r.all()
	return states[len(states)-1]
}

func newFeedFixture() (*stubQuoteService, *stubSavedSearch, IQuoteFeedService, *stateRecorder) {
	quotes := &stubQuoteService{}
	saved := &stubSavedSearch{}
	feed := NewQuoteFeedService(quotes, saved, logger.NewNopLogger())
	return quotes, saved, feed, &stateRecorder{}
}

func TestOpenOneShotListsImmediately(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()
	quotes.listResult = []entity.Quote{{Id: "q1"}}

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: false}, rec.push)
	defer session.Close()

	states := rec.all()
	require.GreaterOrEqual(t, len(states), 2)
	assert.True(t, states[0].Loading)
	last := rec.last()
	assert.False(t, last.Loading)
	require.Len(t, last.Quotes, 1)
	assert.Equal(t, "q1", last.Quotes[0].Id)
	assert.Equal(t, 1, quotes.listCalls)
	assert.Equal(t, 0, quotes.subscribeCalls)
}

func TestOpenRealTimeSubscribes(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)
	defer session.Close()

	require.Equal(t, 1, quotes.subscribeCalls)

	quotes.onQuotes([]entity.Quote{{Id: "q1"}, {Id: "q2"}})
	assert.Len(t, rec.last().Quotes, 2)
}

func TestSetFiltersEqualSignatureIsNoOp(t *testing.T) {
	quotes, saved, feed, rec := newFeedFixture()

	filters := dto.QuoteFilters{RealTime: true, Tags: []string{"sport", "culture"}}
	session := feed.Open(context.Background(), "u1", filters, rec.push)
	defer session.Close()

	// A fresh slice with identical contents must not tear the feed down.
	session.SetFilters(dto.QuoteFilters{RealTime: true, Tags: []string{"sport", "culture"}})

	assert.Equal(t, 1, quotes.subscribeCalls)
	assert.Equal(t, 0, quotes.unsubCalls)
	assert.Equal(t, 0, saved.saveCalls)
}

func TestSetFiltersChangeResubscribes(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)
	defer session.Close()

	session.SetFilters(dto.QuoteFilters{RealTime: true, Status: entity.QuoteStatusValidated})

	assert.Equal(t, 2, quotes.subscribeCalls)
	assert.Equal(t, 1, quotes.unsubCalls)
	assert.Equal(t, entity.QuoteStatusValidated, session.Filters().Status)
}

func TestSetFiltersPersistsAfterQuietPeriod(t *testing.T) {
	_, saved, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)
	defer session.Close()

	// Rapid successive changes collapse into a single write.
	session.SetFilters(dto.QuoteFilters{RealTime: true, Category: "sport"})
	session.SetFilters(dto.QuoteFilters{RealTime: true, Category: "culture"})

	saved.mu.Lock()
	immediate := saved.saveCalls
	saved.mu.Unlock()
	assert.Equal(t, 0, immediate)

	time.Sleep(savedFiltersDelay + 300*time.Millisecond)

	saved.mu.Lock()
	defer saved.mu.Unlock()
	assert.Equal(t, 1, saved.saveCalls)
	assert.Equal(t, "culture", saved.last.Category)
}

func TestRefreshOneShotOnly(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()
	quotes.listResult = []entity.Quote{{Id: "q1"}}

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: false}, rec.push)
	defer session.Close()
	require.Equal(t, 1, quotes.listCalls)

	session.Refresh()
	assert.Equal(t, 2, quotes.listCalls)
}

func TestRefreshIgnoredForRealTime(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)
	defer session.Close()

	session.Refresh()
	assert.Equal(t, 0, quotes.listCalls)
}

func TestSubscriptionErrorFreezesList(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)
	defer session.Close()

	quotes.onQuotes([]entity.Quote{{Id: "q1"}})
	quotes.onError(errors.New("flux interrompu"))

	last := rec.last()
	assert.Equal(t, "flux interrompu", last.Error)
	assert.False(t, last.Loading)
	// The previously delivered list stays visible alongside the error.
	require.Len(t, last.Quotes, 1)
	assert.Equal(t, "q1", last.Quotes[0].Id)

	// Snapshots arriving after the failure must not silently clear it.
	quotes.onQuotes([]entity.Quote{{Id: "q2"}, {Id: "q3"}})
	last = rec.last()
	assert.Equal(t, "flux interrompu", last.Error)
	require.Len(t, last.Quotes, 1)
	assert.Equal(t, "q1", last.Quotes[0].Id)

	// Changing the filters restarts the stream and lifts the freeze.
	session.SetFilters(dto.QuoteFilters{RealTime: true, Category: "sport"})
	assert.Equal(t, 2, quotes.subscribeCalls)
	quotes.onQuotes([]entity.Quote{{Id: "q4"}})
	last = rec.last()
	assert.Empty(t, last.Error)
	require.Len(t, last.Quotes, 1)
	assert.Equal(t, "q4", last.Quotes[0].Id)
}

func TestCloseStopsPushesAndUnsubscribes(t *testing.T) {
	quotes, _, feed, rec := newFeedFixture()

	session := feed.Open(context.Background(), "u1", dto.QuoteFilters{RealTime: true}, rec.push)

	session.Close()
	assert.Equal(t, 1, quotes.unsubCalls)

	before := len(rec.all())
	quotes.onQuotes([]entity.Quote{{Id: "late"}})
	session.SetFilters(dto.QuoteFilters{RealTime: true, Category: "sport"})
	session.Refresh()

	assert.Equal(t, before, len(rec.all()))
	assert.Equal(t, 1, quotes.subscribeCalls)

	// Idempotent.
	session.Close()
	assert.Equal(t, 1, quotes.unsubCalls)
}
