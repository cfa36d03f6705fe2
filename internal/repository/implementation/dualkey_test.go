package implementation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
)

func newTestRepo() (*QuoteRepositoryImpl, docstore.Store) {
	store := docstore.NewMemStore(docstore.NewChangeBus())
	repo := NewQuoteRepository(store, logger.NewNopLogger()).(*QuoteRepositoryImpl)
	return repo, store
}

func addQuote(t *testing.T, store docstore.Store, data map[string]interface{}) string {
	t.Helper()
	id, err := store.Collection("quotes").Add(context.Background(), data)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	return id
}

func TestNumericKey(t *testing.T) {
	n, ok := numericKey("42")
	assert.True(t, ok)
	assert.Equal(t, float64(42), n)

	_, ok = numericKey("sp-42")
	assert.False(t, ok)

	_, ok = numericKey("")
	assert.False(t, ok)
}

func TestMergeByIDDeduplicatesAndSorts(t *testing.T) {
	early := docstore.Document{ID: "a", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	late := docstore.Document{ID: "b", CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}

	merged := mergeByID([]docstore.Document{early, late}, []docstore.Document{early}, false)
	require.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, "b", merged[1].ID)

	desc := mergeByID([]docstore.Document{early}, []docstore.Document{late}, true)
	assert.Equal(t, "b", desc[0].ID)
}

func TestMergeByIDIdempotent(t *testing.T) {
	a := []docstore.Document{{ID: "x", CreatedAt: time.Now()}}
	b := []docstore.Document{{ID: "y", CreatedAt: time.Now().Add(time.Second)}}

	once := mergeByID(a, b, false)
	twice := mergeByID(once, b, false)
	assert.Equal(t, once, twice)
}

func TestGetQuotesByShowPlanMergesBothRepresentations(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	addQuote(t, store, map[string]interface{}{
		"content": "clé chaîne",
		"context": map[string]interface{}{"showPlanId": "42"},
	})
	addQuote(t, store, map[string]interface{}{
		"content": "clé numérique",
		"context": map[string]interface{}{"showPlanId": float64(42)},
	})
	addQuote(t, store, map[string]interface{}{
		"content": "autre conducteur",
		"context": map[string]interface{}{"showPlanId": "43"},
	})

	quotes, err := repo.GetQuotesByShowPlan(ctx, "42")
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	// Chronological ascending order.
	assert.Equal(t, "clé chaîne", quotes[0].Content)
	assert.Equal(t, "clé numérique", quotes[1].Content)
}

func TestGetQuotesByShowPlanNonNumericKey(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	addQuote(t, store, map[string]interface{}{
		"content": "uuid key",
		"context": map[string]interface{}{"showPlanId": "sp-abc"},
	})

	quotes, err := repo.GetQuotesByShowPlan(ctx, "sp-abc")
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}

func TestGetQuotesBySegment(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	addQuote(t, store, map[string]interface{}{
		"content": "dans le segment",
		"segment": map[string]interface{}{"id": float64(7)},
	})
	addQuote(t, store, map[string]interface{}{
		"content": "hors segment",
		"segment": map[string]interface{}{"id": "8"},
	})

	quotes, err := repo.GetQuotesBySegment(ctx, "7")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "dans le segment", quotes[0].Content)
}

func TestDualKeyMergerWaitsForBothSides(t *testing.T) {
	var emitted [][]docstore.Document
	m := &dualKeyMerger{
		emit: func(docs []docstore.Document) {
			emitted = append(emitted, docs)
		},
	}

	m.deliverA([]docstore.Document{{ID: "a"}})
	assert.Empty(t, emitted, "must not emit before both sides loaded")

	m.deliverB(nil)
	require.Len(t, emitted, 1)
	assert.Len(t, emitted[0], 1)

	// Re-delivery after both loaded re-emits the merged set.
	m.deliverA([]docstore.Document{{ID: "a"}, {ID: "b"}})
	require.Len(t, emitted, 2)
	assert.Len(t, emitted[1], 2)
}

func TestSubscribeShowPlanQuotesLive(t *testing.T) {
	repo, store := newTestRepo()
	ctx := context.Background()

	addQuote(t, store, map[string]interface{}{
		"content": "ancienne",
		"context": map[string]interface{}{"showPlanId": "42"},
	})

	var mu sync.Mutex
	var latest []entity.Quote
	updates := make(chan int, 16)

	unsub := repo.SubscribeShowPlanQuotes(ctx, "42", func(quotes []entity.Quote) {
		mu.Lock()
		latest = quotes
		mu.Unlock()
		updates <- len(quotes)
	})
	defer unsub()

	waitFor := func(want int) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for {
			select {
			case n := <-updates:
				if n == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for snapshot of %d quotes", want)
			}
		}
	}

	waitFor(1)

	addQuote(t, store, map[string]interface{}{
		"content": "récente",
		"context": map[string]interface{}{"showPlanId": float64(42)},
	})

	waitFor(2)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, latest, 2)
	// Live view is most recent first.
	assert.Equal(t, "récente", latest[0].Content)
	assert.Equal(t, "ancienne", latest[1].Content)
}
