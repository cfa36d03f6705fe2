package implementation

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// The legacy planning client wrote foreign keys (segment.id,
// context.showPlanId) as numbers while newer paths write strings. Every lookup
// by such a key queries both representations and merges, or it silently
// misses half the data. New writes are always strings; this layer exists for
// read compatibility with old documents.

// numericKey returns the number form of a raw key, when it has one.
func numericKey(rawKey string) (float64, bool) {
	n, err := strconv.ParseFloat(rawKey, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// mergeByID deduplicates the two result sets by document id. The stored key
// has exactly one representation, so the two queries can never match the same
// document; the overwrite is a safety no-op, not a semantic choice.
func mergeByID(a, b []docstore.Document, desc bool) []docstore.Document {
	byID := make(map[string]docstore.Document, len(a)+len(b))
	for _, doc := range a {
		byID[doc.ID] = doc
	}
	for _, doc := range b {
		byID[doc.ID] = doc
	}

	merged := make([]docstore.Document, 0, len(byID))
	for _, doc := range byID {
		merged = append(merged, doc)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if desc {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})
	return merged
}

// queryByDualKey runs the one-shot variant: both queries issued back to back,
// awaited, then merged. A failed sub-query degrades to an empty partial
// result instead of failing the read.
func (r *QuoteRepositoryImpl) queryByDualKey(ctx context.Context, fieldPath, rawKey string, desc bool) ([]entity.Quote, error) {
	queryA := r.col.Query().Where(fieldPath, rawKey)

	var queryB docstore.Query
	if keyNum, ok := numericKey(rawKey); ok {
		queryB = r.col.Query().Where(fieldPath, keyNum)
	}

	var wg sync.WaitGroup
	var resA, resB []docstore.Document

	run := func(q docstore.Query, out *[]docstore.Document) {
		defer wg.Done()
		docs, err := q.Documents(ctx)
		if err != nil {
			r.logger.Warn("QuoteRepository", "Dual-key sub-query failed, degrading to empty result", map[string]interface{}{
				"field": fieldPath,
				"key":   rawKey,
				"error": err.Error(),
			})
			return
		}
		*out = docs
	}

	wg.Add(1)
	go run(queryA, &resA)
	if queryB != nil {
		wg.Add(1)
		go run(queryB, &resB)
	}
	wg.Wait()

	return r.mapper.ToEntities(mergeByID(resA, resB, desc)), nil
}

// dualKeyMerger tracks the two live sub-queries. Nothing is emitted until
// BOTH have delivered at least one snapshot (an empty one counts); after
// that every arrival re-merges and emits. Merging is commutative and
// idempotent, so re-delivery or arrival order cannot change the result.
type dualKeyMerger struct {
	mu               sync.Mutex
	resA, resB       []docstore.Document
	loadedA, loadedB bool
	desc             bool
	emit             func([]docstore.Document)
}

func (m *dualKeyMerger) deliverA(docs []docstore.Document) {
	m.mu.Lock()
	m.resA = docs
	m.loadedA = true
	m.mergeLocked()
	m.mu.Unlock()
}

func (m *dualKeyMerger) deliverB(docs []docstore.Document) {
	m.mu.Lock()
	m.resB = docs
	m.loadedB = true
	m.mergeLocked()
	m.mu.Unlock()
}

func (m *dualKeyMerger) mergeLocked() {
	if !m.loadedA || !m.loadedB {
		return
	}
	m.emit(mergeByID(m.resA, m.resB, m.desc))
}

// subscribeByDualKey opens the live variant. Each sub-query pushes snapshots
// independently; a sub-query error is logged and treated as loaded-with-zero
// rather than failing the whole feed.
func (r *QuoteRepositoryImpl) subscribeByDualKey(ctx context.Context, fieldPath, rawKey string, desc bool, onQuotes func([]entity.Quote)) docstore.Unsubscribe {
	merger := &dualKeyMerger{
		desc: desc,
		emit: func(docs []docstore.Document) {
			onQuotes(r.mapper.ToEntities(docs))
		},
	}

	logDegrade := func(err error) {
		r.logger.Warn("QuoteRepository", "Dual-key live sub-query failed, degrading to empty result", map[string]interface{}{
			"field": fieldPath,
			"key":   rawKey,
			"error": err.Error(),
		})
	}

	unsubA := r.col.Query().Where(fieldPath, rawKey).Subscribe(ctx,
		merger.deliverA,
		func(err error) {
			logDegrade(err)
			merger.deliverA(nil)
		},
	)

	keyNum, ok := numericKey(rawKey)
	if !ok {
		// No numeric form: side B is loaded with an empty result up front.
		merger.deliverB(nil)
		return unsubA
	}

	unsubB := r.col.Query().Where(fieldPath, keyNum).Subscribe(ctx,
		merger.deliverB,
		func(err error) {
			logDegrade(err)
			merger.deliverB(nil)
		},
	)

	return func() {
		unsubA()
		unsubB()
	}
}

// GetQuotesByShowPlan lists a show plan's quotes in chronological reading
// order.
func (r *QuoteRepositoryImpl) GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error) {
	return r.queryByDualKey(ctx, "context.showPlanId", showPlanId, false)
}

// GetQuotesBySegment lists a segment's quotes in chronological reading order.
func (r *QuoteRepositoryImpl) GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error) {
	return r.queryByDualKey(ctx, "segment.id", segmentId, false)
}

// SubscribeShowPlanQuotes feeds the live show-plan view, most recent first.
// The direction differs from the one-shot listings on purpose: the views rely
// on different orders.
func (r *QuoteRepositoryImpl) SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe {
	return r.subscribeByDualKey(ctx, "context.showPlanId", showPlanId, true, onQuotes)
}
