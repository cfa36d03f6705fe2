package docstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *MemStore {
	return NewMemStore(NewChangeBus())
}

func TestAddAndGet(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	id, err := col.Add(ctx, map[string]interface{}{"content": "bonjour"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := col.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "bonjour", doc.Data["content"])
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestGetMissingReturnsNil(t *testing.T) {
	store := newTestStore()

	doc, err := store.Collection("quotes").Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestUpdateDotPathPreservesSiblings(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	id, err := col.Add(ctx, map[string]interface{}{
		"content": "texte original",
		"metadata": map[string]interface{}{
			"keywords": []interface{}{"texte", "original"},
			"category": "politique",
		},
	})
	require.NoError(t, err)

	// Addressing one leaf must leave the sibling leaves alone.
	err = col.Update(ctx, id, map[string]interface{}{
		"content":           "texte corrigé",
		"metadata.keywords": []interface{}{"texte", "corrige"},
	})
	require.NoError(t, err)

	doc, err := col.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "texte corrigé", doc.Data["content"])
	metadata := doc.Data["metadata"].(map[string]interface{})
	assert.Equal(t, []interface{}{"texte", "corrige"}, metadata["keywords"])
	assert.Equal(t, "politique", metadata["category"])
}

func TestUpdateMissingDocument(t *testing.T) {
	store := newTestStore()

	err := store.Collection("quotes").Update(context.Background(), "ghost", map[string]interface{}{"content": "x"})
	assert.Error(t, err)
}

func TestWhereEqualityIsTypeStrict(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	_, err := col.Add(ctx, map[string]interface{}{
		"context": map[string]interface{}{"showPlanId": "42"},
	})
	require.NoError(t, err)
	_, err = col.Add(ctx, map[string]interface{}{
		"context": map[string]interface{}{"showPlanId": float64(42)},
	})
	require.NoError(t, err)

	asString, err := col.Query().Where("context.showPlanId", "42").Documents(ctx)
	require.NoError(t, err)
	assert.Len(t, asString, 1)

	asNumber, err := col.Query().Where("context.showPlanId", float64(42)).Documents(ctx)
	require.NoError(t, err)
	assert.Len(t, asNumber, 1)

	assert.NotEqual(t, asString[0].ID, asNumber[0].ID)
}

func TestOrderByCreatedAtAndLimit(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	var ids []string
	for _, content := range []string{"premier", "deuxième", "troisième"} {
		id, err := col.Add(ctx, map[string]interface{}{"content": content})
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond)
	}

	docs, err := col.Query().OrderBy("createdAt", true).Limit(2).Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, ids[2], docs[0].ID)
	assert.Equal(t, ids[1], docs[1].ID)
}

func TestSubscribePushesSnapshots(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	var mu sync.Mutex
	var snapshots [][]Document
	done := make(chan struct{}, 8)

	unsub := col.Query().Subscribe(ctx, func(docs []Document) {
		mu.Lock()
		snapshots = append(snapshots, docs)
		mu.Unlock()
		done <- struct{}{}
	}, func(err error) {
		t.Errorf("unexpected subscription error: %v", err)
	})
	defer unsub()

	// Initial empty snapshot.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	_, err := col.Add(ctx, map[string]interface{}{"content": "nouveau"})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mutation snapshot")
	}

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(snapshots), 2)
	assert.Empty(t, snapshots[0])
	assert.Len(t, snapshots[len(snapshots)-1], 1)
}

func TestUnsubscribeStopsCallbacks(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	var mu sync.Mutex
	count := 0
	first := make(chan struct{}, 1)

	unsub := col.Query().Subscribe(ctx, func(docs []Document) {
		mu.Lock()
		count++
		if count == 1 {
			first <- struct{}{}
		}
		mu.Unlock()
	}, func(err error) {})

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	unsub()
	mu.Lock()
	after := count
	mu.Unlock()

	_, err := col.Add(ctx, map[string]interface{}{"content": "après"})
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, count)
}

func TestSetMergePreservesOtherFields(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	require.NoError(t, col.Set(ctx, "fixed-id", map[string]interface{}{
		"content": "base",
		"status":  "draft",
	}, false))

	require.NoError(t, col.Set(ctx, "fixed-id", map[string]interface{}{
		"status": "validated",
	}, true))

	doc, err := col.Get(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "base", doc.Data["content"])
	assert.Equal(t, "validated", doc.Data["status"])
}

func TestDocumentsReturnsCopies(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()
	col := store.Collection("quotes")

	id, err := col.Add(ctx, map[string]interface{}{"content": "intact"})
	require.NoError(t, err)

	docs, err := col.Query().Documents(ctx)
	require.NoError(t, err)
	docs[0].Data["content"] = "mutated"

	doc, err := col.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "intact", doc.Data["content"])
}
