package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/database"
)

func TestGormDocumentStore(t *testing.T) {
	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	store, err := docstore.NewGormStore(gormDB, docstore.NewChangeBus())
	require.NoError(t, err)

	ctx := context.Background()
	col := store.Collection("integration_quotes")

	t.Run("Add and Get round trip", func(t *testing.T) {
		id, err := col.Add(ctx, map[string]interface{}{
			"content": "intégration",
			"context": map[string]interface{}{"showPlanId": "42"},
		})
		require.NoError(t, err)
		defer col.Delete(ctx, id)

		doc, err := col.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "intégration", doc.Data["content"])
	})

	t.Run("Jsonb equality is type strict", func(t *testing.T) {
		strId, err := col.Add(ctx, map[string]interface{}{
			"context": map[string]interface{}{"showPlanId": "77"},
		})
		require.NoError(t, err)
		defer col.Delete(ctx, strId)

		numId, err := col.Add(ctx, map[string]interface{}{
			"context": map[string]interface{}{"showPlanId": float64(77)},
		})
		require.NoError(t, err)
		defer col.Delete(ctx, numId)

		asString, err := col.Query().Where("context.showPlanId", "77").Documents(ctx)
		require.NoError(t, err)
		assert.Len(t, asString, 1)
		assert.Equal(t, strId, asString[0].ID)

		asNumber, err := col.Query().Where("context.showPlanId", float64(77)).Documents(ctx)
		require.NoError(t, err)
		assert.Len(t, asNumber, 1)
		assert.Equal(t, numId, asNumber[0].ID)
	})

	t.Run("Order by document field", func(t *testing.T) {
		var ids []string
		for _, author := range []string{"Mbarga", "Abena", "Zang"} {
			id, err := col.Add(ctx, map[string]interface{}{
				"author": map[string]interface{}{"name": author},
			})
			require.NoError(t, err)
			ids = append(ids, id)
		}
		defer func() {
			for _, id := range ids {
				col.Delete(ctx, id)
			}
		}()

		docs, err := col.Query().OrderBy("author.name", false).Documents(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)

		var names []string
		for _, doc := range docs {
			author := doc.Data["author"].(map[string]interface{})
			names = append(names, author["name"].(string))
		}
		assert.Equal(t, []string{"Abena", "Mbarga", "Zang"}, names)

		descending, err := col.Query().OrderBy("author.name", true).Limit(1).Documents(ctx)
		require.NoError(t, err)
		require.Len(t, descending, 1)
		assert.Equal(t, ids[2], descending[0].ID)
	})

	t.Run("Dot path update preserves siblings", func(t *testing.T) {
		id, err := col.Add(ctx, map[string]interface{}{
			"content": "avant",
			"metadata": map[string]interface{}{
				"category": "sport",
				"keywords": []interface{}{"avant"},
			},
		})
		require.NoError(t, err)
		defer col.Delete(ctx, id)

		require.NoError(t, col.Update(ctx, id, map[string]interface{}{
			"metadata.keywords": []interface{}{"apres"},
		}))

		doc, err := col.Get(ctx, id)
		require.NoError(t, err)
		metadata := doc.Data["metadata"].(map[string]interface{})
		assert.Equal(t, "sport", metadata["category"])
		assert.Equal(t, []interface{}{"apres"}, metadata["keywords"])
	})
}
