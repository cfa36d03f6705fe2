package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentModel is the single-table persistence shape: one row per document,
// payload in a jsonb column, collection as a discriminator.
type documentModel struct {
	ID         string         `gorm:"type:uuid;primaryKey"`
	Collection string         `gorm:"type:varchar(100);not null;index:idx_documents_collection"`
	Data       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (documentModel) TableName() string {
	return "documents"
}

// GormStore is the Postgres-backed Store implementation.
type GormStore struct {
	db  *gorm.DB
	bus *ChangeBus
}

func NewGormStore(db *gorm.DB, bus *ChangeBus) (*GormStore, error) {
	if err := db.AutoMigrate(&documentModel{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, bus: bus}, nil
}

func (s *GormStore) Collection(name string) Collection {
	return &gormCollection{store: s, name: name}
}

type gormCollection struct {
	store *GormStore
	name  string
}

func (c *gormCollection) toDocument(m *documentModel) (Document, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(m.Data, &data); err != nil {
		return Document{}, err
	}
	return Document{
		ID:        m.ID,
		Data:      data,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func (c *gormCollection) Add(ctx context.Context, data map[string]interface{}) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	m := documentModel{
		ID:         uuid.NewString(),
		Collection: c.name,
		Data:       payload,
	}
	if err := c.store.db.WithContext(ctx).Create(&m).Error; err != nil {
		return "", err
	}
	return m.ID, c.store.bus.Publish(c.name)
}

func (c *gormCollection) Set(ctx context.Context, id string, data map[string]interface{}, merge bool) error {
	err := c.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing documentModel
		found := true
		if err := tx.Where("id = ? AND collection = ?", id, c.name).First(&existing).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			found = false
		}

		next := data
		if merge && found {
			current, err := c.toDocument(&existing)
			if err != nil {
				return err
			}
			merged := DeepCopyData(current.Data)
			for k, v := range data {
				merged[k] = v
			}
			next = merged
		}

		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		m := documentModel{ID: id, Collection: c.name, Data: payload}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).Create(&m).Error
	})
	if err != nil {
		return err
	}
	return c.store.bus.Publish(c.name)
}

func (c *gormCollection) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	err := c.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing documentModel
		if err := tx.Where("id = ? AND collection = ?", id, c.name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("document %s not found in %s", id, c.name)
			}
			return err
		}
		doc, err := c.toDocument(&existing)
		if err != nil {
			return err
		}
		for path, value := range fields {
			SetAtPath(doc.Data, path, value)
		}
		payload, err := json.Marshal(doc.Data)
		if err != nil {
			return err
		}
		return tx.Model(&documentModel{}).Where("id = ?", id).
			Updates(map[string]interface{}{"data": datatypes.JSON(payload)}).Error
	})
	if err != nil {
		return err
	}
	return c.store.bus.Publish(c.name)
}

func (c *gormCollection) Delete(ctx context.Context, id string) error {
	if err := c.store.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, c.name).
		Delete(&documentModel{}).Error; err != nil {
		return err
	}
	return c.store.bus.Publish(c.name)
}

func (c *gormCollection) Get(ctx context.Context, id string) (*Document, error) {
	var m documentModel
	if err := c.store.db.WithContext(ctx).
		Where("id = ? AND collection = ?", id, c.name).
		First(&m).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	doc, err := c.toDocument(&m)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *gormCollection) Query() Query {
	return &gormQuery{col: c}
}

type gormQuery struct {
	col        *gormCollection
	conditions []condition
	orderField string
	orderDesc  bool
	limit      int
}

func (q *gormQuery) Where(field string, value interface{}) Query {
	next := *q
	next.conditions = append(append([]condition{}, q.conditions...), condition{field: field, value: value})
	return &next
}

func (q *gormQuery) OrderBy(field string, desc bool) Query {
	next := *q
	next.orderField = field
	next.orderDesc = desc
	return &next
}

func (q *gormQuery) Limit(n int) Query {
	next := *q
	next.limit = n
	return &next
}

func (q *gormQuery) Documents(ctx context.Context) ([]Document, error) {
	tx := q.col.store.db.WithContext(ctx).Model(&documentModel{}).
		Where("collection = ?", q.col.name)

	for _, cond := range q.conditions {
		pathLiteral := "{" + strings.Join(strings.Split(cond.field, "."), ",") + "}"
		encoded, err := json.Marshal(cond.value)
		if err != nil {
			return nil, err
		}
		// jsonb equality keeps "42" and 42 distinct, which text extraction
		// would not.
		tx = tx.Where("data #> ?::text[] = ?::jsonb", pathLiteral, string(encoded))
	}

	if q.orderField != "" {
		direction := "ASC"
		if q.orderDesc {
			direction = "DESC"
		}
		switch q.orderField {
		case "createdAt":
			tx = tx.Order("created_at " + direction)
		case "updatedAt":
			tx = tx.Order("updated_at " + direction)
		default:
			// Order only accepts strings and clause values; a bare
			// gorm.Expr would be dropped without an error.
			pathLiteral := "{" + strings.Join(strings.Split(q.orderField, "."), ",") + "}"
			tx = tx.Clauses(clause.OrderBy{
				Expression: gorm.Expr("data #>> ?::text[] "+direction, pathLiteral),
			})
		}
	}

	if q.limit > 0 {
		tx = tx.Limit(q.limit)
	}

	var models []documentModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(models))
	for i := range models {
		doc, err := q.col.toDocument(&models[i])
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (q *gormQuery) Subscribe(ctx context.Context, onSnapshot func([]Document), onError func(error)) Unsubscribe {
	return runSubscription(ctx, q.col.store.bus, q.col.name, q.Documents, onSnapshot, onError)
}
