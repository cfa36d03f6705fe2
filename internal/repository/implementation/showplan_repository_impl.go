package implementation

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/mapper"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
)

const showPlansCollection = "showPlans"

type ShowPlanRepositoryImpl struct {
	col    docstore.Collection
	mapper *mapper.ShowPlanMapper
	logger logger.ILogger
}

func NewShowPlanRepository(store docstore.Store, log logger.ILogger) contract.ShowPlanRepository {
	return &ShowPlanRepositoryImpl{
		col:    store.Collection(showPlansCollection),
		mapper: mapper.NewShowPlanMapper(),
		logger: log,
	}
}

func (r *ShowPlanRepositoryImpl) Get(ctx context.Context, id string) (*entity.ShowPlan, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		r.logger.Error("ShowPlanRepository", "Failed to get show plan", map[string]interface{}{
			"error":        err.Error(),
			"show_plan_id": id,
		})
		return nil, &serverutils.PersistenceError{Op: "get show plan", Err: err}
	}
	if doc == nil {
		return nil, nil
	}
	plan := r.mapper.ToEntity(*doc)
	return &plan, nil
}

func (r *ShowPlanRepositoryImpl) GetMany(ctx context.Context, ids []string) ([]entity.ShowPlan, error) {
	plans := make([]entity.ShowPlan, 0, len(ids))
	for _, id := range ids {
		plan, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func (r *ShowPlanRepositoryImpl) List(ctx context.Context, limit int) ([]entity.ShowPlan, error) {
	q := r.col.Query().OrderBy("createdAt", true)
	if limit > 0 {
		q = q.Limit(limit)
	}
	docs, err := q.Documents(ctx)
	if err != nil {
		r.logger.Error("ShowPlanRepository", "Failed to list show plans", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &serverutils.PersistenceError{Op: "list show plans", Err: err}
	}
	return r.mapper.ToEntities(docs), nil
}
