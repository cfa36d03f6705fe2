package contract

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// ShowPlanRepository is read-only: show plans are owned by the planning
// client, this service only consumes them.
type ShowPlanRepository interface {
	Get(ctx context.Context, id string) (*entity.ShowPlan, error)
	GetMany(ctx context.Context, ids []string) ([]entity.ShowPlan, error)
	List(ctx context.Context, limit int) ([]entity.ShowPlan, error)
}
