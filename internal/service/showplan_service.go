package service

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
)

type IShowPlanService interface {
	Get(ctx context.Context, id string) (*entity.ShowPlan, error)
	List(ctx context.Context, limit int) ([]entity.ShowPlan, error)
}

// showPlanService exposes the read-only show plan view; writes belong to the
// planning client.
type showPlanService struct {
	showPlanRepository contract.ShowPlanRepository
}

func NewShowPlanService(showPlanRepository contract.ShowPlanRepository) IShowPlanService {
	return &showPlanService{showPlanRepository: showPlanRepository}
}

func (s *showPlanService) Get(ctx context.Context, id string) (*entity.ShowPlan, error) {
	return s.showPlanRepository.Get(ctx, id)
}

func (s *showPlanService) List(ctx context.Context, limit int) ([]entity.ShowPlan, error) {
	return s.showPlanRepository.List(ctx, limit)
}
