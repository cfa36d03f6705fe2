package service

import (
	"context"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/events"
	pktNats "github.com/lwilly3/radioManager-SaaS-sub001/pkg/nats"
)

type IQuoteService interface {
	Create(ctx context.Context, userId, userName string, req *dto.CreateQuoteRequest) (*dto.CreateQuoteResponse, error)
	Update(ctx context.Context, userId, id string, req *dto.UpdateQuoteRequest) error
	Delete(ctx context.Context, userId, id string) error
	Get(ctx context.Context, id string) (*entity.Quote, error)
	List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error)
	Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe
	GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error)
	GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error)
	SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe
}

type quoteService struct {
	quoteRepository contract.QuoteRepository
	eventPublisher  *pktNats.Publisher
	logger          logger.ILogger
}

func NewQuoteService(
	quoteRepository contract.QuoteRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IQuoteService {
	return &quoteService{
		quoteRepository: quoteRepository,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func (s *quoteService) Create(ctx context.Context, userId, userName string, req *dto.CreateQuoteRequest) (*dto.CreateQuoteResponse, error) {
	if userId == "" {
		return nil, &serverutils.NotAuthenticatedError{Action: "ajouter une citation"}
	}

	id, err := s.quoteRepository.Create(ctx, req, userId, userName)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.QuoteCreated, id, userId)

	return &dto.CreateQuoteResponse{Id: id}, nil
}

func (s *quoteService) Update(ctx context.Context, userId, id string, req *dto.UpdateQuoteRequest) error {
	if userId == "" {
		return &serverutils.NotAuthenticatedError{Action: "modifier une citation"}
	}

	if err := s.quoteRepository.Update(ctx, id, req); err != nil {
		return err
	}

	s.publishEvent(ctx, events.QuoteUpdated, id, userId)
	return nil
}

func (s *quoteService) Delete(ctx context.Context, userId, id string) error {
	if userId == "" {
		return &serverutils.NotAuthenticatedError{Action: "supprimer une citation"}
	}

	if err := s.quoteRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.QuoteDeleted, id, userId)
	return nil
}

func (s *quoteService) Get(ctx context.Context, id string) (*entity.Quote, error) {
	return s.quoteRepository.Get(ctx, id)
}

func (s *quoteService) List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error) {
	return s.quoteRepository.List(ctx, filters)
}

func (s *quoteService) Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe {
	return s.quoteRepository.Subscribe(ctx, filters, onQuotes, onError)
}

func (s *quoteService) GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error) {
	return s.quoteRepository.GetQuotesByShowPlan(ctx, showPlanId)
}

func (s *quoteService) GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error) {
	return s.quoteRepository.GetQuotesBySegment(ctx, segmentId)
}

func (s *quoteService) SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe {
	return s.quoteRepository.SubscribeShowPlanQuotes(ctx, showPlanId, onQuotes)
}

// publishEvent notifies the bus about a quote mutation. Eventing is auxiliary,
// a publish failure never fails the request.
func (s *quoteService) publishEvent(ctx context.Context, code, quoteId, userId string) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewQuoteEvent(code, quoteId, userId)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("QuoteService", "Failed to publish event", map[string]interface{}{
			"event": code,
			"error": err.Error(),
		})
	}
}
