package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pdf"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/events"
	pktNats "github.com/lwilly3/radioManager-SaaS-sub001/pkg/nats"
)

type ExportStatus string

const (
	ExportIdle      ExportStatus = "idle"
	ExportRunning   ExportStatus = "exporting"
	ExportSucceeded ExportStatus = "success"
	ExportFailed    ExportStatus = "failure"
)

// ExportResult is a finished document ready to stream to the caller.
type ExportResult struct {
	Blob     []byte
	Filename string
}

type IExportService interface {
	ExportPdf(ctx context.Context, userId, userName string, req *dto.ExportPdfRequest) (*ExportResult, error)
	Status() ExportStatus
}

type exportService struct {
	quoteRepository    contract.QuoteRepository
	showPlanRepository contract.ShowPlanRepository
	engine             *pdf.Engine
	eventPublisher     *pktNats.Publisher
	logger             logger.ILogger

	mu     sync.Mutex
	status ExportStatus
}

func NewExportService(
	quoteRepository contract.QuoteRepository,
	showPlanRepository contract.ShowPlanRepository,
	engine *pdf.Engine,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IExportService {
	return &exportService{
		quoteRepository:    quoteRepository,
		showPlanRepository: showPlanRepository,
		engine:             engine,
		eventPublisher:     eventPublisher,
		logger:             log,
		status:             ExportIdle,
	}
}

// Status reports the outcome of the most recent export. The lifecycle is
// idle, then exporting, then success or failure; a new export restarts it.
func (s *exportService) Status() ExportStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *exportService) setStatus(status ExportStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *exportService) ExportPdf(ctx context.Context, userId, userName string, req *dto.ExportPdfRequest) (*ExportResult, error) {
	if userId == "" {
		return nil, &serverutils.NotAuthenticatedError{Action: "exporter un document"}
	}

	s.setStatus(ExportRunning)

	result, err := s.runExport(ctx, userName, req)
	if err != nil {
		s.setStatus(ExportFailed)
		return nil, err
	}

	s.setStatus(ExportSucceeded)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.PdfExported,
			Data: map[string]interface{}{
				"filename": result.Filename,
				"user_id":  userId,
			},
			OccurredAt: time.Now(),
		}
		if pubErr := s.eventPublisher.Publish(ctx, evt); pubErr != nil {
			s.logger.Warn("ExportService", "Failed to publish event", map[string]interface{}{
				"error": pubErr.Error(),
			})
		}
	}

	return result, nil
}

func (s *exportService) runExport(ctx context.Context, userName string, req *dto.ExportPdfRequest) (*ExportResult, error) {
	engineReq := pdf.ExportRequest{
		Type:          pdf.DocumentType(req.Type),
		Template:      pdf.TemplateID(req.Template),
		Orientation:   pdf.Orientation(req.Orientation),
		IncludeQuotes: req.IncludeQuotes,
		GeneratedBy:   userName,
	}

	var filename string
	switch pdf.DocumentType(req.Type) {
	case pdf.DocumentShowPlan:
		show, err := s.showPlanRepository.Get(ctx, req.ShowPlanId)
		if err != nil {
			return nil, err
		}
		if show == nil {
			return nil, &serverutils.RenderError{Err: fmt.Errorf("show plan %s not found", req.ShowPlanId)}
		}
		engineReq.ShowPlan = show

		if req.IncludeQuotes {
			quotes, err := s.quoteRepository.GetQuotesByShowPlan(ctx, show.Id)
			if err != nil {
				return nil, err
			}
			engineReq.Quotes = quotes
		}
		filename = fmt.Sprintf("conducteur_%s_%s.pdf",
			slugify(show.Title), show.Date.Format("2006-01-02"))

	case pdf.DocumentArchive:
		shows, err := s.showPlanRepository.GetMany(ctx, req.ShowPlanIds)
		if err != nil {
			return nil, err
		}
		engineReq.ShowPlans = shows
		filename = fmt.Sprintf("archive_conducteurs_%s.pdf",
			time.Now().Format("2006-01-02"))

	default:
		return nil, &serverutils.RenderError{Err: fmt.Errorf("unsupported export type %q", req.Type)}
	}

	blob, err := s.engine.Export(engineReq)
	if err != nil {
		return nil, err
	}

	return &ExportResult{Blob: blob, Filename: filename}, nil
}

// slugify keeps filenames portable across download targets.
func slugify(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
