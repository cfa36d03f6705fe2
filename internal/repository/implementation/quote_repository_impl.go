package implementation

import (
	"context"
	"strings"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/mapper"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/repository/contract"
	"github.com/lwilly3/radioManager-SaaS-sub001/pkg/keywords"
)

const quotesCollection = "quotes"

type QuoteRepositoryImpl struct {
	col    docstore.Collection
	mapper *mapper.QuoteMapper
	logger logger.ILogger
}

func NewQuoteRepository(store docstore.Store, log logger.ILogger) contract.QuoteRepository {
	return &QuoteRepositoryImpl{
		col:    store.Collection(quotesCollection),
		mapper: mapper.NewQuoteMapper(),
		logger: log,
	}
}

func (r *QuoteRepositoryImpl) Create(ctx context.Context, req *dto.CreateQuoteRequest, authorId, authorName string) (string, error) {
	quote := entity.Quote{
		Content:     req.Content,
		ContentType: req.ContentType,
		Status:      entity.QuoteStatusDraft,
		Author: entity.QuoteAuthor{
			Id:     req.Author.Id,
			Name:   req.Author.Name,
			Role:   req.Author.Role,
			Avatar: req.Author.Avatar,
		},
		Context: entity.QuoteContext{
			ShowPlanId:    req.Context.ShowPlanId,
			ShowPlanTitle: req.Context.ShowPlanTitle,
			EmissionId:    req.Context.EmissionId,
			EmissionName:  req.Context.EmissionName,
			BroadcastDate: req.Context.BroadcastDate,
		},
		Metadata: entity.QuoteMetadata{
			Category:   req.Metadata.Category,
			Tags:       req.Metadata.Tags,
			Keywords:   keywords.Extract(req.Content),
			Language:   req.Metadata.Language,
			Importance: req.Metadata.Importance,
			IsVerified: req.Metadata.IsVerified,
		},
		CreatedBy:     authorId,
		CreatedByName: authorName,
	}

	if quote.ContentType == "" {
		quote.ContentType = entity.ContentTypeQuote
	}
	if quote.Author.Role == "" {
		quote.Author.Role = entity.AuthorRoleOther
	}
	if quote.Metadata.Tags == nil {
		quote.Metadata.Tags = []string{}
	}
	if quote.Metadata.Language == "" {
		quote.Metadata.Language = "fr"
	}
	if quote.Metadata.Importance == "" {
		quote.Metadata.Importance = "medium"
	}

	quote.Source = entity.QuoteSource{Type: entity.SourceTypeManual}
	if req.Source != nil {
		quote.Source = entity.QuoteSource{
			Type:     req.Source.Type,
			AudioUrl: req.Source.AudioUrl,
			Duration: req.Source.Duration,
		}
		if quote.Source.Type == "" {
			quote.Source.Type = entity.SourceTypeManual
		}
	}
	if req.Segment != nil {
		quote.Segment = &entity.QuoteSegment{
			Id:       req.Segment.Id,
			Title:    req.Segment.Title,
			Type:     req.Segment.Type,
			Position: req.Segment.Position,
		}
	}
	if req.Timing != nil {
		quote.Timing = &entity.QuoteTiming{
			Timestamp:       req.Timing.Timestamp,
			SegmentMinute:   req.Timing.SegmentMinute,
			ApproximateTime: req.Timing.ApproximateTime,
		}
	}

	id, err := r.col.Add(ctx, r.mapper.ToData(quote))
	if err != nil {
		r.logger.Error("QuoteRepository", "Failed to create quote", map[string]interface{}{
			"error":  err.Error(),
			"author": authorName,
		})
		return "", &serverutils.PersistenceError{Op: "create quote", Err: err}
	}
	return id, nil
}

// Update merges only the supplied sections. Metadata leaves are written
// individually so a category change cannot clobber keywords; a content change
// recomputes them.
func (r *QuoteRepositoryImpl) Update(ctx context.Context, id string, req *dto.UpdateQuoteRequest) error {
	fields := map[string]interface{}{}

	if req.Content != nil {
		fields["content"] = *req.Content
		fields["metadata.keywords"] = toInterfaceSlice(keywords.Extract(*req.Content))
	}
	if req.ContentType != nil {
		fields["contentType"] = *req.ContentType
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Author != nil {
		fields["author"] = map[string]interface{}{
			"id":     req.Author.Id,
			"name":   req.Author.Name,
			"role":   req.Author.Role,
			"avatar": req.Author.Avatar,
		}
	}
	if req.Segment != nil {
		fields["segment"] = map[string]interface{}{
			"id":       req.Segment.Id,
			"title":    req.Segment.Title,
			"type":     req.Segment.Type,
			"position": req.Segment.Position,
		}
	}
	if req.Timing != nil {
		fields["timing"] = map[string]interface{}{
			"timestamp":       req.Timing.Timestamp,
			"segmentMinute":   req.Timing.SegmentMinute,
			"approximateTime": req.Timing.ApproximateTime,
		}
	}
	if req.Source != nil {
		fields["source"] = map[string]interface{}{
			"type":     req.Source.Type,
			"audioUrl": req.Source.AudioUrl,
			"duration": req.Source.Duration,
		}
	}
	if req.Metadata != nil {
		fields["metadata.category"] = req.Metadata.Category
		fields["metadata.tags"] = toInterfaceSlice(req.Metadata.Tags)
		fields["metadata.language"] = req.Metadata.Language
		fields["metadata.importance"] = req.Metadata.Importance
		fields["metadata.isVerified"] = req.Metadata.IsVerified
	}

	if len(fields) == 0 {
		return nil
	}

	if err := r.col.Update(ctx, id, fields); err != nil {
		r.logger.Error("QuoteRepository", "Failed to update quote", map[string]interface{}{
			"error":    err.Error(),
			"quote_id": id,
		})
		return &serverutils.PersistenceError{Op: "update quote", Err: err}
	}
	return nil
}

// Delete is a hard delete. Archival is a status value, not a deletion.
func (r *QuoteRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.col.Delete(ctx, id); err != nil {
		r.logger.Error("QuoteRepository", "Failed to delete quote", map[string]interface{}{
			"error":    err.Error(),
			"quote_id": id,
		})
		return &serverutils.PersistenceError{Op: "delete quote", Err: err}
	}
	return nil
}

func (r *QuoteRepositoryImpl) Get(ctx context.Context, id string) (*entity.Quote, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		return nil, &serverutils.PersistenceError{Op: "get quote", Err: err}
	}
	if doc == nil {
		return nil, nil
	}
	quote := r.mapper.ToEntity(*doc)
	return &quote, nil
}

func (r *QuoteRepositoryImpl) buildQuery(filters dto.QuoteFilters) docstore.Query {
	q := r.col.Query()

	indexable := []struct {
		path  string
		value string
	}{
		{"status", filters.Status},
		{"context.emissionId", filters.EmissionId},
		{"context.showPlanId", filters.ShowPlanId},
		{"segment.id", filters.SegmentId},
		{"author.id", filters.AuthorId},
		{"contentType", filters.ContentType},
		{"metadata.category", filters.Category},
		{"metadata.importance", filters.Importance},
		{"source.type", filters.SourceType},
	}
	for _, f := range indexable {
		if f.value != "" {
			q = q.Where(f.path, f.value)
		}
	}

	q = q.OrderBy("createdAt", filters.OrderDesc)
	if filters.Limit > 0 {
		q = q.Limit(filters.Limit)
	}
	return q
}

func (r *QuoteRepositoryImpl) List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error) {
	docs, err := r.buildQuery(filters).Documents(ctx)
	if err != nil {
		r.logger.Error("QuoteRepository", "Failed to list quotes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, &serverutils.PersistenceError{Op: "list quotes", Err: err}
	}
	return applyClientFilters(r.mapper.ToEntities(docs), filters), nil
}

func (r *QuoteRepositoryImpl) Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe {
	return r.buildQuery(filters).Subscribe(ctx,
		func(docs []docstore.Document) {
			onQuotes(applyClientFilters(r.mapper.ToEntities(docs), filters))
		},
		func(err error) {
			r.logger.Error("QuoteRepository", "Quote subscription failed", map[string]interface{}{
				"error": err.Error(),
			})
			onError(&serverutils.SubscriptionError{Collection: quotesCollection, Err: err})
		},
	)
}

// applyClientFilters runs the non-indexable filters in their fixed order:
// full-text, author name, tags, segment type, date range.
func applyClientFilters(quotes []entity.Quote, filters dto.QuoteFilters) []entity.Quote {
	result := quotes

	if query := strings.TrimSpace(filters.SearchQuery); query != "" {
		tokens := strings.Fields(strings.ToLower(query))
		result = filterQuotes(result, func(q entity.Quote) bool {
			haystack := strings.ToLower(strings.Join(append([]string{
				q.Content,
				q.Author.Name,
				q.Context.EmissionName,
				segmentTitle(q),
			}, append(q.Metadata.Tags, q.Metadata.Keywords...)...), " "))
			for _, token := range tokens {
				if !strings.Contains(haystack, token) {
					return false
				}
			}
			return true
		})
	}

	if filters.AuthorName != "" {
		needle := strings.ToLower(filters.AuthorName)
		result = filterQuotes(result, func(q entity.Quote) bool {
			return strings.Contains(strings.ToLower(q.Author.Name), needle)
		})
	}

	if len(filters.Tags) > 0 {
		wanted := make(map[string]struct{}, len(filters.Tags))
		for _, tag := range filters.Tags {
			wanted[tag] = struct{}{}
		}
		result = filterQuotes(result, func(q entity.Quote) bool {
			for _, tag := range q.Metadata.Tags {
				if _, ok := wanted[tag]; ok {
					return true
				}
			}
			return false
		})
	}

	if filters.SegmentType != "" {
		result = filterQuotes(result, func(q entity.Quote) bool {
			return q.Segment != nil && q.Segment.Type == filters.SegmentType
		})
	}

	if filters.DateFrom != "" || filters.DateTo != "" {
		result = filterQuotes(result, func(q entity.Quote) bool {
			date := quoteDate(q)
			if date == "" {
				return false
			}
			if filters.DateFrom != "" && date < filters.DateFrom {
				return false
			}
			if filters.DateTo != "" && date > filters.DateTo {
				return false
			}
			return true
		})
	}

	return result
}

func filterQuotes(quotes []entity.Quote, keep func(entity.Quote) bool) []entity.Quote {
	out := make([]entity.Quote, 0, len(quotes))
	for _, q := range quotes {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}

func segmentTitle(q entity.Quote) string {
	if q.Segment == nil {
		return ""
	}
	return q.Segment.Title
}

// quoteDate yields the YYYY-MM-DD used for date-range filtering: the
// broadcast date when present, otherwise the date part of createdAt.
func quoteDate(q entity.Quote) string {
	date := q.Context.BroadcastDate
	if date == "" {
		date = q.CreatedAt
	}
	if len(date) > 10 {
		date = date[:10]
	}
	return date
}

func toInterfaceSlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
