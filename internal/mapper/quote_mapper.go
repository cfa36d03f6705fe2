package mapper

import (
	"strconv"
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// QuoteMapper translates between raw stored documents and the canonical Quote
// entity. Documents written by older client versions miss newer fields, so
// ToEntity is total: every access supplies a default and it never fails, for
// any subset of populated fields.
type QuoteMapper struct{}

func NewQuoteMapper() *QuoteMapper {
	return &QuoteMapper{}
}

func (m *QuoteMapper) ToEntity(doc docstore.Document) entity.Quote {
	data := doc.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	quote := entity.Quote{
		Id:          doc.ID,
		Content:     getString(data, "content", ""),
		ContentType: getString(data, "contentType", entity.ContentTypeQuote),
		Status:      getString(data, "status", entity.QuoteStatusDraft),

		CreatedBy:     getString(data, "createdBy", ""),
		CreatedByName: getString(data, "createdByName", ""),
		CreatedAt:     doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     doc.UpdatedAt.Format(time.RFC3339),
	}

	author := getMap(data, "author")
	quote.Author = entity.QuoteAuthor{
		Id:     idString(author["id"]),
		Name:   getString(author, "name", "Inconnu"),
		Role:   getString(author, "role", entity.AuthorRoleOther),
		Avatar: getString(author, "avatar", ""),
	}

	if segment := getMap(data, "segment"); len(segment) > 0 {
		quote.Segment = &entity.QuoteSegment{
			Id:       idString(segment["id"]),
			Title:    getString(segment, "title", ""),
			Type:     getString(segment, "type", ""),
			Position: int(getNumber(segment, "position", 0)),
		}
	}

	context := getMap(data, "context")
	quote.Context = entity.QuoteContext{
		ShowPlanId:    idString(context["showPlanId"]),
		ShowPlanTitle: getString(context, "showPlanTitle", ""),
		EmissionId:    idString(context["emissionId"]),
		EmissionName:  getString(context, "emissionName", ""),
		BroadcastDate: getString(context, "broadcastDate", ""),
	}

	if timing := getMap(data, "timing"); len(timing) > 0 {
		quote.Timing = &entity.QuoteTiming{
			Timestamp:       getString(timing, "timestamp", ""),
			SegmentMinute:   int(getNumber(timing, "segmentMinute", 0)),
			ApproximateTime: getString(timing, "approximateTime", ""),
		}
	}

	source := getMap(data, "source")
	quote.Source = entity.QuoteSource{
		Type:     getString(source, "type", entity.SourceTypeManual),
		AudioUrl: getString(source, "audioUrl", ""),
		Duration: getNumber(source, "duration", 0),
	}

	metadata := getMap(data, "metadata")
	quote.Metadata = entity.QuoteMetadata{
		Category:   getString(metadata, "category", ""),
		Tags:       getStringSlice(metadata, "tags"),
		Keywords:   getStringSlice(metadata, "keywords"),
		Language:   getString(metadata, "language", "fr"),
		Importance: getString(metadata, "importance", "medium"),
		IsVerified: getBool(metadata, "isVerified", false),
	}

	return quote
}

func (m *QuoteMapper) ToEntities(docs []docstore.Document) []entity.Quote {
	quotes := make([]entity.Quote, 0, len(docs))
	for _, doc := range docs {
		quotes = append(quotes, m.ToEntity(doc))
	}
	return quotes
}

// ToData builds the stored document for a canonical quote. All foreign keys
// are written as strings; the dual-representation read path exists only for
// documents written by the legacy client.
func (m *QuoteMapper) ToData(q entity.Quote) map[string]interface{} {
	data := map[string]interface{}{
		"content":     q.Content,
		"contentType": q.ContentType,
		"status":      q.Status,
		"author": map[string]interface{}{
			"id":     q.Author.Id,
			"name":   q.Author.Name,
			"role":   q.Author.Role,
			"avatar": q.Author.Avatar,
		},
		"context": map[string]interface{}{
			"showPlanId":    q.Context.ShowPlanId,
			"showPlanTitle": q.Context.ShowPlanTitle,
			"emissionId":    q.Context.EmissionId,
			"emissionName":  q.Context.EmissionName,
			"broadcastDate": q.Context.BroadcastDate,
		},
		"source": map[string]interface{}{
			"type":     q.Source.Type,
			"audioUrl": q.Source.AudioUrl,
			"duration": q.Source.Duration,
		},
		"metadata": map[string]interface{}{
			"category":   q.Metadata.Category,
			"tags":       toInterfaceSlice(q.Metadata.Tags),
			"keywords":   toInterfaceSlice(q.Metadata.Keywords),
			"language":   q.Metadata.Language,
			"importance": q.Metadata.Importance,
			"isVerified": q.Metadata.IsVerified,
		},
		"createdBy":     q.CreatedBy,
		"createdByName": q.CreatedByName,
	}

	if q.Segment != nil {
		data["segment"] = map[string]interface{}{
			"id":       q.Segment.Id,
			"title":    q.Segment.Title,
			"type":     q.Segment.Type,
			"position": q.Segment.Position,
		}
	}
	if q.Timing != nil {
		data["timing"] = map[string]interface{}{
			"timestamp":       q.Timing.Timestamp,
			"segmentMinute":   q.Timing.SegmentMinute,
			"approximateTime": q.Timing.ApproximateTime,
		}
	}

	return data
}

func getMap(data map[string]interface{}, key string) map[string]interface{} {
	if m, ok := data[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func getString(data map[string]interface{}, key, fallback string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func getBool(data map[string]interface{}, key string, fallback bool) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}
	return fallback
}

func getNumber(data map[string]interface{}, key string, fallback float64) float64 {
	switch n := data[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return fallback
}

func getStringSlice(data map[string]interface{}, key string) []string {
	out := []string{}
	switch raw := data[key].(type) {
	case []interface{}:
		for _, item := range raw {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []string:
		out = append(out, raw...)
	}
	return out
}

// idString coerces a foreign key stored as either a string or a number into
// its string form.
func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	}
	return ""
}

func toInterfaceSlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
