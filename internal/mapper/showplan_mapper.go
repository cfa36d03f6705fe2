package mapper

import (
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// ShowPlanMapper normalizes show plan documents written by the planning
// client. Same totality rule as quotes: defaults everywhere, no failures.
type ShowPlanMapper struct{}

func NewShowPlanMapper() *ShowPlanMapper {
	return &ShowPlanMapper{}
}

func (m *ShowPlanMapper) ToEntity(doc docstore.Document) entity.ShowPlan {
	data := doc.Data
	if data == nil {
		data = map[string]interface{}{}
	}

	plan := entity.ShowPlan{
		Id:           doc.ID,
		Title:        getString(data, "title", "Sans titre"),
		EmissionId:   idString(data["emissionId"]),
		EmissionName: getString(data, "emission", getString(data, "emissionName", "")),
		Description:  getString(data, "description", ""),
		Status:       getString(data, "status", entity.ShowPlanStatusDraft),
		Date:         parseDate(data, doc.CreatedAt),
		Presenters:   []entity.Presenter{},
		Segments:     []entity.ShowSegment{},
	}

	if raw, ok := data["presenters"].([]interface{}); ok {
		for _, item := range raw {
			p, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			plan.Presenters = append(plan.Presenters, entity.Presenter{
				Id:     idString(p["id"]),
				Name:   getString(p, "name", "Inconnu"),
				IsMain: getBool(p, "isMainPresenter", false),
			})
		}
	}

	if raw, ok := data["segments"].([]interface{}); ok {
		for _, item := range raw {
			s, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			plan.Segments = append(plan.Segments, entity.ShowSegment{
				Id:             idString(s["id"]),
				Title:          getString(s, "title", ""),
				Type:           getString(s, "type", ""),
				Position:       int(getNumber(s, "position", 0)),
				Duration:       int(getNumber(s, "duration", 0)),
				Description:    getString(s, "description", ""),
				GuestNames:     getStringSlice(s, "guests"),
				TechnicalNotes: getString(s, "technicalNotes", ""),
			})
		}
	}

	return plan
}

func (m *ShowPlanMapper) ToEntities(docs []docstore.Document) []entity.ShowPlan {
	plans := make([]entity.ShowPlan, 0, len(docs))
	for _, doc := range docs {
		plans = append(plans, m.ToEntity(doc))
	}
	return plans
}

func parseDate(data map[string]interface{}, fallback time.Time) time.Time {
	for _, key := range []string{"date", "broadcastDate"} {
		raw := getString(data, key, "")
		if raw == "" {
			continue
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t
			}
		}
	}
	return fallback
}
