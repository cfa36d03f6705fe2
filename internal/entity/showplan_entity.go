package entity

import "time"

// Show plan statuses as written by the planning client. Unknown values pass
// through rendering with a default color.
const (
	ShowPlanStatusDraft     = "draft"
	ShowPlanStatusPlanned   = "planned"
	ShowPlanStatusLive      = "live"
	ShowPlanStatusCompleted = "completed"
	ShowPlanStatusArchived  = "archived"
)

type Presenter struct {
	Id     string `json:"id,omitempty"`
	Name   string `json:"name"`
	IsMain bool   `json:"isMainPresenter,omitempty"`
}

// ShowSegment carries a duration in minutes but no start time; wall-clock
// start times are computed by walking segments in stored order.
type ShowSegment struct {
	Id             string   `json:"id"`
	Title          string   `json:"title"`
	Type           string   `json:"type,omitempty"`
	Position       int      `json:"position"`
	Duration       int      `json:"duration"` // minutes
	Description    string   `json:"description,omitempty"`
	GuestNames     []string `json:"guests,omitempty"`
	TechnicalNotes string   `json:"technicalNotes,omitempty"`
}

// ShowPlan is read-only for this service: the planning client owns it, the
// quote subsystem and the PDF engine only consume it.
type ShowPlan struct {
	Id           string        `json:"id"`
	Title        string        `json:"title"`
	EmissionId   string        `json:"emissionId,omitempty"`
	EmissionName string        `json:"emission,omitempty"`
	Date         time.Time     `json:"date"`
	Description  string        `json:"description,omitempty"`
	Status       string        `json:"status"`
	Presenters   []Presenter   `json:"presenters"`
	Segments     []ShowSegment `json:"segments"`
}

// TotalDuration sums segment durations in minutes.
func (s ShowPlan) TotalDuration() int {
	total := 0
	for _, seg := range s.Segments {
		total += seg.Duration
	}
	return total
}

// EndTime is the show start plus the total duration.
func (s ShowPlan) EndTime() time.Time {
	return s.Date.Add(time.Duration(s.TotalDuration()) * time.Minute)
}
