package pdf

import (
	"fmt"
	"time"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

var statusLabels = map[string]string{
	entity.ShowPlanStatusDraft:     "Brouillon",
	entity.ShowPlanStatusPlanned:   "Planifié",
	entity.ShowPlanStatusLive:      "En direct",
	entity.ShowPlanStatusCompleted: "Terminé",
	entity.ShowPlanStatusArchived:  "Archivé",
}

type rgb struct{ r, g, b int }

var statusColors = map[string]rgb{
	entity.ShowPlanStatusDraft:     {128, 128, 128},
	entity.ShowPlanStatusPlanned:   {41, 98, 255},
	entity.ShowPlanStatusLive:      {211, 47, 47},
	entity.ShowPlanStatusCompleted: {46, 125, 50},
	entity.ShowPlanStatusArchived:  {93, 64, 55},
}

var defaultStatusColor = rgb{117, 117, 117}

// StatusLabel resolves a status to its display label. Unknown values pass
// through as-is.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

func statusColor(status string) rgb {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return defaultStatusColor
}

var quoteStatusLabels = map[string]string{
	entity.QuoteStatusDraft:     "Brouillon",
	entity.QuoteStatusValidated: "Validée",
	entity.QuoteStatusArchived:  "Archivée",
}

func QuoteStatusLabel(status string) string {
	if label, ok := quoteStatusLabels[status]; ok {
		return label
	}
	return status
}

// SegmentStartTimes walks segments in STORED order with a wall-clock cursor
// starting at the show start. This is the only place start times exist;
// segments never store their own.
func SegmentStartTimes(start time.Time, segments []entity.ShowSegment) []time.Time {
	times := make([]time.Time, len(segments))
	cursor := start
	for i, segment := range segments {
		times[i] = cursor
		cursor = cursor.Add(time.Duration(segment.Duration) * time.Minute)
	}
	return times
}

type ArchiveStats struct {
	TotalShows           int
	TotalDurationMinutes int
	TotalSegments        int
	DistinctPresenters   int
}

func ComputeArchiveStats(shows []entity.ShowPlan) ArchiveStats {
	stats := ArchiveStats{TotalShows: len(shows)}
	presenters := make(map[string]struct{})
	for _, show := range shows {
		stats.TotalDurationMinutes += show.TotalDuration()
		stats.TotalSegments += len(show.Segments)
		for _, p := range show.Presenters {
			presenters[p.Name] = struct{}{}
		}
	}
	stats.DistinctPresenters = len(presenters)
	return stats
}

// quoteContentLimit bounds quote text in export tables.
const quoteContentLimit = 120

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func formatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02d", h, m)
	}
}
