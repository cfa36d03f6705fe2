package pdf

import (
	"fmt"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// classicRenderer is the sober portrait-first template used for printed
// conductor sheets.
type classicRenderer struct{}

func (classicRenderer) renderShowPlan(rc *renderContext, show entity.ShowPlan) {
	doc := rc.doc
	doc.AddPage()

	// Header block: station, document type, status badge.
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(0, 10, rc.tr(rc.stationName), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 7, rc.tr("Conducteur d'émission"), "", 1, "C", false, 0, "")
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(0, 9, rc.tr(show.Title), "", 1, "C", false, 0, "")

	badge := statusColor(show.Status)
	doc.SetFillColor(badge.r, badge.g, badge.b)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	badgeWidth := 40.0
	left, _, _, _ := doc.GetMargins()
	doc.SetX(left + (pageWidth(doc)-badgeWidth)/2)
	doc.CellFormat(badgeWidth, 6, rc.tr(StatusLabel(show.Status)), "", 1, "C", true, 0, "")
	doc.Ln(4)

	// Info block with derived fields.
	doc.SetTextColor(33, 33, 33)
	doc.SetFont("Helvetica", "", 10)
	infoLine := func(label, value string) {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(42, 6, rc.tr(label), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.CellFormat(0, 6, rc.tr(value), "", 1, "L", false, 0, "")
	}
	infoLine("Date", show.Date.Format("02/01/2006"))
	infoLine("Horaire", fmt.Sprintf("%s - %s",
		show.Date.Format("15:04"), show.EndTime().Format("15:04")))
	infoLine("Durée totale", formatDuration(show.TotalDuration()))
	if show.EmissionName != "" {
		infoLine("Émission", show.EmissionName)
	}
	infoLine("Animateurs", presenterNames(show))
	if show.Description != "" {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(42, 6, rc.tr("Description"), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 6, rc.tr(show.Description), "", "L", false)
	}
	doc.Ln(4)

	renderClassicSegmentTable(rc, show)
}

func renderClassicSegmentTable(rc *renderContext, show entity.ShowPlan) {
	doc := rc.doc
	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"Horaire", 0.12 * width},
		{"Titre", 0.36 * width},
		{"Type", 0.15 * width},
		{"Durée", 0.11 * width},
		{"Intervenants", 0.26 * width},
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	doc.SetTextColor(33, 33, 33)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	startTimes := SegmentStartTimes(show.Date, show.Segments)

	doc.SetFont("Helvetica", "", 9)
	fill := false
	for i, segment := range show.Segments {
		doc.SetFillColor(245, 245, 245)
		guests := "-"
		if len(segment.GuestNames) > 0 {
			guests = segment.GuestNames[0]
			for _, g := range segment.GuestNames[1:] {
				guests += ", " + g
			}
		}
		cells := []string{
			startTimes[i].Format("15:04"),
			truncate(segment.Title, 42),
			segment.Type,
			formatDuration(segment.Duration),
			truncate(guests, 30),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}

func (classicRenderer) renderQuotePage(rc *renderContext, show entity.ShowPlan, quotes []entity.Quote) {
	doc := rc.doc
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(0, 9, rc.tr("Citations - "+show.Title), "", 1, "L", false, 0, "")
	doc.Ln(2)

	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"#", 0.05 * width},
		{"Auteur", 0.18 * width},
		{"Citation", 0.49 * width},
		{"Statut", 0.13 * width},
		{"Segment", 0.15 * width},
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	fill := false
	for i, quote := range quotes {
		doc.SetFillColor(245, 245, 245)
		segTitle := "-"
		if quote.Segment != nil && quote.Segment.Title != "" {
			segTitle = quote.Segment.Title
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			truncate(quote.Author.Name, 20),
			truncate(quote.Content, quoteContentLimit),
			QuoteStatusLabel(quote.Status),
			truncate(segTitle, 18),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}

func (classicRenderer) renderArchive(rc *renderContext, shows []entity.ShowPlan) {
	doc := rc.doc
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(0, 10, rc.tr(rc.stationName), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 7, rc.tr("Archive des conducteurs"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	stats := ComputeArchiveStats(shows)
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(33, 33, 33)
	summary := fmt.Sprintf("%d émissions  -  %s cumulées  -  %d segments  -  %d animateurs",
		stats.TotalShows,
		formatDuration(stats.TotalDurationMinutes),
		stats.TotalSegments,
		stats.DistinctPresenters,
	)
	doc.CellFormat(0, 7, rc.tr(summary), "", 1, "C", false, 0, "")
	doc.Ln(4)

	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"Date", 0.13 * width},
		{"Titre", 0.29 * width},
		{"Émission", 0.18 * width},
		{"Durée", 0.10 * width},
		{"Seg.", 0.07 * width},
		{"Animateur", 0.23 * width},
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(230, 230, 230)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	fill := false
	for _, show := range shows {
		doc.SetFillColor(245, 245, 245)
		cells := []string{
			show.Date.Format("02/01/2006"),
			truncate(show.Title, 34),
			truncate(show.EmissionName, 20),
			formatDuration(show.TotalDuration()),
			fmt.Sprintf("%d", len(show.Segments)),
			truncate(mainPresenter(show), 26),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}
