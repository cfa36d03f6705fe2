package pdf

import (
	"fmt"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
)

// professionalRenderer is the landscape-first template with a dark banner and
// wider technical columns, meant for studio operators.
type professionalRenderer struct{}

func renderProBanner(rc *renderContext, subtitle string) {
	doc := rc.doc
	left, top, _, _ := doc.GetMargins()
	doc.SetFillColor(38, 50, 56)
	doc.Rect(left, top, pageWidth(doc), 18, "F")
	doc.SetXY(left+4, top+3)
	doc.SetFont("Helvetica", "B", 15)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(pageWidth(doc)/2, 7, rc.tr(rc.stationName), "", 2, "L", false, 0, "")
	doc.SetX(left + 4)
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(176, 190, 197)
	doc.CellFormat(pageWidth(doc)/2, 5, rc.tr(subtitle), "", 0, "L", false, 0, "")
	doc.SetY(top + 22)
}

func (professionalRenderer) renderShowPlan(rc *renderContext, show entity.ShowPlan) {
	doc := rc.doc
	doc.AddPage()
	renderProBanner(rc, "Conducteur d'émission")

	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(pageWidth(doc)*0.7, 8, rc.tr(show.Title), "", 0, "L", false, 0, "")

	badge := statusColor(show.Status)
	doc.SetFillColor(badge.r, badge.g, badge.b)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(pageWidth(doc)*0.3, 8, rc.tr(StatusLabel(show.Status)), "", 1, "C", true, 0, "")
	doc.Ln(2)

	// Two-column info strip.
	doc.SetTextColor(33, 33, 33)
	half := pageWidth(doc) / 2
	pair := func(leftLabel, leftValue, rightLabel, rightValue string) {
		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(32, 6, rc.tr(leftLabel), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(half-32, 6, rc.tr(leftValue), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(32, 6, rc.tr(rightLabel), "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 9)
		doc.CellFormat(half-32, 6, rc.tr(rightValue), "", 1, "L", false, 0, "")
	}
	pair("Date", show.Date.Format("02/01/2006"),
		"Horaire", fmt.Sprintf("%s - %s", show.Date.Format("15:04"), show.EndTime().Format("15:04")))
	pair("Émission", show.EmissionName,
		"Durée totale", formatDuration(show.TotalDuration()))
	pair("Animateurs", presenterNames(show), "Segments", fmt.Sprintf("%d", len(show.Segments)))
	doc.Ln(3)

	renderProSegmentTable(rc, show)
}

func renderProSegmentTable(rc *renderContext, show entity.ShowPlan) {
	doc := rc.doc
	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"Horaire", 0.09 * width},
		{"Titre", 0.22 * width},
		{"Type", 0.10 * width},
		{"Durée", 0.08 * width},
		{"Description", 0.27 * width},
		{"Notes techniques", 0.24 * width},
	}

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(55, 71, 79)
	doc.SetTextColor(255, 255, 255)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	startTimes := SegmentStartTimes(show.Date, show.Segments)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(33, 33, 33)
	fill := false
	for i, segment := range show.Segments {
		doc.SetFillColor(236, 239, 241)
		cells := []string{
			startTimes[i].Format("15:04"),
			truncate(segment.Title, 34),
			segment.Type,
			formatDuration(segment.Duration),
			truncate(segment.Description, 48),
			truncate(segment.TechnicalNotes, 42),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}

func (professionalRenderer) renderQuotePage(rc *renderContext, show entity.ShowPlan, quotes []entity.Quote) {
	doc := rc.doc
	doc.AddPage()
	renderProBanner(rc, "Citations - "+show.Title)

	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"#", 0.04 * width},
		{"Auteur", 0.16 * width},
		{"Citation", 0.50 * width},
		{"Statut", 0.12 * width},
		{"Segment", 0.18 * width},
	}

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(55, 71, 79)
	doc.SetTextColor(255, 255, 255)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(33, 33, 33)
	fill := false
	for i, quote := range quotes {
		doc.SetFillColor(236, 239, 241)
		segTitle := "-"
		if quote.Segment != nil && quote.Segment.Title != "" {
			segTitle = quote.Segment.Title
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			truncate(quote.Author.Name, 24),
			truncate(quote.Content, quoteContentLimit),
			QuoteStatusLabel(quote.Status),
			truncate(segTitle, 24),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}

func (professionalRenderer) renderArchive(rc *renderContext, shows []entity.ShowPlan) {
	doc := rc.doc
	doc.AddPage()
	renderProBanner(rc, "Archive des conducteurs")

	stats := ComputeArchiveStats(shows)

	// Stat cards above the table.
	cards := []struct {
		value string
		label string
	}{
		{fmt.Sprintf("%d", stats.TotalShows), "Émissions"},
		{formatDuration(stats.TotalDurationMinutes), "Durée cumulée"},
		{fmt.Sprintf("%d", stats.TotalSegments), "Segments"},
		{fmt.Sprintf("%d", stats.DistinctPresenters), "Animateurs"},
	}
	cardWidth := pageWidth(doc)/4 - 3
	left, _, _, _ := doc.GetMargins()
	y := doc.GetY()
	for i, card := range cards {
		x := left + float64(i)*(cardWidth+4)
		doc.SetXY(x, y)
		doc.SetFillColor(236, 239, 241)
		doc.Rect(x, y, cardWidth, 14, "F")
		doc.SetFont("Helvetica", "B", 12)
		doc.SetTextColor(38, 50, 56)
		doc.CellFormat(cardWidth, 8, rc.tr(card.value), "", 2, "C", false, 0, "")
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(96, 125, 139)
		doc.CellFormat(cardWidth, 5, rc.tr(card.label), "", 0, "C", false, 0, "")
	}
	doc.SetY(y + 18)

	width := pageWidth(doc)
	cols := []struct {
		label string
		w     float64
	}{
		{"Date", 0.10 * width},
		{"Titre", 0.26 * width},
		{"Émission", 0.16 * width},
		{"Durée", 0.09 * width},
		{"Seg.", 0.06 * width},
		{"Animateurs", 0.22 * width},
		{"Statut", 0.11 * width},
	}

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(55, 71, 79)
	doc.SetTextColor(255, 255, 255)
	for _, col := range cols {
		doc.CellFormat(col.w, 7, rc.tr(col.label), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(33, 33, 33)
	fill := false
	for _, show := range shows {
		doc.SetFillColor(236, 239, 241)
		cells := []string{
			show.Date.Format("02/01/2006"),
			truncate(show.Title, 40),
			truncate(show.EmissionName, 24),
			formatDuration(show.TotalDuration()),
			fmt.Sprintf("%d", len(show.Segments)),
			truncate(presenterNames(show), 36),
			StatusLabel(show.Status),
		}
		for j, col := range cols {
			doc.CellFormat(col.w, 6, rc.tr(cells[j]), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
		fill = !fill
	}
}
