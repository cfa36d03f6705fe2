package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
)

type DocumentType string

const (
	DocumentShowPlan DocumentType = "showPlan"
	DocumentArchive  DocumentType = "archive"
)

// ExportRequest is the single accepted export shape: one show plan or an
// archive listing, a template, an orientation, and optionally the quotes to
// append.
type ExportRequest struct {
	ShowPlan      *entity.ShowPlan
	ShowPlans     []entity.ShowPlan
	Type          DocumentType
	Template      TemplateID
	Orientation   Orientation
	IncludeQuotes bool
	Quotes        []entity.Quote
	GeneratedBy   string
}

// Engine renders show plans and archives into paginated PDF documents.
type Engine struct {
	stationName string
	logger      logger.ILogger
	now         func() time.Time
}

func NewEngine(stationName string, log logger.ILogger) *Engine {
	return &Engine{
		stationName: stationName,
		logger:      log,
		now:         time.Now,
	}
}

// renderContext carries per-export state shared by both templates.
type renderContext struct {
	doc         *fpdf.Fpdf
	tr          func(string) string
	stationName string
	generatedAt time.Time
	generatedBy string
	landscape   bool
}

// Export renders the request into a binary document. Any rendering failure
// yields a RenderError and no blob; there is no partial-document recovery.
func (e *Engine) Export(req ExportRequest) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("PdfEngine", "Export panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
				"type":  string(req.Type),
			})
			out = nil
			err = &serverutils.RenderError{Err: fmt.Errorf("render panic: %v", r)}
		}
	}()

	tpl, ok := TemplateByID(req.Template)
	if !ok {
		tpl = templates[TemplateClassic]
	}
	orientation := req.Orientation
	if orientation == "" {
		orientation = tpl.DefaultOrientation
	}

	switch req.Type {
	case DocumentShowPlan:
		if req.ShowPlan == nil {
			return nil, &serverutils.RenderError{Err: fmt.Errorf("showPlan export without a show plan")}
		}
	case DocumentArchive:
		if req.ShowPlans == nil {
			return nil, &serverutils.RenderError{Err: fmt.Errorf("archive export without show plans")}
		}
	default:
		return nil, &serverutils.RenderError{Err: fmt.Errorf("unsupported export type %q", req.Type)}
	}

	orientationCode := "P"
	if orientation == OrientationLandscape {
		orientationCode = "L"
	}

	doc := fpdf.New(orientationCode, "mm", "A4", "")
	doc.SetAutoPageBreak(true, 22)
	doc.AliasNbPages("")

	generatedBy := req.GeneratedBy
	if generatedBy == "" {
		generatedBy = "Utilisateur inconnu"
	}

	rc := &renderContext{
		doc:         doc,
		tr:          doc.UnicodeTranslatorFromDescriptor(""),
		stationName: e.stationName,
		generatedAt: e.now(),
		generatedBy: generatedBy,
		landscape:   orientation == OrientationLandscape,
	}

	// The footer closure runs for every page when Output finalizes the
	// document, so page totals and the generation stamp land on all pages
	// after content exists.
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		footer := fmt.Sprintf("Page %d/{nb}  -  Généré le %s par %s",
			doc.PageNo(),
			rc.generatedAt.Format("02/01/2006 15:04"),
			rc.generatedBy,
		)
		doc.CellFormat(0, 10, rc.tr(footer), "", 0, "C", false, 0, "")
	})

	var renderer templateRenderer
	switch tpl.ID {
	case TemplateProfessional:
		renderer = professionalRenderer{}
	default:
		renderer = classicRenderer{}
	}

	switch req.Type {
	case DocumentShowPlan:
		renderer.renderShowPlan(rc, *req.ShowPlan)
		if req.IncludeQuotes && len(req.Quotes) > 0 {
			renderer.renderQuotePage(rc, *req.ShowPlan, req.Quotes)
		}
	case DocumentArchive:
		renderer.renderArchive(rc, req.ShowPlans)
	}

	if doc.Err() {
		e.logger.Error("PdfEngine", "Export failed", map[string]interface{}{
			"error": doc.Error().Error(),
			"type":  string(req.Type),
		})
		return nil, &serverutils.RenderError{Err: doc.Error()}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		e.logger.Error("PdfEngine", "Export output failed", map[string]interface{}{
			"error": err.Error(),
			"type":  string(req.Type),
		})
		return nil, &serverutils.RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// templateRenderer is implemented by each visual template.
type templateRenderer interface {
	renderShowPlan(rc *renderContext, show entity.ShowPlan)
	renderQuotePage(rc *renderContext, show entity.ShowPlan, quotes []entity.Quote)
	renderArchive(rc *renderContext, shows []entity.ShowPlan)
}

// pageWidth returns the usable width between margins.
func pageWidth(doc *fpdf.Fpdf) float64 {
	w, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	return w - left - right
}

func mainPresenter(show entity.ShowPlan) string {
	for _, p := range show.Presenters {
		if p.IsMain {
			return p.Name
		}
	}
	if len(show.Presenters) > 0 {
		return show.Presenters[0].Name
	}
	return "-"
}

func presenterNames(show entity.ShowPlan) string {
	if len(show.Presenters) == 0 {
		return "-"
	}
	names := make([]string, 0, len(show.Presenters))
	for _, p := range show.Presenters {
		names = append(names, p.Name)
	}
	out := names[0]
	for _, n := range names[1:] {
		out += ", " + n
	}
	return out
}
