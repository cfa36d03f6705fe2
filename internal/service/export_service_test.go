package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwilly3/radioManager-SaaS-sub001/internal/docstore"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/dto"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/entity"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pdf"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/logger"
	"github.com/lwilly3/radioManager-SaaS-sub001/internal/pkg/serverutils"
)

type stubShowPlanRepo struct {
	plans map[string]entity.ShowPlan
}

func (r *stubShowPlanRepo) Get(ctx context.Context, id string) (*entity.ShowPlan, error) {
	if plan, ok := r.plans[id]; ok {
		return &plan, nil
	}
	return nil, nil
}

func (r *stubShowPlanRepo) GetMany(ctx context.Context, ids []string) ([]entity.ShowPlan, error) {
	out := []entity.ShowPlan{}
	for _, id := range ids {
		if plan, ok := r.plans[id]; ok {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (r *stubShowPlanRepo) List(ctx context.Context, limit int) ([]entity.ShowPlan, error) {
	return nil, nil
}

type stubQuoteRepo struct {
	byShowPlan      []entity.Quote
	showPlanLookups int
}

func (r *stubQuoteRepo) Create(ctx context.Context, req *dto.CreateQuoteRequest, authorId, authorName string) (string, error) {
	return "", nil
}
func (r *stubQuoteRepo) Update(ctx context.Context, id string, req *dto.UpdateQuoteRequest) error {
	return nil
}
func (r *stubQuoteRepo) Delete(ctx context.Context, id string) error { return nil }
func (r *stubQuoteRepo) Get(ctx context.Context, id string) (*entity.Quote, error) {
	return nil, nil
}
func (r *stubQuoteRepo) List(ctx context.Context, filters dto.QuoteFilters) ([]entity.Quote, error) {
	return nil, nil
}
func (r *stubQuoteRepo) Subscribe(ctx context.Context, filters dto.QuoteFilters, onQuotes func([]entity.Quote), onError func(error)) docstore.Unsubscribe {
	return func() {}
}
func (r *stubQuoteRepo) GetQuotesByShowPlan(ctx context.Context, showPlanId string) ([]entity.Quote, error) {
	r.showPlanLookups++
	return r.byShowPlan, nil
}
func (r *stubQuoteRepo) GetQuotesBySegment(ctx context.Context, segmentId string) ([]entity.Quote, error) {
	return nil, nil
}
func (r *stubQuoteRepo) SubscribeShowPlanQuotes(ctx context.Context, showPlanId string, onQuotes func([]entity.Quote)) docstore.Unsubscribe {
	return func() {}
}

func newExportFixture() (*stubQuoteRepo, *stubShowPlanRepo, IExportService) {
	quoteRepo := &stubQuoteRepo{}
	showPlanRepo := &stubShowPlanRepo{
		plans: map[string]entity.ShowPlan{
			"sp1": {
				Id:    "sp1",
				Title: "La Matinale du Lundi",
				Date:  time.Date(2024, 3, 18, 7, 0, 0, 0, time.UTC),
				Segments: []entity.ShowSegment{
					{Title: "Ouverture", Duration: 5},
				},
			},
		},
	}
	engine := pdf.NewEngine("Radio Fréquence Sud", logger.NewNopLogger())
	svc := NewExportService(quoteRepo, showPlanRepo, engine, nil, logger.NewNopLogger())
	return quoteRepo, showPlanRepo, svc
}

func TestExportPdfRequiresAuthentication(t *testing.T) {
	_, _, svc := newExportFixture()

	res, err := svc.ExportPdf(context.Background(), "", "", &dto.ExportPdfRequest{Type: "showPlan", ShowPlanId: "sp1"})
	require.Error(t, err)
	assert.Nil(t, res)
	var naErr *serverutils.NotAuthenticatedError
	assert.ErrorAs(t, err, &naErr)
	// The guard rejects before the run starts.
	assert.Equal(t, ExportIdle, svc.Status())
}

func TestExportPdfShowPlan(t *testing.T) {
	_, _, svc := newExportFixture()

	res, err := svc.ExportPdf(context.Background(), "u1", "Awa", &dto.ExportPdfRequest{
		Type:       "showPlan",
		ShowPlanId: "sp1",
		Template:   "classic",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, bytes.HasPrefix(res.Blob, []byte("%PDF")))
	assert.Equal(t, "conducteur_la_matinale_du_lundi_2024-03-18.pdf", res.Filename)
	assert.Equal(t, ExportSucceeded, svc.Status())
}

func TestExportPdfShowPlanWithQuotes(t *testing.T) {
	quoteRepo, _, svc := newExportFixture()
	quoteRepo.byShowPlan = []entity.Quote{
		{Content: "Extrait mémorable", Author: entity.QuoteAuthor{Name: "Invité"}},
	}

	res, err := svc.ExportPdf(context.Background(), "u1", "Awa", &dto.ExportPdfRequest{
		Type:          "showPlan",
		ShowPlanId:    "sp1",
		IncludeQuotes: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, quoteRepo.showPlanLookups)
}

func TestExportPdfShowPlanWithoutQuotesSkipsLookup(t *testing.T) {
	quoteRepo, _, svc := newExportFixture()

	_, err := svc.ExportPdf(context.Background(), "u1", "Awa", &dto.ExportPdfRequest{
		Type:       "showPlan",
		ShowPlanId: "sp1",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, quoteRepo.showPlanLookups)
}

func TestExportPdfMissingShowPlan(t *testing.T) {
	_, _, svc := newExportFixture()

	res, err := svc.ExportPdf(context.Background(), "u1", "Awa", &dto.ExportPdfRequest{
		Type:       "showPlan",
		ShowPlanId: "inexistant",
	})
	require.Error(t, err)
	assert.Nil(t, res)
	var rerr *serverutils.RenderError
	assert.ErrorAs(t, err, &rerr)
	assert.Equal(t, ExportFailed, svc.Status())
}

func TestExportPdfArchive(t *testing.T) {
	_, _, svc := newExportFixture()

	res, err := svc.ExportPdf(context.Background(), "u1", "Awa", &dto.ExportPdfRequest{
		Type:        "archive",
		ShowPlanIds: []string{"sp1"},
		Template:    "professional",
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, bytes.HasPrefix(res.Blob, []byte("%PDF")))
	assert.Contains(t, res.Filename, "archive_conducteurs_")
	assert.Equal(t, ExportSucceeded, svc.Status())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"La Matinale", "la_matinale"},
		{"Édition spéciale 2024", "dition_sp_ciale_2024"},
		{"  trop   d'espaces  ", "trop_d_espaces"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in))
	}
}
