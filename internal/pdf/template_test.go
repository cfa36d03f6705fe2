package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExportOptionsDefaults(t *testing.T) {
	opts := NewExportOptions()

	assert.Equal(t, TemplateClassic, opts.Template)
	assert.Equal(t, OrientationPortrait, opts.Orientation)
}

func TestSelectTemplateResetsOrientation(t *testing.T) {
	opts := NewExportOptions()

	opts.SetOrientation(OrientationLandscape)
	assert.Equal(t, OrientationLandscape, opts.Orientation)

	// Re-selecting a template discards the manual override.
	opts.SelectTemplate(TemplateProfessional)
	assert.Equal(t, TemplateProfessional, opts.Template)
	assert.Equal(t, OrientationLandscape, opts.Orientation)

	opts.SelectTemplate(TemplateClassic)
	assert.Equal(t, OrientationPortrait, opts.Orientation)
}

func TestManualOrientationSticksUntilTemplateChange(t *testing.T) {
	opts := NewExportOptions()

	opts.SetOrientation(OrientationLandscape)
	opts.SetOrientation(OrientationLandscape)
	assert.Equal(t, TemplateClassic, opts.Template)
	assert.Equal(t, OrientationLandscape, opts.Orientation)

	opts.SelectTemplate(TemplateProfessional)
	opts.SetOrientation(OrientationPortrait)
	assert.Equal(t, OrientationPortrait, opts.Orientation)
}

func TestSelectTemplateUnknownIsIgnored(t *testing.T) {
	opts := NewExportOptions()
	opts.SetOrientation(OrientationLandscape)

	opts.SelectTemplate(TemplateID("fancy"))

	assert.Equal(t, TemplateClassic, opts.Template)
	assert.Equal(t, OrientationLandscape, opts.Orientation)
}

func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID(TemplateProfessional)
	assert.True(t, ok)
	assert.Equal(t, OrientationLandscape, tpl.DefaultOrientation)

	_, ok = TemplateByID(TemplateID("fancy"))
	assert.False(t, ok)
}
