package pdf

type TemplateID string

const (
	TemplateClassic      TemplateID = "classic"
	TemplateProfessional TemplateID = "professional"
)

type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Template is a pure presentation configuration; there is no lifecycle beyond
// this static registration.
type Template struct {
	ID                 TemplateID
	Name               string
	DefaultOrientation Orientation
}

var templates = map[TemplateID]Template{
	TemplateClassic: {
		ID:                 TemplateClassic,
		Name:               "Classique",
		DefaultOrientation: OrientationPortrait,
	},
	TemplateProfessional: {
		ID:                 TemplateProfessional,
		Name:               "Professionnel",
		DefaultOrientation: OrientationLandscape,
	},
}

func TemplateByID(id TemplateID) (Template, bool) {
	tpl, ok := templates[id]
	return tpl, ok
}

// ExportOptions models the template/orientation coupling of the export
// dialog: picking a template resets orientation to that template's default,
// a later manual override sticks until the template changes again.
type ExportOptions struct {
	Template    TemplateID
	Orientation Orientation
}

func NewExportOptions() ExportOptions {
	return ExportOptions{
		Template:    TemplateClassic,
		Orientation: templates[TemplateClassic].DefaultOrientation,
	}
}

func (o *ExportOptions) SelectTemplate(id TemplateID) {
	tpl, ok := templates[id]
	if !ok {
		return
	}
	o.Template = tpl.ID
	o.Orientation = tpl.DefaultOrientation
}

func (o *ExportOptions) SetOrientation(orientation Orientation) {
	o.Orientation = orientation
}
