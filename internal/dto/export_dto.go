package dto

type ExportPdfRequest struct {
	Type          string   `json:"type" validate:"required,oneof=showPlan archive"`
	ShowPlanId    string   `json:"showPlanId,omitempty"`
	ShowPlanIds   []string `json:"showPlanIds,omitempty"`
	Template      string   `json:"template,omitempty" validate:"omitempty,oneof=classic professional"`
	Orientation   string   `json:"orientation,omitempty" validate:"omitempty,oneof=portrait landscape"`
	IncludeQuotes bool     `json:"includeQuotes,omitempty"`
}
