package dto

import (
	"strconv"
	"strings"
)

type AuthorPayload struct {
	Id     string `json:"id,omitempty"`
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=guest presenter caller other"`
	Avatar string `json:"avatar,omitempty"`
}

type SegmentPayload struct {
	Id       string `json:"id" validate:"required"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type,omitempty"`
	Position int    `json:"position,omitempty"`
}

type ContextPayload struct {
	ShowPlanId    string `json:"showPlanId,omitempty"`
	ShowPlanTitle string `json:"showPlanTitle,omitempty"`
	EmissionId    string `json:"emissionId,omitempty"`
	EmissionName  string `json:"emissionName,omitempty"`
	BroadcastDate string `json:"broadcastDate,omitempty"`
}

type TimingPayload struct {
	Timestamp       string `json:"timestamp,omitempty"`
	SegmentMinute   int    `json:"segmentMinute,omitempty"`
	ApproximateTime string `json:"approximateTime,omitempty" validate:"omitempty,oneof=start middle end"`
}

type SourcePayload struct {
	Type     string  `json:"type,omitempty" validate:"omitempty,oneof=manual stream_transcription audio_file"`
	AudioUrl string  `json:"audioUrl,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

type MetadataPayload struct {
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Language   string   `json:"language,omitempty"`
	Importance string   `json:"importance,omitempty" validate:"omitempty,oneof=low medium high"`
	IsVerified bool     `json:"isVerified,omitempty"`
}

type CreateQuoteRequest struct {
	Content     string          `json:"content" validate:"required,min=1,max=1000"`
	ContentType string          `json:"contentType,omitempty" validate:"omitempty,oneof=quote key_idea statement fact"`
	Author      AuthorPayload   `json:"author" validate:"required"`
	Segment     *SegmentPayload `json:"segment,omitempty"`
	Context     ContextPayload  `json:"context,omitempty"`
	Timing      *TimingPayload  `json:"timing,omitempty"`
	Source      *SourcePayload  `json:"source,omitempty"`
	Metadata    MetadataPayload `json:"metadata,omitempty"`
}

type CreateQuoteResponse struct {
	Id string `json:"id"`
}

// UpdateQuoteRequest carries only the sections to change. Absent sections are
// left untouched in the stored document.
type UpdateQuoteRequest struct {
	Content     *string          `json:"content,omitempty" validate:"omitempty,min=1,max=1000"`
	ContentType *string          `json:"contentType,omitempty" validate:"omitempty,oneof=quote key_idea statement fact"`
	Status      *string          `json:"status,omitempty" validate:"omitempty,oneof=draft validated archived"`
	Author      *AuthorPayload   `json:"author,omitempty"`
	Segment     *SegmentPayload  `json:"segment,omitempty"`
	Timing      *TimingPayload   `json:"timing,omitempty"`
	Source      *SourcePayload   `json:"source,omitempty"`
	Metadata    *MetadataPayload `json:"metadata,omitempty"`
}

// QuoteFilters scopes quote listings and live feeds. The first nine fields are
// pushed into the store query as equality predicates; the rest are applied
// client-side in a fixed order.
type QuoteFilters struct {
	Status      string `json:"status,omitempty" query:"status"`
	EmissionId  string `json:"emissionId,omitempty" query:"emissionId"`
	ShowPlanId  string `json:"showPlanId,omitempty" query:"showPlanId"`
	SegmentId   string `json:"segmentId,omitempty" query:"segmentId"`
	AuthorId    string `json:"authorId,omitempty" query:"authorId"`
	ContentType string `json:"contentType,omitempty" query:"contentType"`
	Category    string `json:"category,omitempty" query:"category"`
	Importance  string `json:"importance,omitempty" query:"importance"`
	SourceType  string `json:"sourceType,omitempty" query:"sourceType"`

	SearchQuery string   `json:"q,omitempty" query:"q"`
	AuthorName  string   `json:"authorName,omitempty" query:"authorName"`
	Tags        []string `json:"tags,omitempty" query:"tags"`
	SegmentType string   `json:"segmentType,omitempty" query:"segmentType"`
	DateFrom    string   `json:"dateFrom,omitempty" query:"dateFrom"` // YYYY-MM-DD
	DateTo      string   `json:"dateTo,omitempty" query:"dateTo"`

	OrderDesc bool `json:"orderDesc,omitempty" query:"orderDesc"`
	Limit     int  `json:"limit,omitempty" query:"limit"`
	RealTime  bool `json:"realTime,omitempty" query:"realTime"`
}

// Signature identifies a filter set for resubscription decisions. Tags enter
// as their joined string form: a fresh array with identical contents must not
// count as a change.
func (f QuoteFilters) Signature() string {
	return strings.Join([]string{
		f.Status, f.EmissionId, f.ShowPlanId, f.SegmentId, f.AuthorId,
		f.ContentType, f.Category, f.Importance, f.SourceType,
		f.SearchQuery, f.AuthorName, strings.Join(f.Tags, ","), f.SegmentType,
		f.DateFrom, f.DateTo,
		strconv.FormatBool(f.OrderDesc), strconv.Itoa(f.Limit),
		strconv.FormatBool(f.RealTime),
	}, "|")
}
