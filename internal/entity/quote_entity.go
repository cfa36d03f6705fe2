package entity

// Quote content types.
const (
	ContentTypeQuote     = "quote"
	ContentTypeKeyIdea   = "key_idea"
	ContentTypeStatement = "statement"
	ContentTypeFact      = "fact"
)

// Quote statuses. Draft is the creation default; transitions are
// unconstrained but gated by authorization.
const (
	QuoteStatusDraft     = "draft"
	QuoteStatusValidated = "validated"
	QuoteStatusArchived  = "archived"
)

// Author roles.
const (
	AuthorRoleGuest     = "guest"
	AuthorRolePresenter = "presenter"
	AuthorRoleCaller    = "caller"
	AuthorRoleOther     = "other"
)

// Source types.
const (
	SourceTypeManual              = "manual"
	SourceTypeStreamTranscription = "stream_transcription"
	SourceTypeAudioFile           = "audio_file"
)

type QuoteAuthor struct {
	Id     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// QuoteSegment links a quote to a show segment. Nil for quotes not tied to a
// specific segment.
type QuoteSegment struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type,omitempty"`
	Position int    `json:"position"`
}

// QuoteContext is a denormalized snapshot of the parent show plan at capture
// time, not a live reference.
type QuoteContext struct {
	ShowPlanId    string `json:"showPlanId,omitempty"`
	ShowPlanTitle string `json:"showPlanTitle,omitempty"`
	EmissionId    string `json:"emissionId,omitempty"`
	EmissionName  string `json:"emissionName,omitempty"`
	BroadcastDate string `json:"broadcastDate,omitempty"`
}

// QuoteTiming is never required and never blocks persistence.
type QuoteTiming struct {
	Timestamp       string `json:"timestamp,omitempty"`
	SegmentMinute   int    `json:"segmentMinute,omitempty"`
	ApproximateTime string `json:"approximateTime,omitempty"` // start, middle, end
}

type QuoteSource struct {
	Type     string  `json:"type"`
	AudioUrl string  `json:"audioUrl,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

type QuoteMetadata struct {
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags"`
	Keywords   []string `json:"keywords"`
	Language   string   `json:"language"`
	Importance string   `json:"importance"` // low, medium, high
	IsVerified bool     `json:"isVerified"`
}

// Quote is the canonical shape every stored document normalizes into.
// Content and Author.Name are always present; everything else may be absent
// in the underlying document.
type Quote struct {
	Id          string        `json:"id"`
	Content     string        `json:"content"`
	ContentType string        `json:"contentType"`
	Author      QuoteAuthor   `json:"author"`
	Segment     *QuoteSegment `json:"segment,omitempty"`
	Context     QuoteContext  `json:"context"`
	Timing      *QuoteTiming  `json:"timing,omitempty"`
	Source      QuoteSource   `json:"source"`
	Metadata    QuoteMetadata `json:"metadata"`
	Status      string        `json:"status"`

	CreatedBy     string `json:"createdBy,omitempty"`
	CreatedByName string `json:"createdByName,omitempty"`
	CreatedAt     string `json:"createdAt"` // ISO-8601
	UpdatedAt     string `json:"updatedAt"` // ISO-8601
}
