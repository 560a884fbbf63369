package model

// Margins is a set of page margins in centimeters.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// PageStyle carries the page-level style facts inferred from samples.
type PageStyle struct {
	MarginsCm Margins
}

// ContentTemplate is the fixed prologue/epilogue scaffold learned from sample
// files: leading nodes (letterhead-like unit/signer block), trailing nodes
// (attendee/distribution suffix), and the placeholder text spliced between
// them when a new document is created from the topic.
type ContentTemplate struct {
	LeadingNodes    []Node
	TrailingNodes   []Node
	BodyPlaceholder string
}

// Clone deep-copies the template.
func (c *ContentTemplate) Clone() *ContentTemplate {
	if c == nil {
		return nil
	}
	return &ContentTemplate{
		LeadingNodes:    cloneNodes(c.LeadingNodes),
		TrailingNodes:   cloneNodes(c.TrailingNodes),
		BodyPlaceholder: c.BodyPlaceholder,
	}
}

// IsEmpty reports whether the template carries no fixed blocks.
func (c *ContentTemplate) IsEmpty() bool {
	return c == nil || (len(c.LeadingNodes) == 0 && len(c.TrailingNodes) == 0)
}

// StyleRules is an inferred formatting rule set for one topic.
// Headings is keyed by level 1..4; absent levels mean "no rule inferred".
type StyleRules struct {
	Body            StyleAttrs
	Headings        map[int]StyleAttrs
	Page            PageStyle
	ContentTemplate *ContentTemplate
}

// Clone deep-copies the rule set.
func (r *StyleRules) Clone() *StyleRules {
	if r == nil {
		return nil
	}
	out := &StyleRules{
		Body:            r.Body.Clone(),
		Page:            r.Page,
		ContentTemplate: r.ContentTemplate.Clone(),
	}
	if r.Headings != nil {
		out.Headings = make(map[int]StyleAttrs, len(r.Headings))
		for lvl, a := range r.Headings {
			out.Headings[lvl] = a.Clone()
		}
	}
	return out
}

// HeadingAttrs returns the inferred attrs for a level, or a zero bag.
func (r *StyleRules) HeadingAttrs(level int) StyleAttrs {
	if r == nil || r.Headings == nil {
		return StyleAttrs{}
	}
	return r.Headings[level]
}

// FieldConfidence records how well one rule field was supported by samples.
type FieldConfidence struct {
	Confidence float64 `json:"confidence"`
	Samples    int     `json:"samples"`
}

// ConfidenceReport maps dotted field paths (e.g. "body.fontFamily",
// "headings.level3.fontSizePt") to their support.
type ConfidenceReport map[string]FieldConfidence

// Features is the per-sample style summary produced by the feature extractor
// and consumed by the rule aggregator.
type Features struct {
	Body            StyleAttrs
	Headings        map[int]StyleAttrs
	Page            *PageStyle
	ContentTemplate *ContentTemplate
}

// Attachment is one attachment entry in a document's structured fields.
type Attachment struct {
	Index int
	Name  string
}

// Fields is the structured-field bag that travels with a document body
// through import, editing and export.
type Fields struct {
	Title             string
	MainTo            string
	SignOff           string
	DocNo             string
	Signatory         string
	CopyNo            string
	Date              string // "2006-01-02"; rendered as 2006年1月2日
	ExportWithRedhead bool
	Attachments       []Attachment

	// TopicRules is the confirmed rule set of the topic the document was
	// created from, if any; the renderer resolves body/heading styles and
	// the content template through it.
	TopicRules *StyleRules
}
