package model

// ElementType distinguishes letterhead element kinds.
type ElementType string

const (
	ElementText ElementType = "text"
	ElementLine ElementType = "line"
)

// Bind names the structured field a letterhead element renders.
type Bind string

const (
	BindUnitName  Bind = "unitName"
	BindDocNo     Bind = "docNo"
	BindSignatory Bind = "signatory"
	BindCopyNo    Bind = "copyNo"
	BindFixedText Bind = "fixedText"
)

// Anchor is the horizontal reference an element is positioned from.
type Anchor string

const (
	AnchorMarginLeft  Anchor = "marginLeft"
	AnchorCenter      Anchor = "center"
	AnchorMarginRight Anchor = "marginRight"
)

// LineLengthMode controls how a rule's length is computed.
type LineLengthMode string

const (
	// LineContentWidth stretches the rule across the printable width.
	LineContentWidth LineLengthMode = "contentWidth"
	// LineFixed uses the element's LengthCm.
	LineFixed LineLengthMode = "fixed"
)

// PageSpec describes the physical page of a letterhead template.
type PageSpec struct {
	Paper     string // "A4"
	MarginsCm Margins
}

// FontSpec is the typography of a letterhead text element.
type FontSpec struct {
	Family         string
	SizePt         float64
	Bold           bool
	Color          string // "#RRGGBB"
	LetterSpacingPt float64
}

// TextSpec is the text-specific configuration of an element.
type TextSpec struct {
	Align Alignment
	Font  FontSpec
}

// LineSpec is the rule-specific configuration of an element.
type LineSpec struct {
	LengthMode  LineLengthMode
	LengthCm    float64
	ThicknessPt float64
	Color       string
}

// XPos is the horizontal placement of an element.
type XPos struct {
	Anchor   Anchor
	OffsetCm float64
}

// Element is one positioned letterhead item (unit name, red rule, document
// number, signatory, copy number or fixed text).
type Element struct {
	ID             string
	Enabled        bool
	Type           ElementType
	Bind           Bind
	FixedText      string
	VisibleIfEmpty bool
	X              XPos
	YCm            float64
	Text           *TextSpec
	Line           *LineSpec
}

// LetterheadTemplate is the positioned header printed on page one of an
// official document.
type LetterheadTemplate struct {
	Name     string
	Version  int
	Page     PageSpec
	Elements []Element
}

// EnabledElements returns the enabled elements in declaration order.
func (t *LetterheadTemplate) EnabledElements() []Element {
	out := make([]Element, 0, len(t.Elements))
	for _, e := range t.Elements {
		if e.Enabled {
			out = append(out, e)
		}
	}
	return out
}
