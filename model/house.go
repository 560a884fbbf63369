package model

// House-style constants for Chinese official ("red-head") documents.
// Page geometry follows GB/T 9704: A4, 3.7/3.5 cm vertical and 2.8±0.3 cm
// horizontal margins, 22 lines of 28 characters.

const (
	PageWidthCm  = 21.0
	PageHeightCm = 29.7

	// RedColor is the house red for letterhead text and rules.
	RedColor = "#D40000"
)

// DefaultMargins is the standard page margin set in centimeters.
var DefaultMargins = Margins{Top: 3.7, Bottom: 3.5, Left: 2.7, Right: 2.5}

// ContentWidthCm returns the printable width for the given margins.
func ContentWidthCm(m Margins) float64 {
	return PageWidthCm - m.Left - m.Right
}

// Role fonts and sizes of the house style. Level-1/2 headings default to the
// display faces; level-3/4 share body typography.
const (
	FontBody    = "仿宋_GB2312"
	FontHeading = "黑体"
	FontKai     = "楷体_GB2312"
	FontTitle   = "方正小标宋简"

	BodySizePt        = 16.0
	TitleSizePt       = 22.0
	BodyLineSpacingPt = 28.0

	// BodyIndentChars is the conventional 2-character first-line indent.
	BodyIndentChars = 2.0
	// BodyIndentPt is its absolute fallback at 16 pt.
	BodyIndentPt = 32.0
)

// DefaultHeadingStyle returns the role-default (family, sizePt, bold) for a
// heading level before any inferred rules or node overrides apply.
func DefaultHeadingStyle(level int) (string, float64, bool) {
	switch level {
	case 1, 2:
		return FontHeading, BodySizePt, false
	default:
		return FontBody, BodySizePt, false
	}
}

// RequiredFonts lists the faces a deployment must have installed for
// faithful output.
var RequiredFonts = []string{FontTitle, FontBody, FontKai, FontHeading}
