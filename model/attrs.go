package model

import (
	"math"
	"strings"
)

// Alignment is a paragraph alignment value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// StyleAttrs is an optional-override bag attached to headings and paragraphs.
// Any subset of fields may be present; nil means "no override at this level".
// FirstLineIndentPt and FirstLineIndentChars are mutually exclusive: setting
// one through the Set helpers clears the other.
type StyleAttrs struct {
	FontFamily           *string
	FontSizePt           *float64
	Bold                 *bool
	ColorHex             *string // normalized "#RRGGBB"
	TextAlign            *Alignment
	LineSpacingPt        *float64
	SpaceBeforePt        *float64
	SpaceAfterPt         *float64
	FirstLineIndentPt    *float64
	FirstLineIndentChars *float64

	// DividerRed marks a paragraph as a rendered red horizontal rule.
	DividerRed bool
}

// IsZero reports whether no attribute is set.
func (a StyleAttrs) IsZero() bool {
	return a.FontFamily == nil && a.FontSizePt == nil && a.Bold == nil &&
		a.ColorHex == nil && a.TextAlign == nil && a.LineSpacingPt == nil &&
		a.SpaceBeforePt == nil && a.SpaceAfterPt == nil &&
		a.FirstLineIndentPt == nil && a.FirstLineIndentChars == nil &&
		!a.DividerRed
}

// Clone returns a copy with no shared pointers.
func (a StyleAttrs) Clone() StyleAttrs {
	c := StyleAttrs{DividerRed: a.DividerRed}
	c.FontFamily = cloneString(a.FontFamily)
	c.FontSizePt = cloneFloat(a.FontSizePt)
	c.Bold = cloneBool(a.Bold)
	c.ColorHex = cloneString(a.ColorHex)
	if a.TextAlign != nil {
		v := *a.TextAlign
		c.TextAlign = &v
	}
	c.LineSpacingPt = cloneFloat(a.LineSpacingPt)
	c.SpaceBeforePt = cloneFloat(a.SpaceBeforePt)
	c.SpaceAfterPt = cloneFloat(a.SpaceAfterPt)
	c.FirstLineIndentPt = cloneFloat(a.FirstLineIndentPt)
	c.FirstLineIndentChars = cloneFloat(a.FirstLineIndentChars)
	return c
}

// Merge returns a new bag with every attribute set in override replacing the
// corresponding attribute of a. The indent pair stays mutually exclusive:
// an override on either form clears the other.
func (a StyleAttrs) Merge(override StyleAttrs) StyleAttrs {
	out := a.Clone()
	if override.FontFamily != nil {
		out.FontFamily = cloneString(override.FontFamily)
	}
	if override.FontSizePt != nil {
		out.FontSizePt = cloneFloat(override.FontSizePt)
	}
	if override.Bold != nil {
		out.Bold = cloneBool(override.Bold)
	}
	if override.ColorHex != nil {
		out.ColorHex = cloneString(override.ColorHex)
	}
	if override.TextAlign != nil {
		v := *override.TextAlign
		out.TextAlign = &v
	}
	if override.LineSpacingPt != nil {
		out.LineSpacingPt = cloneFloat(override.LineSpacingPt)
	}
	if override.SpaceBeforePt != nil {
		out.SpaceBeforePt = cloneFloat(override.SpaceBeforePt)
	}
	if override.SpaceAfterPt != nil {
		out.SpaceAfterPt = cloneFloat(override.SpaceAfterPt)
	}
	if override.FirstLineIndentPt != nil {
		out.FirstLineIndentPt = cloneFloat(override.FirstLineIndentPt)
		out.FirstLineIndentChars = nil
	}
	if override.FirstLineIndentChars != nil {
		out.FirstLineIndentChars = cloneFloat(override.FirstLineIndentChars)
		out.FirstLineIndentPt = nil
	}
	if override.DividerRed {
		out.DividerRed = true
	}
	return out
}

// SetFirstLineIndentPt sets an absolute first-line indent, clearing any
// character-based indent.
func (a *StyleAttrs) SetFirstLineIndentPt(pt float64) {
	a.FirstLineIndentPt = &pt
	a.FirstLineIndentChars = nil
}

// SetFirstLineIndentChars sets a character-count first-line indent, clearing
// any point-based indent.
func (a *StyleAttrs) SetFirstLineIndentChars(chars float64) {
	a.FirstLineIndentChars = &chars
	a.FirstLineIndentPt = nil
}

// NormalizeColorHex canonicalizes a color to "#RRGGBB" upper-case form.
// It accepts an optional leading '#' and 6 hex digits; anything else
// returns "" to signal an unusable color.
func NormalizeColorHex(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) != 6 {
		return ""
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return ""
		}
	}
	return "#" + strings.ToUpper(s)
}

// Round2 rounds a float to 2 decimal places. All numeric style values are
// normalized through it before aggregation so that float noise from unit
// conversion cannot split a statistical mode.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// String/Float64/Bool build pointer values for attribute literals.
func String(v string) *string    { return &v }
func Float64(v float64) *float64 { return &v }
func Bool(v bool) *bool          { return &v }

// Align builds a pointer alignment value.
func Align(v Alignment) *Alignment { return &v }

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
