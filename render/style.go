package render

import (
	"fmt"
	"math"

	"github.com/leew00726/publicText/model"
)

// resolvedStyle is the fully-decided typography for one paragraph after the
// override chain: role default, then the rule set's role style, then the
// node's own attributes.
type resolvedStyle struct {
	family        string
	sizePt        float64
	bold          bool
	colorHex      string
	align         model.Alignment
	lineSpacingPt float64
	spaceBeforePt float64
	spaceAfterPt  float64

	// one of the two indent forms; indentChars wins when both are set
	indentPt    float64
	indentChars float64
	useChars    bool
	noIndent    bool
}

func bodyDefault() resolvedStyle {
	return resolvedStyle{
		family:        model.FontBody,
		sizePt:        model.BodySizePt,
		lineSpacingPt: model.BodyLineSpacingPt,
		indentPt:      model.BodyIndentPt,
	}
}

func headingDefault(level int) resolvedStyle {
	family, sizePt, bold := model.DefaultHeadingStyle(level)
	return resolvedStyle{
		family:        family,
		sizePt:        sizePt,
		bold:          bold,
		lineSpacingPt: model.BodyLineSpacingPt,
		indentPt:      model.BodyIndentPt,
	}
}

// overlay applies an attribute bag onto a resolved style. Non-finite or
// non-positive numeric overrides keep the current value instead of breaking
// the export.
func (s resolvedStyle) overlay(attrs model.StyleAttrs) resolvedStyle {
	if attrs.FontFamily != nil && *attrs.FontFamily != "" {
		s.family = *attrs.FontFamily
	}
	if v := floatOrNaN(attrs.FontSizePt); usable(v) {
		s.sizePt = v
	}
	if attrs.Bold != nil {
		s.bold = *attrs.Bold
	}
	if attrs.ColorHex != nil {
		s.colorHex = *attrs.ColorHex
	}
	if attrs.TextAlign != nil {
		s.align = *attrs.TextAlign
	}
	if v := floatOrNaN(attrs.LineSpacingPt); usable(v) {
		s.lineSpacingPt = v
	}
	if v := floatOrNaN(attrs.SpaceBeforePt); !math.IsNaN(v) && v >= 0 {
		s.spaceBeforePt = v
	}
	if v := floatOrNaN(attrs.SpaceAfterPt); !math.IsNaN(v) && v >= 0 {
		s.spaceAfterPt = v
	}
	switch {
	case attrs.FirstLineIndentChars != nil:
		if v := *attrs.FirstLineIndentChars; !math.IsNaN(v) && v >= 0 {
			s.useChars = true
			s.indentChars = v
			s.noIndent = v == 0
		}
	case attrs.FirstLineIndentPt != nil:
		if v := *attrs.FirstLineIndentPt; !math.IsNaN(v) && v >= 0 {
			s.useChars = false
			s.indentPt = v
			s.noIndent = v == 0
		}
	}
	return s
}

func floatOrNaN(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// paraProps renders the paragraph-level side of a resolved style.
func (s resolvedStyle) paraProps(indent bool) *wParaProps {
	props := &wParaProps{
		Spacing: &wSpacing{
			Before:   ptToTwips(s.spaceBeforePt),
			After:    ptToTwips(s.spaceAfterPt),
			Line:     ptToTwips(s.lineSpacingPt),
			LineRule: "exact",
		},
	}
	if indent && !s.noIndent {
		if s.useChars {
			// firstLineChars is in hundredths of a character
			props.Indent = &wIndent{FirstLineChars: fmt.Sprintf("%d", int(math.Round(s.indentChars*100)))}
		} else {
			props.Indent = &wIndent{FirstLine: ptToTwips(s.indentPt)}
		}
	} else {
		props.Indent = &wIndent{FirstLine: "0"}
	}
	if s.align != "" {
		props.Jc = &wVal{Val: jcValue(s.align)}
	}
	return props
}

// runProps renders the run-level side of a resolved style.
func (s resolvedStyle) runProps() *wRunProps {
	return runProps(s.family, s.sizePt, s.bold, s.colorHex)
}

func jcValue(a model.Alignment) string {
	switch a {
	case model.AlignLeft:
		return "left"
	case model.AlignCenter:
		return "center"
	case model.AlignRight:
		return "right"
	case model.AlignJustify:
		return "both"
	}
	return "left"
}
