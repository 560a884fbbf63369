package feature

import (
	"strings"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/docx"
	"github.com/leew00726/publicText/model"
)

// ExtractDocx scans one DOCX sample and summarizes its typography per role.
// Body evidence is taken only from paragraphs outside the content-template
// locus so that letterhead and suffix lines do not pollute the body mode.
func ExtractDocx(data []byte, cfg Config) (*model.Features, error) {
	cfg.defaults()

	reader, err := docx.NewReader(data)
	if err != nil {
		return nil, err
	}

	var nodes []sampleNode
	for _, p := range reader.Paragraphs() {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		level := classify.HeadingStyleLevel(p.StyleName)
		if level == 0 {
			level = classify.HeadingLevelByMarker(text)
		}
		nodes = append(nodes, sampleNode{
			text:  text,
			level: level,
			attrs: paragraphAttrs(p),
		})
	}
	cfg.Logger.Debug("docx sample scanned", "paragraphs", len(nodes))

	features := &model.Features{Headings: map[int]model.StyleAttrs{}}

	template, bodyFrom, bodyTo := extractTemplate(nodes, cfg)
	features.ContentTemplate = template

	var bodySamples []model.StyleAttrs
	headingSamples := map[int][]model.StyleAttrs{}
	for i, n := range nodes {
		if n.level > 0 {
			headingSamples[n.level] = append(headingSamples[n.level], n.attrs)
			continue
		}
		if i >= bodyFrom && i < bodyTo {
			bodySamples = append(bodySamples, n.attrs)
		}
	}

	features.Body = modeAttrs(bodySamples)
	for level, samples := range headingSamples {
		features.Headings[level] = modeAttrs(samples)
	}

	if margins, ok := reader.MarginsCm(); ok {
		features.Page = &model.PageStyle{MarginsCm: margins}
	}

	return features, nil
}

// sampleNode is one classified non-empty paragraph of a sample.
type sampleNode struct {
	text  string
	level int // 0 for body
	attrs model.StyleAttrs
}

// paragraphAttrs captures the style facts of a paragraph: typography from its
// first visible run, spacing and indent from the paragraph itself. Values are
// already rounded by the reader.
func paragraphAttrs(p *docx.Paragraph) model.StyleAttrs {
	var attrs model.StyleAttrs

	for _, run := range p.Runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		if run.Font != "" {
			attrs.FontFamily = model.String(run.Font)
		}
		if run.SizePt != nil {
			attrs.FontSizePt = model.Float64(*run.SizePt)
		}
		attrs.Bold = model.Bool(run.Bold)
		if run.ColorHex != "" {
			attrs.ColorHex = model.String(run.ColorHex)
		}
		break
	}

	if align := alignmentOf(p.Align); align != "" {
		attrs.TextAlign = model.Align(align)
	}
	attrs.LineSpacingPt = cloneFloat(p.LineSpacingPt)
	attrs.SpaceBeforePt = cloneFloat(p.SpaceBeforePt)
	attrs.SpaceAfterPt = cloneFloat(p.SpaceAfterPt)
	switch {
	case p.FirstLineChars != nil:
		attrs.SetFirstLineIndentChars(*p.FirstLineChars)
	case p.FirstLineIndentPt != nil:
		attrs.SetFirstLineIndentPt(*p.FirstLineIndentPt)
	}
	return attrs
}

func alignmentOf(jc string) model.Alignment {
	switch jc {
	case "left", "start":
		return model.AlignLeft
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "justify", "distribute":
		return model.AlignJustify
	}
	return ""
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return model.Float64(*p)
}

// modeOf returns the most frequent value with first-encountered tie-break.
func modeOf[T comparable](values []T) (T, int) {
	counts := map[T]int{}
	var best T
	bestCount := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best, bestCount
}

// modeAttrs summarizes a set of attribute bags field by field: each field's
// summary is the mode of its present values.
func modeAttrs(samples []model.StyleAttrs) model.StyleAttrs {
	var out model.StyleAttrs

	var fonts, colors []string
	var sizes, lines, befores, afters, indentPts, indentChars []float64
	var bolds []bool
	var aligns []model.Alignment
	for _, s := range samples {
		if s.FontFamily != nil {
			fonts = append(fonts, *s.FontFamily)
		}
		if s.ColorHex != nil {
			colors = append(colors, *s.ColorHex)
		}
		if s.FontSizePt != nil {
			sizes = append(sizes, *s.FontSizePt)
		}
		if s.LineSpacingPt != nil {
			lines = append(lines, *s.LineSpacingPt)
		}
		if s.SpaceBeforePt != nil {
			befores = append(befores, *s.SpaceBeforePt)
		}
		if s.SpaceAfterPt != nil {
			afters = append(afters, *s.SpaceAfterPt)
		}
		if s.FirstLineIndentPt != nil {
			indentPts = append(indentPts, *s.FirstLineIndentPt)
		}
		if s.FirstLineIndentChars != nil {
			indentChars = append(indentChars, *s.FirstLineIndentChars)
		}
		if s.Bold != nil {
			bolds = append(bolds, *s.Bold)
		}
		if s.TextAlign != nil {
			aligns = append(aligns, *s.TextAlign)
		}
	}

	if v, n := modeOf(fonts); n > 0 {
		out.FontFamily = model.String(v)
	}
	if v, n := modeOf(colors); n > 0 {
		out.ColorHex = model.String(v)
	}
	if v, n := modeOf(sizes); n > 0 {
		out.FontSizePt = model.Float64(v)
	}
	if v, n := modeOf(lines); n > 0 {
		out.LineSpacingPt = model.Float64(v)
	}
	if v, n := modeOf(befores); n > 0 {
		out.SpaceBeforePt = model.Float64(v)
	}
	if v, n := modeOf(afters); n > 0 {
		out.SpaceAfterPt = model.Float64(v)
	}
	if v, n := modeOf(bolds); n > 0 {
		out.Bold = model.Bool(v)
	}
	if v, n := modeOf(aligns); n > 0 {
		out.TextAlign = model.Align(v)
	}
	// Indent forms are mutually exclusive; the better-attested one wins.
	charsVal, charsCount := modeOf(indentChars)
	ptVal, ptCount := modeOf(indentPts)
	switch {
	case charsCount >= ptCount && charsCount > 0:
		out.SetFirstLineIndentChars(charsVal)
	case ptCount > 0:
		out.SetFirstLineIndentPt(ptVal)
	}
	return out
}
