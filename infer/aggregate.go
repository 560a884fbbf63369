package infer

import (
	"errors"
	"fmt"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/model"
)

// ErrNoSamples reports an aggregation call with an empty sample list.
var ErrNoSamples = errors.New("no samples to aggregate")

// Aggregate merges feature summaries from many samples into one rule set.
// Every field takes the mode of its present values; fields absent from all
// samples are omitted, never defaulted. The confidence report records
// modeCount/presentCount per dotted field path.
func Aggregate(samples []*model.Features) (*model.StyleRules, model.ConfidenceReport, error) {
	if len(samples) == 0 {
		return nil, nil, ErrNoSamples
	}

	report := model.ConfidenceReport{}
	rules := &model.StyleRules{Headings: map[int]model.StyleAttrs{}}

	var bodyBags []model.StyleAttrs
	for _, s := range samples {
		bodyBags = append(bodyBags, s.Body)
	}
	rules.Body = aggregateAttrs(bodyBags, "body", report)

	for level := 1; level <= 4; level++ {
		var bags []model.StyleAttrs
		for _, s := range samples {
			if attrs, ok := s.Headings[level]; ok {
				bags = append(bags, attrs)
			}
		}
		if len(bags) == 0 {
			continue
		}
		attrs := aggregateAttrs(bags, fmt.Sprintf("headings.level%d", level), report)
		if !attrs.IsZero() {
			rules.Headings[level] = attrs
		}
	}

	aggregatePage(samples, rules, report)
	aggregateTemplate(samples, rules, report)

	if rules.ContentTemplate != nil {
		normalizeSuffixStyles(rules.ContentTemplate.TrailingNodes, rules.Body)
	}
	return rules, report, nil
}

// modeOf returns the most frequent value with first-encountered tie-break,
// plus its count.
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

// pick records the mode of the present values under path and returns it with
// ok=false when no sample carried the field.
func pick[T comparable](values []T, path string, report model.ConfidenceReport) (T, bool) {
	v, n := modeOf(values)
	if n == 0 {
		var zero T
		return zero, false
	}
	report[path] = model.FieldConfidence{
		Confidence: float64(n) / float64(len(values)),
		Samples:    len(values),
	}
	return v, true
}

func aggregateAttrs(bags []model.StyleAttrs, prefix string, report model.ConfidenceReport) model.StyleAttrs {
	var out model.StyleAttrs

	var fonts, colors []string
	var sizes, lines, befores, afters, indentPts, indentChars []float64
	var bolds []bool
	var aligns []model.Alignment
	for _, b := range bags {
		if b.FontFamily != nil {
			fonts = append(fonts, *b.FontFamily)
		}
		if b.ColorHex != nil {
			colors = append(colors, *b.ColorHex)
		}
		if b.FontSizePt != nil {
			sizes = append(sizes, model.Round2(*b.FontSizePt))
		}
		if b.LineSpacingPt != nil {
			lines = append(lines, model.Round2(*b.LineSpacingPt))
		}
		if b.SpaceBeforePt != nil {
			befores = append(befores, model.Round2(*b.SpaceBeforePt))
		}
		if b.SpaceAfterPt != nil {
			afters = append(afters, model.Round2(*b.SpaceAfterPt))
		}
		if b.FirstLineIndentPt != nil {
			indentPts = append(indentPts, model.Round2(*b.FirstLineIndentPt))
		}
		if b.FirstLineIndentChars != nil {
			indentChars = append(indentChars, model.Round2(*b.FirstLineIndentChars))
		}
		if b.Bold != nil {
			bolds = append(bolds, *b.Bold)
		}
		if b.TextAlign != nil {
			aligns = append(aligns, *b.TextAlign)
		}
	}

	if v, ok := pick(fonts, prefix+".fontFamily", report); ok {
		out.FontFamily = model.String(v)
	}
	if v, ok := pick(colors, prefix+".colorHex", report); ok {
		out.ColorHex = model.String(v)
	}
	if v, ok := pick(sizes, prefix+".fontSizePt", report); ok {
		out.FontSizePt = model.Float64(v)
	}
	if v, ok := pick(lines, prefix+".lineSpacingPt", report); ok {
		out.LineSpacingPt = model.Float64(v)
	}
	if v, ok := pick(befores, prefix+".spaceBeforePt", report); ok {
		out.SpaceBeforePt = model.Float64(v)
	}
	if v, ok := pick(afters, prefix+".spaceAfterPt", report); ok {
		out.SpaceAfterPt = model.Float64(v)
	}
	if v, ok := pick(bolds, prefix+".bold", report); ok {
		out.Bold = model.Bool(v)
	}
	if v, ok := pick(aligns, prefix+".textAlign", report); ok {
		out.TextAlign = model.Align(v)
	}
	if len(indentChars) >= len(indentPts) && len(indentChars) > 0 {
		if v, ok := pick(indentChars, prefix+".firstLineIndentChars", report); ok {
			out.SetFirstLineIndentChars(v)
		}
	} else if len(indentPts) > 0 {
		if v, ok := pick(indentPts, prefix+".firstLineIndentPt", report); ok {
			out.SetFirstLineIndentPt(v)
		}
	}
	return out
}

func aggregatePage(samples []*model.Features, rules *model.StyleRules, report model.ConfidenceReport) {
	var tops, bottoms, lefts, rights []float64
	for _, s := range samples {
		if s.Page == nil {
			continue
		}
		tops = append(tops, model.Round2(s.Page.MarginsCm.Top))
		bottoms = append(bottoms, model.Round2(s.Page.MarginsCm.Bottom))
		lefts = append(lefts, model.Round2(s.Page.MarginsCm.Left))
		rights = append(rights, model.Round2(s.Page.MarginsCm.Right))
	}
	if v, ok := pick(tops, "page.marginsCm.top", report); ok {
		rules.Page.MarginsCm.Top = v
	}
	if v, ok := pick(bottoms, "page.marginsCm.bottom", report); ok {
		rules.Page.MarginsCm.Bottom = v
	}
	if v, ok := pick(lefts, "page.marginsCm.left", report); ok {
		rules.Page.MarginsCm.Left = v
	}
	if v, ok := pick(rights, "page.marginsCm.right", report); ok {
		rules.Page.MarginsCm.Right = v
	}
}

// aggregateTemplate picks the most frequent content template by canonical
// serialized form.
func aggregateTemplate(samples []*model.Features, rules *model.StyleRules, report model.ConfidenceReport) {
	var keys []string
	templates := map[string]*model.ContentTemplate{}
	for _, s := range samples {
		if s.ContentTemplate == nil || s.ContentTemplate.IsEmpty() {
			continue
		}
		key := model.CanonicalJSON(templateToMap(s.ContentTemplate))
		keys = append(keys, key)
		if _, seen := templates[key]; !seen {
			templates[key] = s.ContentTemplate
		}
	}
	if key, ok := pick(keys, "contentTemplate", report); ok {
		rules.ContentTemplate = templates[key].Clone()
	}
}

func templateToMap(t *model.ContentTemplate) map[string]any {
	leading := make([]any, 0, len(t.LeadingNodes))
	for _, n := range t.LeadingNodes {
		leading = append(leading, model.NodeToMap(n))
	}
	trailing := make([]any, 0, len(t.TrailingNodes))
	for _, n := range t.TrailingNodes {
		trailing = append(trailing, model.NodeToMap(n))
	}
	return map[string]any{
		"leadingNodes":    leading,
		"trailingNodes":   trailing,
		"bodyPlaceholder": t.BodyPlaceholder,
	}
}

// normalizeSuffixStyles forces body typography onto the suffix block: marker
// lines and their continuation lines render in the body font, left-aligned
// and never bold, regardless of how the source sample styled them.
func normalizeSuffixStyles(nodes []model.Node, body model.StyleAttrs) {
	inBlock := false
	for _, n := range nodes {
		p, ok := n.(*model.Paragraph)
		if !ok {
			inBlock = false
			continue
		}
		if p.Attrs.DividerRed {
			inBlock = false
			continue
		}
		text := p.Text()
		switch {
		case classify.IsSuffixMarker(text):
			inBlock = true
		case text == "" || !inBlock:
			inBlock = false
			continue
		}
		applyBodyTypography(&p.Attrs, body)
	}
}

func applyBodyTypography(attrs *model.StyleAttrs, body model.StyleAttrs) {
	attrs.FontFamily = cloneStringPtr(body.FontFamily)
	attrs.FontSizePt = cloneFloatPtr(body.FontSizePt)
	attrs.LineSpacingPt = cloneFloatPtr(body.LineSpacingPt)
	switch {
	case body.FirstLineIndentChars != nil:
		attrs.SetFirstLineIndentChars(*body.FirstLineIndentChars)
	case body.FirstLineIndentPt != nil:
		attrs.SetFirstLineIndentPt(*body.FirstLineIndentPt)
	default:
		attrs.FirstLineIndentPt = nil
		attrs.FirstLineIndentChars = nil
	}
	attrs.TextAlign = model.Align(model.AlignLeft)
	attrs.Bold = model.Bool(false)
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	return model.String(*p)
}

func cloneFloatPtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return model.Float64(*p)
}
