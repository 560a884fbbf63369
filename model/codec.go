package model

import (
	"encoding/json"
	"fmt"
	"sort"
)

// This file converts between the typed model and the generic nested-map form
// used for JSON interchange and for patch merging. Patches are author intent
// expressed as sparse nested maps, so rule revision round-trips through maps:
// rules → map, merge, map → rules.

// NodeToMap converts a node tree to its generic map form
// ({"type": "...", "attrs": {...}, "content": [...]}).
func NodeToMap(n Node) map[string]any {
	switch v := n.(type) {
	case *Document:
		return map[string]any{"type": "doc", "content": nodesToMaps(v.Children)}
	case *Heading:
		attrs := attrsToMap(v.Attrs)
		attrs["level"] = float64(v.Level)
		return map[string]any{"type": "heading", "attrs": attrs, "content": runsToMaps(v.Runs)}
	case *Paragraph:
		m := map[string]any{"type": "paragraph", "content": runsToMaps(v.Runs)}
		if attrs := attrsToMap(v.Attrs); len(attrs) > 0 {
			m["attrs"] = attrs
		}
		return m
	case *Table:
		rows := make([]any, 0, len(v.Rows))
		for i := range v.Rows {
			rows = append(rows, NodeToMap(&v.Rows[i]))
		}
		return map[string]any{"type": "table", "content": rows}
	case *TableRow:
		cells := make([]any, 0, len(v.Cells))
		for i := range v.Cells {
			cells = append(cells, NodeToMap(&v.Cells[i]))
		}
		return map[string]any{"type": "tableRow", "content": cells}
	case *TableCell:
		return map[string]any{"type": "tableCell", "content": nodesToMaps(v.Children)}
	case *TextRun:
		return map[string]any{"type": "text", "text": v.Value}
	default:
		return nil
	}
}

// NodeFromMap converts the generic map form back to a typed node.
// Unknown node types yield an error; malformed attrs degrade to defaults.
func NodeFromMap(m map[string]any) (Node, error) {
	kind, _ := m["type"].(string)
	switch kind {
	case "doc":
		children, err := nodesFromAny(m["content"])
		if err != nil {
			return nil, err
		}
		return &Document{Children: children}, nil
	case "heading":
		attrs, _ := m["attrs"].(map[string]any)
		level := 1
		if lv, ok := numberValue(attrs["level"]); ok {
			level = int(lv)
		}
		h, err := NewHeadingChecked(level, "")
		if err != nil {
			return nil, err
		}
		h.Attrs = attrsFromMap(attrs)
		h.Runs = runsFromAny(m["content"])
		return h, nil
	case "paragraph":
		attrs, _ := m["attrs"].(map[string]any)
		return &Paragraph{Attrs: attrsFromMap(attrs), Runs: runsFromAny(m["content"])}, nil
	case "table":
		items, _ := m["content"].([]any)
		t := &Table{}
		for _, item := range items {
			rm, ok := item.(map[string]any)
			if !ok {
				continue
			}
			n, err := NodeFromMap(rm)
			if err != nil {
				return nil, err
			}
			if row, ok := n.(*TableRow); ok {
				t.Rows = append(t.Rows, *row)
			}
		}
		return t, nil
	case "tableRow":
		items, _ := m["content"].([]any)
		r := &TableRow{}
		for _, item := range items {
			cm, ok := item.(map[string]any)
			if !ok {
				continue
			}
			n, err := NodeFromMap(cm)
			if err != nil {
				return nil, err
			}
			if cell, ok := n.(*TableCell); ok {
				r.Cells = append(r.Cells, *cell)
			}
		}
		return r, nil
	case "tableCell":
		children, err := nodesFromAny(m["content"])
		if err != nil {
			return nil, err
		}
		return &TableCell{Children: children}, nil
	case "text":
		text, _ := m["text"].(string)
		return &TextRun{Value: text}, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", kind)
	}
}

// MarshalJSON renders the document in the generic tagged form.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(NodeToMap(d))
}

// UnmarshalJSON parses the generic tagged form.
func (d *Document) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	n, err := NodeFromMap(m)
	if err != nil {
		return err
	}
	doc, ok := n.(*Document)
	if !ok {
		return fmt.Errorf("expected doc root, got %q", m["type"])
	}
	*d = *doc
	return nil
}

// ToMap converts a rule set to its generic map form.
func (r *StyleRules) ToMap() map[string]any {
	out := map[string]any{
		"body":     attrsToMap(r.Body),
		"headings": map[string]any{},
		"page": map[string]any{
			"marginsCm": map[string]any{
				"top":    r.Page.MarginsCm.Top,
				"bottom": r.Page.MarginsCm.Bottom,
				"left":   r.Page.MarginsCm.Left,
				"right":  r.Page.MarginsCm.Right,
			},
		},
	}
	headings := out["headings"].(map[string]any)
	levels := make([]int, 0, len(r.Headings))
	for lvl := range r.Headings {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	for _, lvl := range levels {
		headings[fmt.Sprintf("level%d", lvl)] = attrsToMap(r.Headings[lvl])
	}
	if !r.ContentTemplate.IsEmpty() {
		out["contentTemplate"] = map[string]any{
			"leadingNodes":    nodesToMaps(r.ContentTemplate.LeadingNodes),
			"trailingNodes":   nodesToMaps(r.ContentTemplate.TrailingNodes),
			"bodyPlaceholder": r.ContentTemplate.BodyPlaceholder,
		}
	}
	return out
}

// RulesFromMap converts the generic map form back into a typed rule set.
func RulesFromMap(m map[string]any) (*StyleRules, error) {
	r := &StyleRules{Headings: map[int]StyleAttrs{}}
	if body, ok := m["body"].(map[string]any); ok {
		r.Body = attrsFromMap(body)
	}
	if headings, ok := m["headings"].(map[string]any); ok {
		for lvl := 1; lvl <= 4; lvl++ {
			key := fmt.Sprintf("level%d", lvl)
			if hm, ok := headings[key].(map[string]any); ok {
				r.Headings[lvl] = attrsFromMap(hm)
			}
		}
	}
	if page, ok := m["page"].(map[string]any); ok {
		if margins, ok := page["marginsCm"].(map[string]any); ok {
			if v, ok := numberValue(margins["top"]); ok {
				r.Page.MarginsCm.Top = v
			}
			if v, ok := numberValue(margins["bottom"]); ok {
				r.Page.MarginsCm.Bottom = v
			}
			if v, ok := numberValue(margins["left"]); ok {
				r.Page.MarginsCm.Left = v
			}
			if v, ok := numberValue(margins["right"]); ok {
				r.Page.MarginsCm.Right = v
			}
		}
	}
	if ct, ok := m["contentTemplate"].(map[string]any); ok {
		tpl := &ContentTemplate{}
		var err error
		if tpl.LeadingNodes, err = nodesFromAny(ct["leadingNodes"]); err != nil {
			return nil, fmt.Errorf("contentTemplate.leadingNodes: %w", err)
		}
		if tpl.TrailingNodes, err = nodesFromAny(ct["trailingNodes"]); err != nil {
			return nil, fmt.Errorf("contentTemplate.trailingNodes: %w", err)
		}
		tpl.BodyPlaceholder, _ = ct["bodyPlaceholder"].(string)
		if !tpl.IsEmpty() {
			r.ContentTemplate = tpl
		}
	}
	return r, nil
}

// CanonicalJSON serializes a generic map with sorted keys, suitable for
// exact-match comparison of content templates across samples.
func CanonicalJSON(v any) string {
	data, err := json.Marshal(v) // encoding/json sorts map keys
	if err != nil {
		return ""
	}
	return string(data)
}

func attrsToMap(a StyleAttrs) map[string]any {
	m := map[string]any{}
	if a.FontFamily != nil {
		m["fontFamily"] = *a.FontFamily
	}
	if a.FontSizePt != nil {
		m["fontSizePt"] = *a.FontSizePt
	}
	if a.Bold != nil {
		m["bold"] = *a.Bold
	}
	if a.ColorHex != nil {
		m["colorHex"] = *a.ColorHex
	}
	if a.TextAlign != nil {
		m["textAlign"] = string(*a.TextAlign)
	}
	if a.LineSpacingPt != nil {
		m["lineSpacingPt"] = *a.LineSpacingPt
	}
	if a.SpaceBeforePt != nil {
		m["spaceBeforePt"] = *a.SpaceBeforePt
	}
	if a.SpaceAfterPt != nil {
		m["spaceAfterPt"] = *a.SpaceAfterPt
	}
	if a.FirstLineIndentPt != nil {
		m["firstLineIndentPt"] = *a.FirstLineIndentPt
	}
	if a.FirstLineIndentChars != nil {
		m["firstLineIndentChars"] = *a.FirstLineIndentChars
	}
	if a.DividerRed {
		m["dividerRed"] = true
	}
	return m
}

func attrsFromMap(m map[string]any) StyleAttrs {
	var a StyleAttrs
	if m == nil {
		return a
	}
	if s, ok := m["fontFamily"].(string); ok && s != "" {
		a.FontFamily = String(s)
	}
	if v, ok := numberValue(m["fontSizePt"]); ok {
		a.FontSizePt = Float64(v)
	}
	if b, ok := m["bold"].(bool); ok {
		a.Bold = Bool(b)
	}
	if s, ok := m["colorHex"].(string); ok {
		if norm := NormalizeColorHex(s); norm != "" {
			a.ColorHex = String(norm)
		}
	}
	if s, ok := m["textAlign"].(string); ok {
		switch Alignment(s) {
		case AlignLeft, AlignCenter, AlignRight, AlignJustify:
			a.TextAlign = Align(Alignment(s))
		}
	}
	if v, ok := numberValue(m["lineSpacingPt"]); ok {
		a.LineSpacingPt = Float64(v)
	}
	if v, ok := numberValue(m["spaceBeforePt"]); ok {
		a.SpaceBeforePt = Float64(v)
	}
	if v, ok := numberValue(m["spaceAfterPt"]); ok {
		a.SpaceAfterPt = Float64(v)
	}
	if v, ok := numberValue(m["firstLineIndentPt"]); ok {
		a.SetFirstLineIndentPt(v)
	}
	if v, ok := numberValue(m["firstLineIndentChars"]); ok {
		a.SetFirstLineIndentChars(v)
	}
	if b, ok := m["dividerRed"].(bool); ok && b {
		a.DividerRed = true
	}
	return a
}

func nodesToMaps(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		if m := NodeToMap(n); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func nodesFromAny(v any) ([]Node, error) {
	items, _ := v.([]any)
	var out []Node
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		n, err := NodeFromMap(m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func runsToMaps(runs []TextRun) []any {
	out := make([]any, 0, len(runs))
	for i := range runs {
		out = append(out, map[string]any{"type": "text", "text": runs[i].Value})
	}
	return out
}

func runsFromAny(v any) []TextRun {
	items, _ := v.([]any)
	var out []TextRun
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := m["type"].(string); ok && t == "text" {
			text, _ := m["text"].(string)
			out = append(out, TextRun{Value: text})
		}
	}
	return out
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
