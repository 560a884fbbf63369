package model

import (
	"encoding/json"
	"testing"
)

func sampleDocument() *Document {
	h := NewHeading(1, "一、总体要求")
	h.Attrs.FontFamily = String("黑体")

	p := NewParagraph("坚持稳中求进。")
	p.Attrs.SetFirstLineIndentChars(2)

	return NewDocument(
		h,
		p,
		NewDivider(),
		&Table{Rows: []TableRow{
			{Cells: []TableCell{
				NewTableCell(NewParagraph("项目")),
				NewTableCell(NewParagraph("期限")),
			}},
		}},
	)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := sampleDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if len(back.Children) != len(doc.Children) {
		t.Fatalf("round-trip has %d children, want %d", len(back.Children), len(doc.Children))
	}

	h, ok := back.Children[0].(*Heading)
	if !ok {
		t.Fatalf("first child is %T, want *Heading", back.Children[0])
	}
	if h.Level != 1 || h.Text() != "一、总体要求" {
		t.Errorf("heading = level %d %q", h.Level, h.Text())
	}
	if h.Attrs.FontFamily == nil || *h.Attrs.FontFamily != "黑体" {
		t.Error("heading font lost in round-trip")
	}

	p, ok := back.Children[1].(*Paragraph)
	if !ok {
		t.Fatalf("second child is %T, want *Paragraph", back.Children[1])
	}
	if p.Attrs.FirstLineIndentChars == nil || *p.Attrs.FirstLineIndentChars != 2 {
		t.Error("paragraph indent lost in round-trip")
	}

	div, ok := back.Children[2].(*Paragraph)
	if !ok || !div.Attrs.DividerRed {
		t.Error("divider flag lost in round-trip")
	}

	tbl, ok := back.Children[3].(*Table)
	if !ok {
		t.Fatalf("fourth child is %T, want *Table", back.Children[3])
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0].Cells) != 2 {
		t.Fatalf("table shape lost: %d rows", len(tbl.Rows))
	}
	if got := tbl.Rows[0].Cells[1].Text(); got != "期限" {
		t.Errorf("cell text = %q, want 期限", got)
	}
}

func TestNodeFromMapUnknownType(t *testing.T) {
	if _, err := NodeFromMap(map[string]any{"type": "image"}); err == nil {
		t.Error("unknown node type accepted")
	}
	if _, err := NodeFromMap(map[string]any{}); err == nil {
		t.Error("missing node type accepted")
	}
}

func TestStyleRulesMapRoundTrip(t *testing.T) {
	rules := &StyleRules{
		Body: StyleAttrs{
			FontFamily:    String("仿宋_GB2312"),
			FontSizePt:    Float64(16),
			LineSpacingPt: Float64(28),
		},
		Headings: map[int]StyleAttrs{
			1: {FontFamily: String("黑体"), FontSizePt: Float64(16)},
			3: {FontFamily: String("仿宋_GB2312")},
		},
		Page: PageStyle{MarginsCm: Margins{Top: 3.7, Bottom: 3.5, Left: 2.7, Right: 2.5}},
		ContentTemplate: &ContentTemplate{
			LeadingNodes:    []Node{NewParagraph("华州市人民政府文件")},
			TrailingNodes:   []Node{NewDivider()},
			BodyPlaceholder: "（请在此输入正文）",
		},
	}
	rules.Body.SetFirstLineIndentChars(2)

	m := rules.ToMap()

	// through JSON, as stored and revised
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	back, err := RulesFromMap(decoded)
	if err != nil {
		t.Fatalf("RulesFromMap: %v", err)
	}

	if *back.Body.FontFamily != "仿宋_GB2312" || *back.Body.FontSizePt != 16 {
		t.Error("body attrs lost in round-trip")
	}
	if back.Body.FirstLineIndentChars == nil || *back.Body.FirstLineIndentChars != 2 {
		t.Error("body indent lost in round-trip")
	}
	if _, ok := back.Headings[2]; ok {
		t.Error("absent heading level materialized")
	}
	if h3 := back.Headings[3]; h3.FontFamily == nil || *h3.FontFamily != "仿宋_GB2312" {
		t.Error("level 3 heading lost in round-trip")
	}
	if back.Page.MarginsCm != rules.Page.MarginsCm {
		t.Errorf("margins = %+v", back.Page.MarginsCm)
	}
	if back.ContentTemplate.IsEmpty() {
		t.Fatal("content template lost in round-trip")
	}
	if got := back.ContentTemplate.LeadingNodes[0].Text(); got != "华州市人民政府文件" {
		t.Errorf("leading node text = %q", got)
	}
	if div, ok := back.ContentTemplate.TrailingNodes[0].(*Paragraph); !ok || !div.Attrs.DividerRed {
		t.Error("trailing divider lost in round-trip")
	}
	if back.ContentTemplate.BodyPlaceholder != "（请在此输入正文）" {
		t.Errorf("placeholder = %q", back.ContentTemplate.BodyPlaceholder)
	}
}

func TestAttrsFromMapRejectsBadValues(t *testing.T) {
	a := attrsFromMap(map[string]any{
		"fontFamily": "",
		"colorHex":   "not-a-color",
		"textAlign":  "diagonal",
		"fontSizePt": "sixteen",
	})
	if !a.IsZero() {
		t.Errorf("malformed attrs produced %+v", a)
	}
}

func TestCanonicalJSONStable(t *testing.T) {
	a := map[string]any{"b": 1.0, "a": []any{map[string]any{"y": true, "x": "v"}}}
	b := map[string]any{"a": []any{map[string]any{"x": "v", "y": true}}, "b": 1.0}
	if CanonicalJSON(a) != CanonicalJSON(b) {
		t.Error("canonical form depends on insertion order")
	}
}

func TestContentTemplateClone(t *testing.T) {
	tpl := &ContentTemplate{
		LeadingNodes: []Node{NewParagraph("抬头")},
	}
	c := tpl.Clone()
	c.LeadingNodes[0].(*Paragraph).Runs[0].Value = "改动"
	if tpl.LeadingNodes[0].Text() != "抬头" {
		t.Error("Clone shares node storage")
	}

	var nilTpl *ContentTemplate
	if nilTpl.Clone() != nil {
		t.Error("nil Clone is non-nil")
	}
	if !nilTpl.IsEmpty() {
		t.Error("nil template reported non-empty")
	}
}
