package infer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/leew00726/publicText/model"
)

func fontSample(font string) *model.Features {
	return &model.Features{
		Body:     model.StyleAttrs{FontFamily: model.String(font)},
		Headings: map[int]model.StyleAttrs{},
	}
}

func TestAggregateMode(t *testing.T) {
	samples := []*model.Features{
		fontSample("仿宋_GB2312"),
		fontSample("仿宋_GB2312"),
		fontSample("宋体"),
	}
	rules, report, err := Aggregate(samples)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if rules.Body.FontFamily == nil || *rules.Body.FontFamily != "仿宋_GB2312" {
		t.Errorf("body font = %v, want 仿宋_GB2312", rules.Body.FontFamily)
	}
	fc, ok := report["body.fontFamily"]
	if !ok {
		t.Fatal("missing confidence for body.fontFamily")
	}
	if fc.Samples != 3 {
		t.Errorf("samples = %d, want 3", fc.Samples)
	}
	if want := 2.0 / 3.0; fc.Confidence != want {
		t.Errorf("confidence = %v, want %v", fc.Confidence, want)
	}
}

func TestAggregateOrderInsensitive(t *testing.T) {
	base := []*model.Features{
		fontSample("仿宋_GB2312"),
		fontSample("仿宋_GB2312"),
		fontSample("宋体"),
	}
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		shuffled := append([]*model.Features(nil), base...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		rules, report, err := Aggregate(shuffled)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		if *rules.Body.FontFamily != "仿宋_GB2312" {
			t.Fatalf("trial %d: body font = %q, aggregation must be order-insensitive", trial, *rules.Body.FontFamily)
		}
		if report["body.fontFamily"].Confidence != 2.0/3.0 {
			t.Fatalf("trial %d: confidence changed with order", trial)
		}
	}
}

func TestAggregateTieBreakFirstEncountered(t *testing.T) {
	rules, _, err := Aggregate([]*model.Features{fontSample("宋体"), fontSample("黑体")})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if *rules.Body.FontFamily != "宋体" {
		t.Errorf("tie broke to %q, want first-encountered 宋体", *rules.Body.FontFamily)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if _, _, err := Aggregate(nil); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("Aggregate(nil) error = %v, want ErrNoSamples", err)
	}
}

func TestAggregateOmitsAbsentFields(t *testing.T) {
	rules, report, err := Aggregate([]*model.Features{fontSample("仿宋_GB2312")})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if rules.Body.FontSizePt != nil {
		t.Errorf("fontSizePt = %v, want absent when no sample carries it", *rules.Body.FontSizePt)
	}
	if _, ok := report["body.fontSizePt"]; ok {
		t.Error("confidence for an absent field should be omitted")
	}
	if len(rules.Headings) != 0 {
		t.Errorf("headings = %v, want empty", rules.Headings)
	}
}

func TestAggregateHeadingsAndPage(t *testing.T) {
	withHeading := func(font string, size float64) *model.Features {
		return &model.Features{
			Body: model.StyleAttrs{FontFamily: model.String("仿宋_GB2312")},
			Headings: map[int]model.StyleAttrs{
				1: {FontFamily: model.String(font), FontSizePt: model.Float64(size)},
			},
			Page: &model.PageStyle{MarginsCm: model.Margins{Top: 3.7, Bottom: 3.5, Left: 2.7, Right: 2.5}},
		}
	}
	rules, report, err := Aggregate([]*model.Features{
		withHeading("黑体", 16),
		withHeading("黑体", 16),
		withHeading("楷体_GB2312", 14),
	})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	h1 := rules.Headings[1]
	if h1.FontFamily == nil || *h1.FontFamily != "黑体" {
		t.Errorf("h1 font = %v, want 黑体", h1.FontFamily)
	}
	if h1.FontSizePt == nil || *h1.FontSizePt != 16 {
		t.Errorf("h1 size = %v, want 16", h1.FontSizePt)
	}
	if rules.Page.MarginsCm.Top != 3.7 {
		t.Errorf("top margin = %v, want 3.7", rules.Page.MarginsCm.Top)
	}
	if report["headings.level1.fontFamily"].Confidence != 2.0/3.0 {
		t.Errorf("h1 font confidence = %v", report["headings.level1.fontFamily"].Confidence)
	}
}

func suffixTemplate() *model.ContentTemplate {
	host := model.NewParagraph("主持：李四")
	host.Attrs.Bold = model.Bool(true)
	host.Attrs.TextAlign = model.Align(model.AlignCenter)
	attendees := model.NewParagraph("参加：王五、赵六")
	attendees.Attrs.Bold = model.Bool(true)
	return &model.ContentTemplate{
		TrailingNodes:   []model.Node{host, attendees},
		BodyPlaceholder: "（请在此输入正文）",
	}
}

func TestAggregateSuffixNormalization(t *testing.T) {
	sample := &model.Features{
		Body: model.StyleAttrs{
			FontFamily:    model.String("仿宋_GB2312"),
			FontSizePt:    model.Float64(16),
			LineSpacingPt: model.Float64(28),
		},
		Headings:        map[int]model.StyleAttrs{},
		ContentTemplate: suffixTemplate(),
	}
	rules, _, err := Aggregate([]*model.Features{sample})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if rules.ContentTemplate == nil {
		t.Fatal("expected content template")
	}
	for i, n := range rules.ContentTemplate.TrailingNodes {
		p := n.(*model.Paragraph)
		if p.Attrs.FontFamily == nil || *p.Attrs.FontFamily != "仿宋_GB2312" {
			t.Errorf("trailing %d font = %v, want body font", i, p.Attrs.FontFamily)
		}
		if p.Attrs.Bold == nil || *p.Attrs.Bold {
			t.Errorf("trailing %d bold = %v, want false", i, p.Attrs.Bold)
		}
		if p.Attrs.TextAlign == nil || *p.Attrs.TextAlign != model.AlignLeft {
			t.Errorf("trailing %d align = %v, want left", i, p.Attrs.TextAlign)
		}
	}
}

func TestAggregateTemplateSelection(t *testing.T) {
	common := suffixTemplate()
	other := &model.ContentTemplate{
		TrailingNodes:   []model.Node{model.NewParagraph("记录：周七")},
		BodyPlaceholder: "（请在此输入正文）",
	}
	samples := []*model.Features{
		{Body: model.StyleAttrs{}, Headings: map[int]model.StyleAttrs{}, ContentTemplate: common},
		{Body: model.StyleAttrs{}, Headings: map[int]model.StyleAttrs{}, ContentTemplate: suffixTemplate()},
		{Body: model.StyleAttrs{}, Headings: map[int]model.StyleAttrs{}, ContentTemplate: other},
	}
	rules, report, err := Aggregate(samples)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if rules.ContentTemplate == nil || len(rules.ContentTemplate.TrailingNodes) != 2 {
		t.Fatal("expected the majority template to be selected")
	}
	if report["contentTemplate"].Confidence != 2.0/3.0 {
		t.Errorf("template confidence = %v, want 2/3", report["contentTemplate"].Confidence)
	}
}

func TestBuildTopicBody(t *testing.T) {
	rules := &model.StyleRules{
		Body: model.StyleAttrs{FontFamily: model.String("仿宋_GB2312"), FontSizePt: model.Float64(16)},
		ContentTemplate: &model.ContentTemplate{
			LeadingNodes:    []model.Node{model.NewParagraph("××市人民政府办公室会议纪要")},
			TrailingNodes:   []model.Node{model.NewParagraph("主持：李四")},
			BodyPlaceholder: "（请在此输入正文）",
		},
	}
	doc := BuildTopicBody(rules)
	if len(doc.Children) != 3 {
		t.Fatalf("got %d nodes, want leading + placeholder + trailing", len(doc.Children))
	}
	placeholder := doc.Children[1].(*model.Paragraph)
	if placeholder.Text() != "（请在此输入正文）" {
		t.Errorf("placeholder text = %q", placeholder.Text())
	}
	if placeholder.Attrs.FontFamily == nil || *placeholder.Attrs.FontFamily != "仿宋_GB2312" {
		t.Errorf("placeholder font = %v, want body font", placeholder.Attrs.FontFamily)
	}
	trailing := doc.Children[2].(*model.Paragraph)
	if trailing.Attrs.Bold == nil || *trailing.Attrs.Bold {
		t.Error("trailing suffix line must be normalized to non-bold")
	}
	// The source rules must not be mutated.
	orig := rules.ContentTemplate.TrailingNodes[0].(*model.Paragraph)
	if orig.Attrs.Bold != nil {
		t.Error("BuildTopicBody mutated the rule set's template")
	}
}

func TestBuildTopicBodyWithoutTemplate(t *testing.T) {
	doc := BuildTopicBody(&model.StyleRules{})
	if len(doc.Children) != 1 {
		t.Fatalf("got %d nodes, want just the placeholder", len(doc.Children))
	}
}
