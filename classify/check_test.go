package classify

import (
	"testing"

	"github.com/leew00726/publicText/model"
)

func issueCodes(issues []Issue) []string {
	codes := make([]string, 0, len(issues))
	for _, is := range issues {
		codes = append(codes, is.Code)
	}
	return codes
}

func hasIssue(issues []Issue, code string) bool {
	for _, is := range issues {
		if is.Code == code {
			return true
		}
	}
	return false
}

func TestCheckDocumentClean(t *testing.T) {
	indented := func(text string) *model.Paragraph {
		p := model.NewParagraph(text)
		p.Attrs.SetFirstLineIndentChars(2)
		return p
	}
	doc := model.NewDocument(
		model.NewHeading(1, "一、总体要求"),
		indented("坚持问题导向。"),
		model.NewHeading(2, "（一）提高认识"),
		model.NewHeading(3, "1.落实责任。"),
		model.NewHeading(3, "2.强化考核。"),
		model.NewHeading(1, "二、保障措施"),
	)

	if issues := CheckDocument(doc); len(issues) != 0 {
		t.Errorf("clean document has issues: %v", issueCodes(issues))
	}
}

func TestCheckDocumentNumbering(t *testing.T) {
	doc := model.NewDocument(
		model.NewHeading(1, "一、第一部分"),
		model.NewHeading(1, "三、跳号部分"),
	)
	issues := CheckDocument(doc)
	if !hasIssue(issues, "B_NUMBERING") {
		t.Fatalf("skipped ordinal not flagged: %v", issueCodes(issues))
	}
	for _, is := range issues {
		if is.Code == "B_NUMBERING" {
			if is.Level != IssueWarning {
				t.Errorf("numbering issue level = %s, want warning", is.Level)
			}
			if is.Path != "body.content[1]" {
				t.Errorf("numbering issue path = %s", is.Path)
			}
		}
	}
}

func TestCheckDocumentNumberingResetsDeeperLevels(t *testing.T) {
	doc := model.NewDocument(
		model.NewHeading(1, "一、第一部分"),
		model.NewHeading(2, "（一）甲"),
		model.NewHeading(2, "（二）乙"),
		model.NewHeading(1, "二、第二部分"),
		model.NewHeading(2, "（一）丙"),
	)
	if issues := CheckDocument(doc); len(issues) != 0 {
		t.Errorf("reset numbering flagged: %v", issueCodes(issues))
	}
}

func TestCheckDocumentPunctuation(t *testing.T) {
	doc := model.NewDocument(
		model.NewHeading(1, "一、句末带了标点。"),
		model.NewHeading(3, "1.句末没有标点"),
		model.NewHeading(4, "（1）这个有标点。"),
	)
	issues := CheckDocument(doc)
	if !hasIssue(issues, "B_PUNC_H1") {
		t.Error("H1 trailing punctuation not flagged")
	}
	if !hasIssue(issues, "B_PUNC_H3") {
		t.Error("H3 missing punctuation not flagged")
	}
	if hasIssue(issues, "B_PUNC_H4") {
		t.Error("well-punctuated H4 flagged")
	}
}

func TestCheckDocumentLevelRange(t *testing.T) {
	doc := model.NewDocument(&model.Heading{Level: 5, Runs: []model.TextRun{{Value: "越界"}}})
	issues := CheckDocument(doc)
	if !hasIssue(issues, "B_LEVEL_RANGE") {
		t.Fatalf("out-of-range level not flagged: %v", issueCodes(issues))
	}
}

func TestCheckDocumentIndent(t *testing.T) {
	flat := model.NewParagraph("没有缩进的正文。")
	flat.Attrs.SetFirstLineIndentChars(0)
	doc := model.NewDocument(flat)
	if issues := CheckDocument(doc); !hasIssue(issues, "A_INDENT") {
		t.Errorf("wrong indent not flagged: %v", issueCodes(issues))
	}

	unset := model.NewParagraph("未声明缩进的正文。")
	if issues := CheckDocument(model.NewDocument(unset)); hasIssue(issues, "A_INDENT") {
		t.Error("paragraph without indent attr flagged")
	}
}

func TestInferDocType(t *testing.T) {
	tests := []struct {
		topic     string
		preferred DocType
		want      DocType
	}{
		{"关于资金安排的请示", "", DocQingshi},
		{"市长办公会纪要", "", DocJiyao},
		{"商洽工作函", "", DocHan},
		{"专项整治工作通知", "", DocTongzhi},
		{"未命名主题", "", DocTongzhi},
		{"关于资金安排的请示", DocJiyao, DocJiyao},
		{"任意主题", DocType("bogus"), DocTongzhi},
	}

	for _, tt := range tests {
		if got := InferDocType(tt.topic, tt.preferred); got != tt.want {
			t.Errorf("InferDocType(%q, %q) = %q, want %q", tt.topic, tt.preferred, got, tt.want)
		}
	}
}
