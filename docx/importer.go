package docx

import (
	"fmt"
	"strings"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/model"
)

// NumberingWarning reports one heading whose parsed ordinal disagrees with
// the expected counter.
type NumberingWarning struct {
	HeadingIndex int // 1-based position among detected headings
	Level        int
	Actual       int
	Expected     int
}

func (w NumberingWarning) String() string {
	return fmt.Sprintf("第%d个标题编号疑似跳号/混用：层级 H%d 当前 %d，期望 %d",
		w.HeadingIndex, w.Level, w.Actual, w.Expected)
}

// ImportReport collects the degraded-data findings of an import. Nothing in
// it is fatal; unreadable input fails Import itself.
type ImportReport struct {
	UnrecognizedTitleCount int
	NumberingWarnings      []NumberingWarning
	TableWarnings          []string
	Notes                  []string
}

// Import converts raw DOCX bytes into a document model plus initial
// structured fields. Individual bad tables and numbering anomalies degrade
// to report entries; only an unreadable package returns an error.
func Import(data []byte) (*model.Document, model.Fields, *ImportReport, error) {
	reader, err := NewReader(data)
	if err != nil {
		return nil, model.Fields{}, nil, err
	}

	report := &ImportReport{
		Notes: []string{
			"导入时已忽略原 DOCX 页眉/红头（按系统红头模板重建）。",
			"已执行轻量套版：正文默认首行缩进2字。",
		},
	}

	doc := &model.Document{}
	var headings []headingRef
	tableIndex := 0

	for _, el := range reader.Elements() {
		switch {
		case el.Paragraph != nil:
			text := strings.TrimSpace(el.Paragraph.Text)
			if text == "" {
				continue
			}
			level := detectLevel(text, el.Paragraph)
			if level > 0 {
				headings = append(headings, headingRef{level: level, text: text})
				doc.Children = append(doc.Children, model.NewHeading(level, text))
				continue
			}
			p := model.NewParagraph(text)
			p.Attrs.SetFirstLineIndentChars(model.BodyIndentChars)
			doc.Children = append(doc.Children, p)
			if classify.LooksLikeTitle(text) {
				report.UnrecognizedTitleCount++
			}

		case el.Table != nil:
			tableIndex++
			table, err := importTable(el.Table)
			if err != nil {
				report.TableWarnings = append(report.TableWarnings,
					fmt.Sprintf("表格 %d 解析失败: %v", tableIndex, err))
				continue
			}
			if table != nil {
				doc.Children = append(doc.Children, table)
			}
		}
	}

	report.NumberingWarnings = checkNumbering(headings)

	fields := model.Fields{ExportWithRedhead: true}
	fields.DocNo = scanDocNo(doc.Children)

	return doc, fields, report, nil
}

// detectLevel classifies a paragraph: the leading numbering marker wins,
// then the dominant run font.
func detectLevel(text string, p *Paragraph) int {
	if level := classify.HeadingLevelByMarker(text); level > 0 {
		return level
	}
	return classify.HeadingLevelByFont(dominantFont(p), text)
}

// dominantFont returns the first run font bearing a name.
func dominantFont(p *Paragraph) string {
	for _, run := range p.Runs {
		if run.Font != "" {
			return run.Font
		}
	}
	return ""
}

func importTable(t *Table) (*model.Table, error) {
	if len(t.Rows) == 0 {
		return nil, nil
	}
	width := len(t.Rows[0])
	for i, row := range t.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("第 %d 行列数 %d 与首行 %d 不一致", i+1, len(row), width)
		}
	}

	out := &model.Table{}
	for _, row := range t.Rows {
		var cells []model.TableCell
		for _, cellText := range row {
			var children []model.Node
			for _, line := range strings.Split(cellText, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					children = append(children, &model.TextRun{Value: line})
				}
			}
			cells = append(cells, model.TableCell{Children: children})
		}
		out.Rows = append(out.Rows, model.TableRow{Cells: cells})
	}
	return out, nil
}

type headingRef struct {
	level int
	text  string
}

// checkNumbering walks detected headings in document order with four
// independent counters; entering a shallower level resets all deeper ones.
func checkNumbering(headings []headingRef) []NumberingWarning {
	var warnings []NumberingWarning
	counters := map[int]int{1: 0, 2: 0, 3: 0, 4: 0}

	for i, h := range headings {
		for deeper := h.level + 1; deeper <= 4; deeper++ {
			counters[deeper] = 0
		}
		counters[h.level]++

		actual, ok := classify.HeadingNumber(h.level, h.text)
		if !ok {
			continue
		}
		if actual != counters[h.level] {
			warnings = append(warnings, NumberingWarning{
				HeadingIndex: i + 1,
				Level:        h.level,
				Actual:       actual,
				Expected:     counters[h.level],
			})
		}
	}
	return warnings
}

// scanDocNo looks through the first few nodes for a document-number line and
// normalizes its bracket style.
func scanDocNo(nodes []model.Node) string {
	limit := len(nodes)
	if limit > 8 {
		limit = 8
	}
	for _, node := range nodes[:limit] {
		switch node.Kind() {
		case model.KindHeading, model.KindParagraph:
			if text := node.Text(); classify.LooksLikeDocNo(text) {
				return classify.NormalizeDocNoBrackets(text)
			}
		}
	}
	return ""
}
