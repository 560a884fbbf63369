// Package docx reads DOCX (Office Open XML) documents and imports them into
// the publicText document model, detecting heading levels and numbering
// anomalies along the way.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leew00726/publicText/model"
)

// ErrNotDocx reports bytes that are not a readable DOCX package.
var ErrNotDocx = errors.New("not a readable DOCX document")

// Reader provides access to parsed DOCX content.
type Reader struct {
	document *documentXML
	styles   *stylesXML
	elements []Element
}

// Element is one ordered body element: exactly one of Paragraph or Table.
type Element struct {
	Paragraph *Paragraph
	Table     *Table
}

// Paragraph is a parsed paragraph with resolved style facts.
type Paragraph struct {
	Text      string
	StyleName string
	Align     string
	Runs      []Run

	LineSpacingPt     *float64
	SpaceBeforePt     *float64
	SpaceAfterPt      *float64
	FirstLineIndentPt *float64
	FirstLineChars    *float64
}

// Run is a parsed text run.
type Run struct {
	Text     string
	Font     string
	SizePt   *float64
	Bold     bool
	ColorHex string
}

// Table is a parsed table; rows may be ragged.
type Table struct {
	Rows [][]string // cell text, non-empty lines joined by \n
}

// NewReader parses a DOCX package from memory.
func NewReader(data []byte) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	r := &Reader{}

	docData, err := zipFileContent(zr, "word/document.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: missing word/document.xml", ErrNotDocx)
	}
	r.document = &documentXML{}
	if err := xml.Unmarshal(docData, r.document); err != nil {
		return nil, fmt.Errorf("%w: parsing document.xml: %v", ErrNotDocx, err)
	}

	// styles.xml is optional; classification falls back to run fonts.
	if stylesData, err := zipFileContent(zr, "word/styles.xml"); err == nil {
		styles := &stylesXML{}
		if xml.Unmarshal(stylesData, styles) == nil {
			r.styles = styles
		}
	}

	r.processBody()
	return r, nil
}

// Elements returns the ordered body elements.
func (r *Reader) Elements() []Element {
	return r.elements
}

// Paragraphs returns body paragraphs in order, skipping tables.
func (r *Reader) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for i := range r.elements {
		if r.elements[i].Paragraph != nil {
			out = append(out, r.elements[i].Paragraph)
		}
	}
	return out
}

// Tables returns body tables in order.
func (r *Reader) Tables() []*Table {
	var out []*Table
	for i := range r.elements {
		if r.elements[i].Table != nil {
			out = append(out, r.elements[i].Table)
		}
	}
	return out
}

// MarginsCm returns the section page margins, or ok=false when the document
// declares none.
func (r *Reader) MarginsCm() (model.Margins, bool) {
	if r.document.Body == nil || r.document.Body.SectPr == nil {
		return model.Margins{}, false
	}
	mar := r.document.Body.SectPr.PgMar
	top, okT := twipsToCm(mar.Top)
	bottom, okB := twipsToCm(mar.Bottom)
	left, okL := twipsToCm(mar.Left)
	right, okR := twipsToCm(mar.Right)
	if !okT && !okB && !okL && !okR {
		return model.Margins{}, false
	}
	return model.Margins{
		Top:    model.Round2(top),
		Bottom: model.Round2(bottom),
		Left:   model.Round2(left),
		Right:  model.Round2(right),
	}, true
}

func (r *Reader) processBody() {
	if r.document.Body == nil {
		return
	}
	for _, el := range r.document.Body.Elements {
		switch {
		case el.Paragraph != nil:
			r.elements = append(r.elements, Element{Paragraph: r.parseParagraph(el.Paragraph)})
		case el.Table != nil:
			r.elements = append(r.elements, Element{Table: parseTable(el.Table)})
		}
	}
}

func (r *Reader) parseParagraph(p *paragraphXML) *Paragraph {
	parsed := &Paragraph{
		StyleName: r.styleName(p.Properties.Style.Val),
		Align:     p.Properties.Justification.Val,
	}

	spacing := p.Properties.Spacing
	if v, ok := parseTwips(spacing.Before); ok {
		parsed.SpaceBeforePt = model.Float64(model.Round2(v))
	}
	if v, ok := parseTwips(spacing.After); ok {
		parsed.SpaceAfterPt = model.Float64(model.Round2(v))
	}
	// Line spacing in points is only well-defined under exact/atLeast rules;
	// multiplier spacing ("auto") has no fixed point value.
	if spacing.LineRule == "exact" || spacing.LineRule == "atLeast" {
		if v, ok := parseTwips(spacing.Line); ok {
			parsed.LineSpacingPt = model.Float64(model.Round2(v))
		}
	}
	if v, ok := parseTwips(p.Properties.Indent.FirstLine); ok {
		parsed.FirstLineIndentPt = model.Float64(model.Round2(v))
	}
	if raw := p.Properties.Indent.FirstLineChars; raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			parsed.FirstLineChars = model.Float64(model.Round2(v / 100))
		}
	}

	styleFallback := r.styleRunProps(p.Properties.Style.Val)
	var textParts []string
	appendRuns := func(runs []runXML) {
		for _, run := range runs {
			text := runText(run)
			if text == "" {
				continue
			}
			textParts = append(textParts, text)
			parsed.Runs = append(parsed.Runs, resolveRun(run, p.Properties.RunProps, styleFallback, text))
		}
	}
	appendRuns(p.Runs)
	for _, link := range p.Hyperlinks {
		appendRuns(link.Runs)
	}
	parsed.Text = strings.Join(textParts, "")
	return parsed
}

// resolveRun resolves run typography through the property chain: the run's
// own rPr, then the paragraph-mark rPr, then the paragraph style's rPr.
func resolveRun(run runXML, paraProps, styleProps runPropsXML, text string) Run {
	out := Run{Text: text}

	for _, props := range []runPropsXML{run.Properties, paraProps, styleProps} {
		if out.Font == "" {
			out.Font = props.Font.preferred()
		}
		if out.SizePt == nil {
			if half, err := strconv.ParseFloat(props.FontSize.Val, 64); err == nil && half > 0 {
				out.SizePt = model.Float64(model.Round2(half / 2))
			}
		}
		if out.ColorHex == "" && props.Color.Val != "" && props.Color.Val != "auto" {
			out.ColorHex = model.NormalizeColorHex(props.Color.Val)
		}
	}
	out.Bold = run.Properties.Bold.isSet() || (run.Properties.Bold == nil && paraProps.Bold.isSet())
	return out
}

func runText(run runXML) string {
	var sb strings.Builder
	for _, t := range run.Text {
		sb.WriteString(t.Value)
	}
	for range run.Tabs {
		sb.WriteString("\t")
	}
	for range run.Breaks {
		sb.WriteString("\n")
	}
	return sb.String()
}

func parseTable(t *tableXML) *Table {
	table := &Table{}
	for _, row := range t.Rows {
		var cells []string
		for _, cell := range row.Cells {
			var lines []string
			for i := range cell.Paragraphs {
				var sb strings.Builder
				for _, run := range cell.Paragraphs[i].Runs {
					sb.WriteString(runText(run))
				}
				if line := strings.TrimSpace(sb.String()); line != "" {
					lines = append(lines, line)
				}
			}
			cells = append(cells, strings.Join(lines, "\n"))
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func (r *Reader) styleName(styleID string) string {
	if styleID == "" || r.styles == nil {
		return ""
	}
	for _, style := range r.styles.Styles {
		if style.StyleID == styleID {
			return style.Name.Val
		}
	}
	return ""
}

func (r *Reader) styleRunProps(styleID string) runPropsXML {
	if styleID == "" || r.styles == nil {
		return runPropsXML{}
	}
	for _, style := range r.styles.Styles {
		if style.StyleID == styleID {
			return style.RunProps
		}
	}
	return runPropsXML{}
}

func zipFileContent(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseTwips converts a twip attribute (20ths of a point) to points.
func parseTwips(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v / 20, true
}

// twipsToCm converts a twip attribute to centimeters.
func twipsToCm(raw string) (float64, bool) {
	pt, ok := parseTwips(raw)
	if !ok {
		return 0, false
	}
	return pt / 72 * 2.54, true
}
