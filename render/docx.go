// Package render produces DOCX bytes from a document model, a rule set and a
// letterhead template. Rendering is a pure transformation: layout decisions
// (header row grouping, tab alignment, suffix normalization, divider and
// attachment scaffolding) happen here, never in the model.
package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/model"
)

// Options carries the per-export knobs.
type Options struct {
	// UnitName is the issuing unit rendered by unitName-bound letterhead
	// elements.
	UnitName string

	// IncludeLetterhead renders the template into the first-page header.
	// Without it the document body still gets the house page geometry.
	IncludeLetterhead bool
}

// Docx renders the document with its structured fields into DOCX bytes.
func Docx(doc *model.Document, fields model.Fields, tpl *model.LetterheadTemplate, opts Options) ([]byte, error) {
	rules := fields.TopicRules
	if rules == nil {
		rules = &model.StyleRules{}
	}

	bodyStyle := bodyDefault().overlay(rules.Body)

	var blocks []wBlock
	blocks = append(blocks, frontmatter(fields, rules)...)
	blocks = append(blocks, bodyBlocks(doc, rules, bodyStyle)...)
	blocks = append(blocks, signOffBlocks(fields, bodyStyle)...)
	blocks = append(blocks, attachmentBlocks(fields.Attachments, bodyStyle)...)

	includeHeader := opts.IncludeLetterhead && tpl != nil

	sect := wSectPr{
		FooterRefs: []wHdrFtrRef{{Type: "default", ID: "rId2"}},
		PgSz:       wPgSz{W: cmToTwips(model.PageWidthCm), H: cmToTwips(model.PageHeightCm)},
		PgMar: wPgMar{
			Top:    cmToTwips(model.DefaultMargins.Top),
			Bottom: cmToTwips(model.DefaultMargins.Bottom),
			Left:   cmToTwips(model.DefaultMargins.Left),
			Right:  cmToTwips(model.DefaultMargins.Right),
			Header: "0",
			Footer: cmToTwips(1.0),
		},
	}
	if includeHeader {
		sect.HeaderRefs = []wHdrFtrRef{{Type: "first", ID: "rId1"}}
		sect.TitlePg = &wEmpty{}
	}

	document := wDocument{
		NSW:  nsW,
		NSR:  nsR,
		Body: wBody{Blocks: blocks, SectPr: sect},
	}

	parts := map[string][]byte{}
	docXML, err := marshalPart(document)
	if err != nil {
		return nil, fmt.Errorf("marshaling document.xml: %w", err)
	}
	parts["word/document.xml"] = docXML

	footerXML, err := marshalPart(wFooter{NSW: nsW, NSR: nsR, Paragraphs: []wParagraph{{
		Props: &wParaProps{Jc: &wVal{Val: "center"}},
		Runs:  []wRun{pageField()},
	}}})
	if err != nil {
		return nil, fmt.Errorf("marshaling footer: %w", err)
	}
	parts["word/footer1.xml"] = footerXML

	if includeHeader {
		headerXML, err := marshalPart(wHeader{NSW: nsW, NSR: nsR,
			Paragraphs: letterheadParagraphs(tpl, fields, opts.UnitName)})
		if err != nil {
			return nil, fmt.Errorf("marshaling header: %w", err)
		}
		parts["word/header1.xml"] = headerXML
	}

	parts["[Content_Types].xml"] = contentTypesXML(includeHeader)
	parts["_rels/.rels"] = []byte(rootRels)
	parts["word/_rels/document.xml.rels"] = documentRelsXML(includeHeader)

	return zipParts(parts)
}

// frontmatter renders the centered title and main-addressee lines. Both are
// suppressed when the topic's content template supplies leading nodes.
func frontmatter(fields model.Fields, rules *model.StyleRules) []wBlock {
	if rules.ContentTemplate != nil && len(rules.ContentTemplate.LeadingNodes) > 0 {
		return nil
	}

	var blocks []wBlock
	if title := strings.TrimSpace(fields.Title); title != "" {
		blocks = append(blocks, wParagraph{
			Props: &wParaProps{
				Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
				Jc:      &wVal{Val: "center"},
			},
			Runs: []wRun{textRun(runProps(model.FontTitle, model.TitleSizePt, false, ""), title)},
		})
	}
	if mainTo := strings.TrimSpace(fields.MainTo); mainTo != "" {
		blocks = append(blocks, wParagraph{
			Props: &wParaProps{
				Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
				Indent:  &wIndent{FirstLine: "0"},
			},
			Runs: []wRun{textRun(runProps(model.FontBody, model.BodySizePt, false, ""), mainTo)},
		})
	}
	return blocks
}

// bodyBlocks walks the document tree. A paragraph starting a suffix marker
// switches the remainder of the document into suffix mode: marker prefixes
// render as a separate 黑体 run, continuation text in the body font.
func bodyBlocks(doc *model.Document, rules *model.StyleRules, bodyStyle resolvedStyle) []wBlock {
	var blocks []wBlock
	suffixMode := false

	for _, node := range doc.Children {
		switch n := node.(type) {
		case *model.Heading:
			style := headingDefault(n.Level).overlay(rules.HeadingAttrs(n.Level)).overlay(n.Attrs)
			blocks = append(blocks, wParagraph{
				Props: style.paraProps(true),
				Runs:  []wRun{textRun(style.runProps(), n.Text())},
			})

		case *model.Paragraph:
			if n.Attrs.DividerRed {
				blocks = append(blocks, wParagraph{Props: &wParaProps{
					Borders: redBottomBorder(),
					Spacing: &wSpacing{Before: "0", After: "0"},
				}})
				continue
			}

			text := n.Text()
			if classify.IsSuffixMarker(text) {
				suffixMode = true
			}
			style := bodyStyle.overlay(n.Attrs)

			if suffixMode && text != "" {
				blocks = append(blocks, suffixParagraph(text, style))
				continue
			}
			blocks = append(blocks, wParagraph{
				Props: style.paraProps(true),
				Runs:  []wRun{textRun(style.runProps(), text)},
			})

		case *model.Table:
			if tbl := tableBlock(n, bodyStyle); tbl != nil {
				blocks = append(blocks, *tbl)
			}
		}
	}
	return blocks
}

// suffixParagraph renders a suffix-block line: the role label (and colon)
// stays in 黑体 with bold forced off, the remainder uses the body font. Lines
// without a marker render wholly in the body font, left-aligned without
// indent.
func suffixParagraph(text string, style resolvedStyle) wParagraph {
	style.align = model.AlignLeft
	style.bold = false
	para := wParagraph{Props: style.paraProps(false)}

	if marker, rest, ok := classify.SplitSuffixMarker(text); ok {
		para.Runs = append(para.Runs,
			textRun(runProps(model.FontHeading, style.sizePt, false, style.colorHex), marker))
		if rest != "" {
			para.Runs = append(para.Runs,
				textRun(runProps(style.family, style.sizePt, false, style.colorHex), rest))
		}
		return para
	}
	para.Runs = []wRun{textRun(runProps(style.family, style.sizePt, false, style.colorHex), text)}
	return para
}

// tableBlock renders a fixed grid sized to the widest row; missing cells are
// blank and every cell uses uniform body typography.
func tableBlock(t *model.Table, bodyStyle resolvedStyle) *wTable {
	cols := 0
	for _, row := range t.Rows {
		if len(row.Cells) > cols {
			cols = len(row.Cells)
		}
	}
	if cols == 0 || len(t.Rows) == 0 {
		return nil
	}

	contentWidth := model.ContentWidthCm(model.DefaultMargins)
	colWidth := cmToTwips(contentWidth / float64(cols))
	border := singleBorder("#000000", 4)

	tbl := &wTable{
		Props: wTblProps{
			Width: wTblWidth{W: cmToTwips(contentWidth), Type: "dxa"},
			Borders: wTblBorders{
				Top: border, Left: border, Bottom: border, Right: border,
				InsideH: border, InsideV: border,
			},
		},
	}
	for i := 0; i < cols; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, wGridCol{W: colWidth})
	}

	cellProps := &wParaProps{Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"}}
	for _, row := range t.Rows {
		wr := wTableRow{}
		for c := 0; c < cols; c++ {
			value := ""
			if c < len(row.Cells) {
				value = strings.TrimSpace(row.Cells[c].Text())
			}
			wr.Cells = append(wr.Cells, wTableCell{
				Props: wTcProps{Width: wTblWidth{W: colWidth, Type: "dxa"}},
				Paragraphs: []wParagraph{{
					Props: cellProps,
					Runs:  []wRun{textRun(runProps(bodyStyle.family, bodyStyle.sizePt, false, ""), value)},
				}},
			})
		}
		tbl.Rows = append(tbl.Rows, wr)
	}
	return tbl
}

var isoDateRE = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// formatZhDate renders an ISO date the conventional way (2026年1月5日); any
// other shape passes through unchanged.
func formatZhDate(value string) string {
	value = strings.TrimSpace(value)
	m := isoDateRE.FindStringSubmatch(value)
	if m == nil {
		return value
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%d年%d月%d日", year, month, day)
}

// signOffBlocks renders the right-aligned signature and date lines, preceded
// by two blank spacer paragraphs.
func signOffBlocks(fields model.Fields, bodyStyle resolvedStyle) []wBlock {
	signOff := strings.TrimSpace(fields.SignOff)
	date := formatZhDate(fields.Date)
	if signOff == "" && date == "" {
		return nil
	}

	spacer := wParagraph{Props: &wParaProps{
		Spacing: &wSpacing{Before: "0", After: "0", Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
		Indent:  &wIndent{FirstLine: "0"},
	}}
	blocks := []wBlock{spacer, spacer}

	rightLine := func(text string) wParagraph {
		return wParagraph{
			Props: &wParaProps{
				Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
				Indent:  &wIndent{FirstLine: "0"},
				Jc:      &wVal{Val: "right"},
			},
			Runs: []wRun{textRun(runProps(bodyStyle.family, bodyStyle.sizePt, false, ""), text)},
		}
	}
	if signOff != "" {
		blocks = append(blocks, rightLine(signOff))
	}
	if date != "" {
		blocks = append(blocks, rightLine(date))
	}
	return blocks
}

// attachmentBlocks renders the numbered manifest followed by one page-break
// separated placeholder section per attachment. This is scaffolding, not
// attachment content embedding.
func attachmentBlocks(attachments []model.Attachment, bodyStyle resolvedStyle) []wBlock {
	if len(attachments) == 0 {
		return nil
	}

	bodyLine := func(text string, indent bool) wParagraph {
		props := &wParaProps{Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"}}
		if indent {
			props.Indent = &wIndent{FirstLine: ptToTwips(model.BodyIndentPt)}
		} else {
			props.Indent = &wIndent{FirstLine: "0"}
		}
		return wParagraph{
			Props: props,
			Runs:  []wRun{textRun(runProps(bodyStyle.family, bodyStyle.sizePt, false, ""), text)},
		}
	}

	blocks := []wBlock{wParagraph{}, bodyLine("附件：", true)}
	for _, item := range attachments {
		blocks = append(blocks, bodyLine(fmt.Sprintf("%d. %s", item.Index, stripExt(item.Name)), true))
	}

	for _, item := range attachments {
		title := stripExt(item.Name)
		blocks = append(blocks,
			pageBreakParagraph(),
			wParagraph{
				Props: &wParaProps{
					Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
					Indent:  &wIndent{FirstLine: "0"},
				},
				Runs: []wRun{textRun(runProps(model.FontHeading, model.BodySizePt, false, ""), fmt.Sprintf("附件%d", item.Index))},
			},
			wParagraph{
				Props: &wParaProps{
					Spacing: &wSpacing{Line: ptToTwips(model.BodyLineSpacingPt), LineRule: "exact"},
					Jc:      &wVal{Val: "center"},
				},
				Runs: []wRun{textRun(runProps(model.FontTitle, model.TitleSizePt, false, ""), title)},
			},
			wParagraph{
				Props: bodyStyle.paraProps(true),
				Runs:  []wRun{textRun(runProps(bodyStyle.family, bodyStyle.sizePt, false, ""), "（附件正文请在此处编辑）")},
			},
		)
	}
	return blocks
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

func zipParts(parts map[string][]byte) ([]byte, error) {
	// deterministic part order
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", name, err)
		}
		if _, err := w.Write(parts[name]); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func contentTypesXML(withHeader bool) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>`)
	b.WriteString(`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>`)
	if withHeader {
		b.WriteString(`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>`)
	}
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func documentRelsXML(withHeader bool) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	if withHeader {
		b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>`)
	}
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>`)
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}
