package render

import (
	"math"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/letterhead"
	"github.com/leew00726/publicText/model"
)

// rowTolCm groups elements whose yCm differ by at most this into one
// rendered header line.
const rowTolCm = 0.05

// bindValues resolves what each element binding renders as.
func bindValues(fields model.Fields, unitName string) map[model.Bind]string {
	return map[model.Bind]string{
		model.BindUnitName:  unitName,
		model.BindDocNo:     classify.NormalizeDocNoBrackets(fields.DocNo),
		model.BindSignatory: fields.Signatory,
		model.BindCopyNo:    fields.CopyNo,
		model.BindFixedText: "",
	}
}

// groupElementsByY sorts enabled elements by yCm and groups consecutive ones
// within the shared-line tolerance.
func groupElementsByY(elements []model.Element) [][]model.Element {
	enabled := make([]model.Element, 0, len(elements))
	for _, e := range elements {
		if e.Enabled {
			enabled = append(enabled, e)
		}
	}
	for i := 1; i < len(enabled); i++ {
		for j := i; j > 0 && enabled[j].YCm < enabled[j-1].YCm; j-- {
			enabled[j], enabled[j-1] = enabled[j-1], enabled[j]
		}
	}

	var groups [][]model.Element
	for _, elem := range enabled {
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if math.Abs(elem.YCm-last[0].YCm) <= rowTolCm {
				groups[len(groups)-1] = append(last, elem)
				continue
			}
		}
		groups = append(groups, []model.Element{elem})
	}
	return groups
}

// letterheadParagraphs renders a template's elements into first-page header
// paragraphs: one paragraph per y-row, vertical placement approximated by
// carried-forward space-before.
func letterheadParagraphs(tpl *model.LetterheadTemplate, fields model.Fields, unitName string) []wParagraph {
	binds := bindValues(fields, unitName)
	contentWidthCm := model.ContentWidthCm(tpl.Page.MarginsCm)

	var paragraphs []wParagraph
	prevY, prevHeight := 0.0, 0.0

	for _, group := range groupElementsByY(tpl.Elements) {
		yCm := group[0].YCm
		spaceBefore := yCm - (prevY + prevHeight)
		if spaceBefore < 0 {
			spaceBefore = 0
		}

		para := wParagraph{Props: &wParaProps{
			Spacing: &wSpacing{Before: cmToTwips(spaceBefore), After: "0"},
		}}

		var hasLine bool
		var texts []model.Element
		var docNo, signatory *model.Element
		for i := range group {
			switch group[i].Type {
			case model.ElementLine:
				hasLine = true
			case model.ElementText:
				texts = append(texts, group[i])
				switch group[i].Bind {
				case model.BindDocNo:
					docNo = &group[i]
				case model.BindSignatory:
					signatory = &group[i]
				}
			}
		}

		switch {
		case hasLine && len(texts) == 0:
			// a bare rule renders as an empty paragraph with a red bottom border
			para.Props.Borders = redBottomBorder()
			prevHeight = 0.08

		case docNo != nil && signatory != nil:
			// shared line: docNo left, signatory flushed right via tab stop
			para.Props.Jc = &wVal{Val: "left"}
			para.Props.Tabs = &wTabs{Stops: []wTabStop{{Val: "right", Pos: cmToTwips(contentWidthCm)}}}
			bodyFont := runProps(model.FontBody, model.BodySizePt, false, "")
			para.Runs = append(para.Runs,
				textRun(bodyFont, binds[model.BindDocNo]),
				wRun{Content: []any{wTab{}}},
				textRun(runProps(model.FontBody, model.BodySizePt, false, ""), binds[model.BindSignatory]),
			)
			prevHeight = letterhead.TextHeightCm(model.BodySizePt)
			if hasLine {
				para.Props.Borders = redBottomBorder()
			}

		default:
			for _, elem := range texts {
				value := binds[elem.Bind]
				if elem.Bind == model.BindFixedText {
					value = elem.FixedText
				}
				if value == "" && !elem.VisibleIfEmpty {
					continue
				}

				para.Props.Jc = &wVal{Val: elementJc(elem)}
				font := elementFont(elem)
				para.Runs = append(para.Runs, textRun(
					runProps(font.Family, font.SizePt, font.Bold, font.Color), value))
				prevHeight = letterhead.TextHeightCm(font.SizePt)
			}
			if hasLine {
				para.Props.Borders = redBottomBorder()
			}
		}

		prevY = yCm
		paragraphs = append(paragraphs, para)
	}
	return paragraphs
}

func elementJc(elem model.Element) string {
	align := model.AlignLeft
	if elem.Text != nil && elem.Text.Align != "" {
		align = elem.Text.Align
	}
	switch {
	case align == model.AlignCenter || elem.X.Anchor == model.AnchorCenter:
		return "center"
	case align == model.AlignRight || elem.X.Anchor == model.AnchorMarginRight:
		return "right"
	default:
		return "left"
	}
}

func elementFont(elem model.Element) model.FontSpec {
	font := model.FontSpec{Family: model.FontBody, SizePt: model.BodySizePt, Color: "#000000"}
	if elem.Text != nil {
		if elem.Text.Font.Family != "" {
			font.Family = elem.Text.Font.Family
		}
		if elem.Text.Font.SizePt > 0 {
			font.SizePt = elem.Text.Font.SizePt
		}
		font.Bold = elem.Text.Font.Bold
		if elem.Text.Font.Color != "" {
			font.Color = elem.Text.Font.Color
		}
	}
	return font
}
