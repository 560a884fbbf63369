package letterhead

import (
	"github.com/google/uuid"

	"github.com/leew00726/publicText/model"
)

// NewElementID issues an identifier for a user-created template element.
// Builtin template elements keep stable well-known IDs instead.
func NewElementID() string {
	return uuid.NewString()
}

func builtinPage() model.PageSpec {
	return model.PageSpec{Paper: "A4", MarginsCm: model.DefaultMargins}
}

func unitNameElement() model.Element {
	return model.Element{
		ID:      "unit-name",
		Enabled: true,
		Type:    model.ElementText,
		Bind:    model.BindUnitName,
		X:       model.XPos{Anchor: model.AnchorCenter},
		YCm:     1.0,
		Text: &model.TextSpec{
			Align: model.AlignCenter,
			Font: model.FontSpec{
				Family: model.FontTitle,
				SizePt: model.TitleSizePt,
				Color:  model.RedColor,
			},
		},
	}
}

func redLineElement() model.Element {
	return model.Element{
		ID:      "red-line",
		Enabled: true,
		Type:    model.ElementLine,
		Bind:    model.BindFixedText,
		X:       model.XPos{Anchor: model.AnchorMarginLeft},
		YCm:     2.2,
		Line: &model.LineSpec{
			LengthMode:  model.LineContentWidth,
			ThicknessPt: 1.5,
			Color:       model.RedColor,
		},
	}
}

// BuiltinSimple is the minimal variant: centered unit name over a red rule.
func BuiltinSimple() *model.LetterheadTemplate {
	return &model.LetterheadTemplate{
		Name:     "模板A（简版）",
		Version:  1,
		Page:     builtinPage(),
		Elements: []model.Element{unitNameElement(), redLineElement()},
	}
}

// BuiltinCommon is the common variant: copy number, unit name, red rule, and
// a shared document-number/signatory line.
func BuiltinCommon() *model.LetterheadTemplate {
	copyNo := model.Element{
		ID:      "copy-no",
		Enabled: true,
		Type:    model.ElementText,
		Bind:    model.BindCopyNo,
		X:       model.XPos{Anchor: model.AnchorMarginLeft},
		YCm:     0.8,
		Text: &model.TextSpec{
			Align: model.AlignLeft,
			Font:  model.FontSpec{Family: model.FontBody, SizePt: 12, Color: "#000000"},
		},
	}
	docNo := model.Element{
		ID:      "doc-no",
		Enabled: true,
		Type:    model.ElementText,
		Bind:    model.BindDocNo,
		X:       model.XPos{Anchor: model.AnchorMarginLeft},
		YCm:     2.45,
		Text: &model.TextSpec{
			Align: model.AlignLeft,
			Font:  model.FontSpec{Family: model.FontBody, SizePt: model.BodySizePt, Color: "#000000"},
		},
	}
	signatory := model.Element{
		ID:      "signatory",
		Enabled: true,
		Type:    model.ElementText,
		Bind:    model.BindSignatory,
		X:       model.XPos{Anchor: model.AnchorMarginRight},
		YCm:     2.45,
		Text: &model.TextSpec{
			Align: model.AlignRight,
			Font:  model.FontSpec{Family: model.FontBody, SizePt: model.BodySizePt, Color: "#000000"},
		},
	}
	return &model.LetterheadTemplate{
		Name:    "模板B（常见版）",
		Version: 1,
		Page:    builtinPage(),
		Elements: []model.Element{
			copyNo, unitNameElement(), redLineElement(), docNo, signatory,
		},
	}
}
