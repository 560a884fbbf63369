// Package letterhead validates letterhead templates against page safe-zones
// and provides the builtin template variants.
package letterhead

import (
	"fmt"
	"math"

	"github.com/leew00726/publicText/model"
)

const (
	// SafeTopCm is the vertical region reserved for letterhead content.
	SafeTopCm = 3.7
	// SafeBufferCm keeps element footprints clear of the boundary.
	SafeBufferCm = 0.2
	// sharedLineTolCm is the max yCm difference for docNo and signatory to
	// still count as one shared line.
	sharedLineTolCm = 0.05
)

// TextHeightCm estimates the rendered height of a text line at the given
// size, with 1.2 line height.
func TextHeightCm(sizePt float64) float64 {
	return (sizePt / 72.0) * 2.54 * 1.2
}

// LineHeightCm estimates the rendered height of a rule.
func LineHeightCm(thicknessPt float64) float64 {
	return (thicknessPt / 72.0) * 2.54
}

// Validate checks a template's enabled elements against the top safe zone.
// Publishing must be blocked while errors is non-empty; warnings are
// advisory only.
func Validate(tpl *model.LetterheadTemplate) (errors, warnings []string) {
	var hasUnitName bool
	var docNo, signatory *model.Element

	for i := range tpl.Elements {
		elem := &tpl.Elements[i]
		if !elem.Enabled {
			continue
		}

		if elem.YCm < 0 || elem.YCm >= SafeTopCm {
			errors = append(errors, fmt.Sprintf("元素 %s 的 yCm=%v 超出允许范围 [0, 3.7)。", elem.ID, elem.YCm))
			continue
		}

		switch elem.Type {
		case model.ElementText:
			switch elem.Bind {
			case model.BindUnitName:
				hasUnitName = true
				if elem.X.Anchor != model.AnchorCenter {
					warnings = append(warnings, "unitName 建议使用 center 锚点。")
				}
			case model.BindDocNo:
				docNo = elem
			case model.BindSignatory:
				signatory = elem
			}

			sizePt := 16.0
			if elem.Text != nil && elem.Text.Font.SizePt > 0 {
				sizePt = elem.Text.Font.SizePt
			}
			if est := TextHeightCm(sizePt); elem.YCm+est > SafeTopCm-SafeBufferCm {
				errors = append(errors, fmt.Sprintf(
					"元素 %s 超出顶部安全区：yCm(%v) + estimatedHeightCm(%.3f) > 3.5。", elem.ID, elem.YCm, est))
			}

		case model.ElementLine:
			thicknessPt := 1.5
			if elem.Line != nil && elem.Line.ThicknessPt > 0 {
				thicknessPt = elem.Line.ThicknessPt
			}
			if est := LineHeightCm(thicknessPt); elem.YCm+est > SafeTopCm-SafeBufferCm {
				errors = append(errors, fmt.Sprintf(
					"线条 %s 超出顶部安全区：yCm(%v) + estimatedHeightCm(%.3f) > 3.5。", elem.ID, elem.YCm, est))
			}
		}
	}

	if !hasUnitName {
		errors = append(errors, "必须至少包含一个 bind=unitName 的文本元素。")
	}

	if docNo != nil && signatory != nil {
		if diff := math.Abs(docNo.YCm - signatory.YCm); diff > sharedLineTolCm {
			warnings = append(warnings, fmt.Sprintf("docNo 与 signatory 的 yCm 差值为 %.3fcm，建议 <= 0.05cm。", diff))
		}
	}

	return errors, warnings
}
