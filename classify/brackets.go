package classify

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Document numbers conventionally wrap the year in CJK lenticular brackets:
// 〔2026〕. Authors frequently type (2026) or （2026） instead.

var (
	halfBracketRE = regexp.MustCompile(`\(([0-9]{2,4})\)`)
	fullBracketRE = regexp.MustCompile(`（([0-9]{2,4})）`)
	fullDigitRunRE = regexp.MustCompile(`[（(][０-９]{2,4}[)）]`)
)

// NormalizeDocNoBrackets replaces half- or full-width parentheses wrapping a
// 2-4 digit run with 〔 〕. The transformation is idempotent: an already
// normalized number passes through unchanged.
func NormalizeDocNoBrackets(text string) string {
	// Full-width digits inside parentheses fold to ASCII first so one pair
	// of patterns covers every input shape.
	text = fullDigitRunRE.ReplaceAllStringFunc(text, func(s string) string {
		return width.Narrow.String(s)
	})
	text = halfBracketRE.ReplaceAllString(text, "〔$1〕")
	text = fullBracketRE.ReplaceAllString(text, "〔$1〕")
	return text
}

var docNoDigitsRE = regexp.MustCompile(`\d{4}`)

// LooksLikeDocNo reports whether text plausibly carries a document number:
// a 4-digit run plus one of the 号/文 markers.
func LooksLikeDocNo(text string) bool {
	if !docNoDigitsRE.MatchString(width.Narrow.String(text)) {
		return false
	}
	return strings.Contains(text, "号") || strings.Contains(text, "文")
}
