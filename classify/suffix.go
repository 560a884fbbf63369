package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// suffixMarkerRE matches the role labels that open a meeting-minutes suffix
// block (host/attendees/recorder/distribution), tolerant of inserted spaces,
// followed by a full- or half-width colon.
var suffixMarkerRE = regexp.MustCompile(
	`^(主\s*持(?:\s*人|\s*者)?|参\s*(?:加|会)(?:\s*人|\s*人员|\s*名单)?|列\s*席(?:\s*人|\s*人员)?|出\s*席(?:\s*人|\s*人员)?|记\s*录(?:\s*人|\s*员)?|发\s*(?:送|至|文)|主\s*送|抄\s*送|分\s*送)\s*[：:]`)

// signerLineRE matches a 签发人 (issuer/signer) line in a leading block.
var signerLineRE = regexp.MustCompile(`^签\s*发\s*人\s*[：:]`)

// distributionRE matches the 发送/发至/发文 distribution line which is
// conventionally framed by red rules.
var distributionRE = regexp.MustCompile(`^发\s*(?:送|至|文)\s*[：:]`)

// IsSuffixMarker reports whether text opens with a suffix-block role marker.
func IsSuffixMarker(text string) bool {
	return suffixMarkerRE.MatchString(text)
}

// SplitSuffixMarker splits "主 持：金刚善" into the marker-with-colon prefix
// and the remainder. ok is false for non-marker text.
func SplitSuffixMarker(text string) (marker, rest string, ok bool) {
	loc := suffixMarkerRE.FindStringIndex(text)
	if loc == nil {
		return "", text, false
	}
	return text[:loc[1]], text[loc[1]:], true
}

// IsSignerLine reports whether text is a 签发人 line.
func IsSignerLine(text string) bool {
	return signerLineRE.MatchString(text)
}

// IsDistributionLine reports whether text is a 发送/发至/发文 line.
func IsDistributionLine(text string) bool {
	return distributionRE.MatchString(text)
}

// LooksLikeSentence reports whether text reads as real body prose rather than
// a letterhead or suffix fragment: it ends with a CJK sentence terminator and
// is at least 10 runes, or ends with a colon at 20+ runes, or carries a comma
// at 16+ runes.
func LooksLikeSentence(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	n := utf8.RuneCountInString(text)
	switch {
	case hasAnySuffix(text, "。", "！", "？", "!", "?") && n >= 10:
		return true
	case hasAnySuffix(text, "：", ":") && n >= 20:
		return true
	case (strings.Contains(text, "，") || strings.Contains(text, ",")) && n >= 16:
		return true
	default:
		return false
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
