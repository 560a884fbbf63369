package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Heading marker patterns, one per level:
//
//	L1  一、       L2  （一）       L3  1.       L4  （1）
var (
	reH1 = regexp.MustCompile(`^[一二三四五六七八九十百千]+、`)
	reH2 = regexp.MustCompile(`^（[一二三四五六七八九十百千]+）`)
	reH3 = regexp.MustCompile(`^\d+\.`)
	reH4 = regexp.MustCompile(`^（\d+）`)
)

var levelRes = []*regexp.Regexp{reH1, reH2, reH3, reH4}

// HeadingLevelByMarker returns the heading level (1..4) indicated by the
// leading numbering marker of text, or 0 when no marker matches.
func HeadingLevelByMarker(text string) int {
	for i, re := range levelRes {
		if re.MatchString(text) {
			return i + 1
		}
	}
	return 0
}

// HeadingLevelByFont classifies a paragraph by its dominant run font when no
// numbering marker matched: 黑体 reads as level 1, 楷体 as level 2, and 仿宋
// as level 3 provided the text is shaped like a short title.
func HeadingLevelByFont(fontName, text string) int {
	switch {
	case strings.Contains(fontName, "黑体"):
		return 1
	case strings.Contains(fontName, "楷体"):
		return 2
	case strings.Contains(fontName, "仿宋") && LooksLikeTitle(text):
		return 3
	default:
		return 0
	}
}

// LooksLikeTitle reports whether text has short-title shape: 4..24 runes and
// no trailing full stop.
func LooksLikeTitle(text string) bool {
	n := utf8.RuneCountInString(text)
	return n >= 4 && n <= 24 && !strings.HasSuffix(text, "。")
}

// HeadingMarker returns the leading numbering marker for the given level
// ("" when text does not start with that level's marker) and the remainder
// after it.
func HeadingMarker(level int, text string) (marker, rest string) {
	if level < 1 || level > 4 {
		return "", text
	}
	loc := levelRes[level-1].FindStringIndex(text)
	if loc == nil {
		return "", text
	}
	return text[:loc[1]], strings.TrimSpace(text[loc[1]:])
}

// HeadingStyleLevel parses a native paragraph style name of the form
// "Heading N" or "标题 N" into a heading level, or 0.
func HeadingStyleLevel(styleName string) int {
	name := strings.TrimSpace(strings.ToLower(styleName))
	for _, prefix := range []string{"heading ", "heading", "标题 ", "标题"} {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		suffix := strings.TrimSpace(strings.TrimPrefix(name, prefix))
		switch suffix {
		case "1":
			return 1
		case "2":
			return 2
		case "3":
			return 3
		case "4":
			return 4
		}
	}
	return 0
}
