package classify

import (
	"regexp"
	"sort"
	"strings"
)

// fontAliases maps the colloquial names of common official-document fonts to
// their canonical installed families.
var fontAliases = map[string]string{
	"方正小标宋简": "方正小标宋简",
	"方正小标宋":  "方正小标宋简",
	"小标宋":    "方正小标宋简",
	"仿宋_GB2312": "仿宋_GB2312",
	"仿宋":      "仿宋_GB2312",
	"楷体_GB2312": "楷体_GB2312",
	"楷体":      "楷体_GB2312",
	"黑体":      "黑体",
	"宋体":      "宋体",
}

// sortedFontKeys is ordered longest-first so "仿宋_GB2312" matches before "仿宋".
var sortedFontKeys = func() []string {
	keys := make([]string, 0, len(fontAliases))
	for k := range fontAliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return keys
}()

// CanonicalFont resolves a font name through the alias table, returning the
// input unchanged when no alias applies.
func CanonicalFont(name string) string {
	if canonical, ok := fontAliases[name]; ok {
		return canonical
	}
	return name
}

var fontVerbRE = regexp.MustCompile(
	`(?:改为|改成|设为|设置为|调整为|变为|使用|用|字体为|为)\s*([A-Za-z0-9_\-\x{4e00}-\x{9fa5}]+)`)

var fontCutRE = regexp.MustCompile(`(并|且|保持|不变|不改|不调整|\s)`)

// ExtractFontName pulls a font family from a revision-instruction segment:
// first an exact alias hit, then the object of a change verb like 改为/设为.
// "" means no font was named.
func ExtractFontName(text string) string {
	if text == "" {
		return ""
	}
	for _, key := range sortedFontKeys {
		if strings.Contains(text, key) {
			return fontAliases[key]
		}
	}
	m := fontVerbRE.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	candidate := strings.TrimSpace(fontCutRE.Split(m[1], 2)[0])
	if candidate == "" {
		return ""
	}
	return CanonicalFont(candidate)
}

var headingTargetREs = map[string]*regexp.Regexp{
	"level1": regexp.MustCompile(`(一级标题|1级标题|1\s*级\s*标题|一\s*级\s*标题)`),
	"level2": regexp.MustCompile(`(二级标题|2级标题|2\s*级\s*标题|二\s*级\s*标题)`),
	"level3": regexp.MustCompile(`(三级标题|3级标题|3\s*级\s*标题|三\s*级\s*标题)`),
	"level4": regexp.MustCompile(`(四级标题|4级标题|4\s*级\s*标题|四\s*级\s*标题)`),
}

var allLevels = []string{"level1", "level2", "level3", "level4"}

// FontTargets resolves which rule locations an instruction segment addresses:
// "body" and/or "levelN". A bare 标题 with no explicit level means all four
// levels; 全文 means body plus all levels.
func FontTargets(text string) map[string]bool {
	targets := map[string]bool{}
	if text == "" {
		return targets
	}
	for key, re := range headingTargetREs {
		if re.MatchString(text) {
			targets[key] = true
		}
	}
	if strings.Contains(text, "正文") {
		targets["body"] = true
	}
	hasLevel := false
	for _, lvl := range allLevels {
		if targets[lvl] {
			hasLevel = true
			break
		}
	}
	if strings.Contains(text, "标题") && !hasLevel {
		for _, lvl := range allLevels {
			targets[lvl] = true
		}
	}
	if strings.Contains(text, "全文") {
		targets["body"] = true
		for _, lvl := range allLevels {
			targets[lvl] = true
		}
	}
	return targets
}
