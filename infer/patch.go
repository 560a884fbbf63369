package infer

import (
	"regexp"

	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/model"
)

// MergePatch applies patch onto target and returns a new tree; neither input
// is mutated. Where both sides hold nested maps the merge recurses; any other
// patch value replaces the target value wholesale; a patch leaf is the
// author's full intent, not a deep diff.
func MergePatch(target, patch map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(patch))
	for k, v := range target {
		out[k] = v
	}
	for k, pv := range patch {
		tm, tok := out[k].(map[string]any)
		pm, pok := pv.(map[string]any)
		if tok && pok {
			out[k] = MergePatch(tm, pm)
			continue
		}
		out[k] = pv
	}
	return out
}

var segmentSplitRE = regexp.MustCompile(`[，,。；;\n]+`)

// PatchFromInstruction derives a rule patch from a plain-text revision
// instruction. Each sentence segment contributes a (font, targets) pair; when
// no segment resolves both, any extracted font falls back to the body. A nil
// return means the instruction yielded nothing usable.
func PatchFromInstruction(instruction string) map[string]any {
	patch := map[string]any{}
	fallbackFont := ""

	for _, segment := range segmentSplitRE.Split(instruction, -1) {
		if segment == "" {
			continue
		}
		font := classify.ExtractFontName(segment)
		if font == "" {
			continue
		}
		targets := classify.FontTargets(segment)
		if len(targets) == 0 {
			if fallbackFont == "" {
				fallbackFont = font
			}
			continue
		}
		assignFont(patch, font, targets)
	}

	if len(patch) == 0 && fallbackFont != "" {
		assignFont(patch, fallbackFont, map[string]bool{"body": true})
	}
	if len(patch) == 0 {
		return nil
	}
	return patch
}

func assignFont(patch map[string]any, font string, targets map[string]bool) {
	if targets["body"] {
		body, _ := patch["body"].(map[string]any)
		if body == nil {
			body = map[string]any{}
			patch["body"] = body
		}
		body["fontFamily"] = font
	}
	var headings map[string]any
	for _, level := range []string{"level1", "level2", "level3", "level4"} {
		if !targets[level] {
			continue
		}
		if headings == nil {
			headings, _ = patch["headings"].(map[string]any)
			if headings == nil {
				headings = map[string]any{}
				patch["headings"] = headings
			}
		}
		lm, _ := headings[level].(map[string]any)
		if lm == nil {
			lm = map[string]any{}
			headings[level] = lm
		}
		lm["fontFamily"] = font
	}
}

// Revise computes the next rule set from the previous one plus up to three
// patch sources, merged in rising precedence: the AI-derived patch first,
// then the instruction-derived patch, then the caller's explicit patch.
func Revise(prev *model.StyleRules, instruction string, explicit, ai map[string]any) (*model.StyleRules, error) {
	current := prev.ToMap()
	if ai != nil {
		current = MergePatch(current, ai)
	}
	if p := PatchFromInstruction(instruction); p != nil {
		current = MergePatch(current, p)
	}
	if explicit != nil {
		current = MergePatch(current, explicit)
	}
	return model.RulesFromMap(current)
}
