package publictext

import (
	"github.com/leew00726/publicText/feature"
	"github.com/leew00726/publicText/letterhead"
	"github.com/leew00726/publicText/model"
	"github.com/leew00726/publicText/render"
)

// AnalyzeOptions holds configuration for style sampling.
type AnalyzeOptions struct {
	// feature extraction thresholds; zero values fall back to defaults
	config feature.Config

	// filename hints the input format when content sniffing fails
	filename string
}

func defaultAnalyzeOptions() AnalyzeOptions {
	return AnalyzeOptions{}
}

// clone creates a copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return o
}

// RenderOptions holds configuration for DOCX export.
type RenderOptions struct {
	unitName   string
	letterhead *model.LetterheadTemplate
}

func defaultRenderOptions() RenderOptions {
	return RenderOptions{
		letterhead: letterhead.BuiltinSimple(),
	}
}

// clone creates a copy of RenderOptions. The letterhead template is shared,
// not deep-copied; callers mutate templates through the letterhead package.
func (o RenderOptions) clone() RenderOptions {
	return o
}

func (o RenderOptions) renderOpts(withRedhead bool) render.Options {
	return render.Options{
		UnitName:          o.unitName,
		IncludeLetterhead: withRedhead && o.letterhead != nil,
	}
}
