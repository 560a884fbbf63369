// Package publictext provides a high-level API for working with Chinese
// official "red-head" documents: importing DOCX bodies, sampling style
// features from reference files, aggregating them into per-topic style
// rules, and rendering finished documents back to DOCX.
//
// Basic usage:
//
//	doc, fields, report, err := publictext.Import(data)
//	if err != nil {
//	    // handle error
//	}
//	for _, w := range report.NumberingWarnings {
//	    log.Println("warning:", w)
//	}
//
// Sampling and aggregation:
//
//	features, err := publictext.Analyze(sample).Filename("样例.pdf").Features()
//	rules, confidence, err := publictext.Aggregate(samples)
//
// Rendering:
//
//	out, err := publictext.Render(doc, fields).
//	    UnitName("华州市人民政府").
//	    Letterhead(letterhead.BuiltinCommon()).
//	    Bytes()
//
// The lower-level docx, feature, infer, letterhead and render packages are
// also available for finer control.
package publictext

import (
	"errors"

	"github.com/leew00726/publicText/docx"
	"github.com/leew00726/publicText/feature"
	"github.com/leew00726/publicText/format"
	"github.com/leew00726/publicText/infer"
	"github.com/leew00726/publicText/letterhead"
	"github.com/leew00726/publicText/model"
	"github.com/leew00726/publicText/render"
)

// ErrUnknownFormat is returned by Analyze when the input is neither a DOCX
// nor a PDF file.
var ErrUnknownFormat = errors.New("input is neither DOCX nor PDF")

// Import parses a DOCX upload into a document tree plus structured fields.
// The returned report carries numbering and table warnings; it is non-nil
// whenever err is nil.
func Import(data []byte) (*model.Document, model.Fields, *docx.ImportReport, error) {
	return docx.Import(data)
}

// Analyzer samples style features from one reference file, configured
// fluently before calling Features.
type Analyzer struct {
	data    []byte
	options AnalyzeOptions
}

// Analyze prepares a style-sampling pass over one reference file. The format
// is sniffed from the content, falling back to the Filename hint.
//
// Example:
//
//	features, err := publictext.Analyze(data).Features()
func Analyze(data []byte) *Analyzer {
	return &Analyzer{data: data, options: defaultAnalyzeOptions()}
}

// Filename supplies the original filename as a format hint.
func (a *Analyzer) Filename(name string) *Analyzer {
	opts := a.options.clone()
	opts.filename = name
	return &Analyzer{data: a.data, options: opts}
}

// Config overrides the feature-extraction thresholds.
func (a *Analyzer) Config(cfg feature.Config) *Analyzer {
	opts := a.options.clone()
	opts.config = cfg
	return &Analyzer{data: a.data, options: opts}
}

// Features runs the extraction and returns the per-sample style summary.
func (a *Analyzer) Features() (*model.Features, error) {
	f := format.DetectBytes(a.data)
	if f == format.Unknown {
		f = format.Detect(a.options.filename)
	}
	switch f {
	case format.DOCX:
		return feature.ExtractDocx(a.data, a.options.config)
	case format.PDF:
		return feature.ExtractPDF(a.data, a.options.config)
	default:
		return nil, ErrUnknownFormat
	}
}

// Aggregate folds per-sample feature summaries into a style rule set with a
// per-field confidence report.
func Aggregate(samples []*model.Features) (*model.StyleRules, model.ConfidenceReport, error) {
	return infer.Aggregate(samples)
}

// Revise applies a revision round to an existing rule set: an AI-proposed
// patch, a natural-language instruction, and explicit field edits, in
// ascending precedence. The input rules are not modified.
func Revise(prev *model.StyleRules, instruction string, explicit, ai map[string]any) (*model.StyleRules, error) {
	return infer.Revise(prev, instruction, explicit, ai)
}

// BuildTopicBody scaffolds a starter document body from a topic's rules,
// cloning the content template around an editable body placeholder.
func BuildTopicBody(rules *model.StyleRules) *model.Document {
	return infer.BuildTopicBody(rules)
}

// ValidateLetterhead checks a letterhead template against the top safe-zone
// geometry. Errors block saving; warnings are advisory.
func ValidateLetterhead(tpl *model.LetterheadTemplate) (errs, warnings []string) {
	return letterhead.Validate(tpl)
}

// Renderer renders a document to DOCX bytes, configured fluently before
// calling Bytes.
type Renderer struct {
	doc     *model.Document
	fields  model.Fields
	options RenderOptions
}

// Render prepares a DOCX export of the document and its structured fields.
// The default letterhead is the builtin simple template; whether it is
// rendered follows fields.ExportWithRedhead.
//
// Example:
//
//	out, err := publictext.Render(doc, fields).UnitName("华州市人民政府").Bytes()
func Render(doc *model.Document, fields model.Fields) *Renderer {
	return &Renderer{doc: doc, fields: fields, options: defaultRenderOptions()}
}

// UnitName sets the issuing unit rendered by the letterhead.
func (r *Renderer) UnitName(name string) *Renderer {
	opts := r.options.clone()
	opts.unitName = name
	return &Renderer{doc: r.doc, fields: r.fields, options: opts}
}

// Letterhead selects the letterhead template. A nil template disables the
// first-page header entirely.
func (r *Renderer) Letterhead(tpl *model.LetterheadTemplate) *Renderer {
	opts := r.options.clone()
	opts.letterhead = tpl
	return &Renderer{doc: r.doc, fields: r.fields, options: opts}
}

// Bytes renders and returns the DOCX archive.
func (r *Renderer) Bytes() ([]byte, error) {
	return render.Docx(r.doc, r.fields, r.options.letterhead,
		r.options.renderOpts(r.fields.ExportWithRedhead))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	out := publictext.Must(publictext.Render(doc, fields).Bytes())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
