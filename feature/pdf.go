package feature

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/leew00726/publicText/model"
)

// ErrNoTextContent reports a PDF with no extractable text at all, typically a
// scan. The caller should direct the user to OCR the file or supply a native
// document instead.
var ErrNoTextContent = errors.New("no text content found in PDF")

// ExtractPDF samples body typography from a PDF: every text fragment in the
// page content streams becomes one body-style sample keyed by its normalized
// font. Heading detection and page geometry are not attempted for PDF.
func ExtractPDF(data []byte, cfg Config) (*model.Features, error) {
	cfg.defaults()

	conf := pdfmodel.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	var samples []model.StyleAttrs
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		fonts := pageFontNames(ctx, pageNr)
		samples = append(samples, pageTextSamples(ctx, pageNr, fonts)...)
	}
	cfg.Logger.Debug("pdf sample scanned", "pages", ctx.PageCount, "fragments", len(samples))

	if len(samples) == 0 {
		return nil, ErrNoTextContent
	}

	return &model.Features{
		Body:     modeAttrs(samples),
		Headings: map[int]model.StyleAttrs{},
	}, nil
}

// pageFontNames maps content-stream font resource names (e.g. "F1") to their
// normalized /BaseFont family for one page.
func pageFontNames(ctx *pdfmodel.Context, pageNr int) map[string]string {
	out := map[string]string{}

	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil || pageDict == nil {
		return out
	}
	resObj, found := pageDict.Find("Resources")
	if !found {
		return out
	}
	resDict, err := ctx.DereferenceDict(resObj)
	if err != nil || resDict == nil {
		return out
	}
	fontObj, found := resDict.Find("Font")
	if !found {
		return out
	}
	fontDict, err := ctx.DereferenceDict(fontObj)
	if err != nil || fontDict == nil {
		return out
	}

	for name, ref := range fontDict {
		fd, err := ctx.DereferenceDict(ref)
		if err != nil || fd == nil {
			continue
		}
		if base := fd.NameEntry("BaseFont"); base != nil {
			out[name] = normalizeBaseFont(*base)
		}
	}
	return out
}

// subset-tagged fonts look like "ABCDEF+SimSun".
var subsetPrefixRE = regexp.MustCompile(`^[A-Z]{6}\+`)

func normalizeBaseFont(base string) string {
	base = subsetPrefixRE.ReplaceAllString(base, "")
	// Strip style suffixes like "SimSun,Bold".
	if i := strings.IndexAny(base, ",-"); i > 0 {
		base = base[:i]
	}
	return base
}

var (
	tfRE        = regexp.MustCompile(`/(\S+)\s+([0-9.]+)\s+Tf\b`)
	pdfStringRE = regexp.MustCompile(`\(((?:[^()\\]|\\.)*)\)`)
)

// pageTextSamples walks one page's content stream, tracking the current font
// and size through Tf operators, and emits one style sample per shown text
// fragment (Tj/TJ/').
func pageTextSamples(ctx *pdfmodel.Context, pageNr int, fonts map[string]string) []model.StyleAttrs {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return nil
	}
	stream, err := io.ReadAll(r)
	if err != nil || len(stream) == 0 {
		return nil
	}

	var samples []model.StyleAttrs
	var curFont string
	var curSize float64

	for _, line := range bytes.Split(stream, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if m := tfRE.FindSubmatch(line); m != nil {
			curFont = fonts[string(m[1])]
			if size, err := strconv.ParseFloat(string(m[2]), 64); err == nil {
				curSize = model.Round2(size)
			}
		}

		if !showsText(line) {
			continue
		}
		for _, m := range pdfStringRE.FindAllSubmatch(line, -1) {
			if len(bytes.TrimSpace(m[1])) == 0 {
				continue
			}
			var attrs model.StyleAttrs
			if curFont != "" {
				attrs.FontFamily = model.String(curFont)
			}
			if curSize > 0 {
				attrs.FontSizePt = model.Float64(curSize)
			}
			samples = append(samples, attrs)
		}
	}
	return samples
}

func showsText(line []byte) bool {
	return bytes.HasSuffix(line, []byte("Tj")) ||
		bytes.HasSuffix(line, []byte("TJ")) ||
		(bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")))
}
