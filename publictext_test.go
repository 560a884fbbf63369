package publictext

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/leew00726/publicText/letterhead"
	"github.com/leew00726/publicText/model"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"word/document.xml":   documentXML,
	}
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>一、总体要求</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:eastAsia="仿宋_GB2312"/><w:sz w:val="32"/></w:rPr><w:t>坚持稳中求进工作总基调，完整准确全面贯彻新发展理念。</w:t></w:r></w:p>
</w:body>
</w:document>`

func TestImportRenderRoundTrip(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	doc, fields, report, err := Import(data)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if report == nil {
		t.Fatal("Import returned nil report")
	}
	if len(doc.Children) != 2 {
		t.Fatalf("imported %d nodes, want 2", len(doc.Children))
	}

	fields.Title = "关于测试的通知"
	out, err := Render(doc, fields).
		UnitName("华州市人民政府").
		Letterhead(letterhead.BuiltinCommon()).
		Bytes()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("rendered output is not a zip: %v", err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	joined := strings.Join(names, " ")
	for _, want := range []string{"word/document.xml", "word/footer1.xml", "word/header1.xml"} {
		if !strings.Contains(joined, want) {
			t.Errorf("rendered archive missing %s (has %s)", want, joined)
		}
	}
}

func TestRenderWithoutRedhead(t *testing.T) {
	doc := model.NewDocument(model.NewParagraph("正文。"))
	out, err := Render(doc, model.Fields{ExportWithRedhead: false}).Bytes()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("rendered output is not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == "word/header1.xml" {
			t.Error("header rendered despite ExportWithRedhead=false")
		}
	}
}

func TestAnalyzeDispatch(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)
	features, err := Analyze(data).Features()
	if err != nil {
		t.Fatalf("Analyze(docx): %v", err)
	}
	if features == nil || features.Body.FontFamily == nil {
		t.Error("docx sample produced no body summary")
	}

	if _, err := Analyze([]byte("plain text")).Features(); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Analyze(text) error = %v, want ErrUnknownFormat", err)
	}
	if _, err := Analyze(nil).Filename("notes.txt").Features(); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Analyze with txt hint error = %v, want ErrUnknownFormat", err)
	}
}

func TestValidateLetterheadBuiltins(t *testing.T) {
	for _, tpl := range []*model.LetterheadTemplate{letterhead.BuiltinSimple(), letterhead.BuiltinCommon()} {
		errs, _ := ValidateLetterhead(tpl)
		if len(errs) != 0 {
			t.Errorf("builtin template %q has errors: %v", tpl.Name, errs)
		}
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
