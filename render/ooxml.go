package render

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

// Write-side WordprocessingML types. Element names carry the literal "w:"
// prefix and the namespace is declared once on each part root, so the
// encoder's output matches what Word expects without post-processing.

const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NSW     string   `xml:"xmlns:w,attr"`
	NSR     string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Blocks []wBlock
	SectPr wSectPr `xml:"w:sectPr"`
}

// wBlock is one body-level element; concrete types carry their own XMLName.
type wBlock interface {
	block()
}

type wParagraph struct {
	XMLName xml.Name    `xml:"w:p"`
	Props   *wParaProps `xml:"w:pPr,omitempty"`
	Runs    []wRun
}

func (wParagraph) block() {}

type wParaProps struct {
	Borders *wParaBorders `xml:"w:pBdr,omitempty"`
	Tabs    *wTabs        `xml:"w:tabs,omitempty"`
	Spacing *wSpacing     `xml:"w:spacing,omitempty"`
	Indent  *wIndent      `xml:"w:ind,omitempty"`
	Jc      *wVal         `xml:"w:jc,omitempty"`
}

type wParaBorders struct {
	Bottom wBorderEdge `xml:"w:bottom"`
}

type wBorderEdge struct {
	Val   string `xml:"w:val,attr"`
	Sz    string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

type wTabs struct {
	Stops []wTabStop `xml:"w:tab"`
}

type wTabStop struct {
	Val string `xml:"w:val,attr"`
	Pos string `xml:"w:pos,attr"`
}

type wSpacing struct {
	Before   string `xml:"w:before,attr,omitempty"`
	After    string `xml:"w:after,attr,omitempty"`
	Line     string `xml:"w:line,attr,omitempty"`
	LineRule string `xml:"w:lineRule,attr,omitempty"`
}

type wIndent struct {
	FirstLine      string `xml:"w:firstLine,attr,omitempty"`
	FirstLineChars string `xml:"w:firstLineChars,attr,omitempty"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wRun struct {
	XMLName xml.Name   `xml:"w:r"`
	Props   *wRunProps `xml:"w:rPr,omitempty"`
	Content []any
}

type wRunProps struct {
	Fonts *wFonts `xml:"w:rFonts,omitempty"`
	Bold  *wEmpty `xml:"w:b,omitempty"`
	Color *wVal   `xml:"w:color,omitempty"`
	Sz    *wVal   `xml:"w:sz,omitempty"`
	SzCs  *wVal   `xml:"w:szCs,omitempty"`
}

type wFonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HAnsi    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr"`
}

type wEmpty struct{}

type wText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type wBreak struct {
	XMLName xml.Name `xml:"w:br"`
	Type    string   `xml:"w:type,attr,omitempty"`
}

type wFldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type wInstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr"`
	Value   string   `xml:",chardata"`
}

type wTable struct {
	XMLName xml.Name  `xml:"w:tbl"`
	Props   wTblProps `xml:"w:tblPr"`
	Grid    wTblGrid  `xml:"w:tblGrid"`
	Rows    []wTableRow
}

func (wTable) block() {}

type wTblProps struct {
	Width   wTblWidth   `xml:"w:tblW"`
	Borders wTblBorders `xml:"w:tblBorders"`
}

type wTblWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wTblBorders struct {
	Top     wBorderEdge `xml:"w:top"`
	Left    wBorderEdge `xml:"w:left"`
	Bottom  wBorderEdge `xml:"w:bottom"`
	Right   wBorderEdge `xml:"w:right"`
	InsideH wBorderEdge `xml:"w:insideH"`
	InsideV wBorderEdge `xml:"w:insideV"`
}

type wTblGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W string `xml:"w:w,attr"`
}

type wTableRow struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []wTableCell
}

type wTableCell struct {
	XMLName    xml.Name   `xml:"w:tc"`
	Props      wTcProps   `xml:"w:tcPr"`
	Paragraphs []wParagraph
}

type wTcProps struct {
	Width wTblWidth `xml:"w:tcW"`
}

type wSectPr struct {
	HeaderRefs []wHdrFtrRef `xml:"w:headerReference,omitempty"`
	FooterRefs []wHdrFtrRef `xml:"w:footerReference,omitempty"`
	PgSz       wPgSz        `xml:"w:pgSz"`
	PgMar      wPgMar       `xml:"w:pgMar"`
	TitlePg    *wEmpty      `xml:"w:titlePg,omitempty"`
}

type wHdrFtrRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type wPgSz struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type wPgMar struct {
	Top    string `xml:"w:top,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Right  string `xml:"w:right,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
}

type wHeader struct {
	XMLName    xml.Name `xml:"w:hdr"`
	NSW        string   `xml:"xmlns:w,attr"`
	NSR        string   `xml:"xmlns:r,attr"`
	Paragraphs []wParagraph
}

type wFooter struct {
	XMLName    xml.Name `xml:"w:ftr"`
	NSW        string   `xml:"xmlns:w,attr"`
	NSR        string   `xml:"xmlns:r,attr"`
	Paragraphs []wParagraph
}

// MarshalXML keeps body blocks in document order; a plain struct slice field
// cannot mix paragraph and table types.
func (b wBody) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:body"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, block := range b.Blocks {
		if err := e.Encode(block); err != nil {
			return err
		}
	}
	if err := e.EncodeElement(b.SectPr, xml.StartElement{Name: xml.Name{Local: "w:sectPr"}}); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func textRun(props *wRunProps, text string) wRun {
	t := wText{Value: text}
	if text != strings.TrimSpace(text) {
		t.Space = "preserve"
	}
	return wRun{Props: props, Content: []any{t}}
}

func runProps(family string, sizePt float64, bold bool, colorHex string) *wRunProps {
	props := &wRunProps{}
	if family != "" {
		props.Fonts = &wFonts{ASCII: family, HAnsi: family, EastAsia: family}
	}
	if bold {
		props.Bold = &wEmpty{}
	}
	if colorHex != "" {
		hex := strings.ToUpper(strings.TrimPrefix(colorHex, "#"))
		if len(hex) == 6 {
			props.Color = &wVal{Val: hex}
		}
	}
	if sizePt > 0 {
		half := halfPoints(sizePt)
		props.Sz = &wVal{Val: half}
		props.SzCs = &wVal{Val: half}
	}
	return props
}

func halfPoints(pt float64) string {
	return fmt.Sprintf("%d", int(math.Round(pt*2)))
}

func ptToTwips(pt float64) string {
	return fmt.Sprintf("%d", int(math.Round(pt*20)))
}

func cmToTwips(cm float64) string {
	return fmt.Sprintf("%d", int(math.Round(cm/2.54*72*20)))
}

func singleBorder(color string, szEighthPt int) wBorderEdge {
	return wBorderEdge{Val: "single", Sz: fmt.Sprintf("%d", szEighthPt), Space: "1", Color: strings.TrimPrefix(color, "#")}
}

func redBottomBorder() *wParaBorders {
	return &wParaBorders{Bottom: singleBorder("D40000", 12)}
}

func pageField() wRun {
	return wRun{Content: []any{
		wFldChar{Type: "begin"},
		wInstrText{Space: "preserve", Value: "PAGE"},
		wFldChar{Type: "end"},
	}}
}

func pageBreakParagraph() wParagraph {
	return wParagraph{Runs: []wRun{{Content: []any{wBreak{Type: "page"}}}}}
}
