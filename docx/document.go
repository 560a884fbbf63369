package docx

import (
	"encoding/xml"
	"io"
)

// XML mappings for the WordprocessingML subset the importer needs. Only the
// elements that feed heading detection, style sampling and table capture are
// modeled; everything else is skipped by the decoder.

// documentXML represents word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML preserves the order of paragraphs and tables, which xml.Unmarshal
// would otherwise collect into separate slices.
type bodyXML struct {
	Elements []bodyElement
	SectPr   *sectPrXML
}

type bodyElement struct {
	Paragraph *paragraphXML
	Table     *tableXML
}

func (b *bodyXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var p paragraphXML
				if err := d.DecodeElement(&p, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Paragraph: &p})
			case "tbl":
				var tbl tableXML
				if err := d.DecodeElement(&tbl, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, bodyElement{Table: &tbl})
			case "sectPr":
				var sect sectPrXML
				if err := d.DecodeElement(&sect, &t); err != nil {
					return err
				}
				b.SectPr = &sect
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
}

// paragraphXML represents <w:p>.
type paragraphXML struct {
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

type paragraphPropsXML struct {
	Style         styleRefXML `xml:"pStyle"`
	Justification valXML      `xml:"jc"`
	Spacing       spacingXML  `xml:"spacing"`
	Indent        indentXML   `xml:"ind"`
	RunProps      runPropsXML `xml:"rPr"`
}

type styleRefXML struct {
	Val string `xml:"val,attr"`
}

type valXML struct {
	Val string `xml:"val,attr"`
}

// spacingXML carries twip-valued paragraph spacing. Line is in twips under
// lineRule exact/atLeast and 240ths of a line under auto.
type spacingXML struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

type indentXML struct {
	FirstLine      string `xml:"firstLine,attr"`
	FirstLineChars string `xml:"firstLineChars,attr"`
	Hanging        string `xml:"hanging,attr"`
}

// runXML represents <w:r>.
type runXML struct {
	Properties runPropsXML `xml:"rPr"`
	Text       []textXML   `xml:"t"`
	Tabs       []tabXML    `xml:"tab"`
	Breaks     []breakXML  `xml:"br"`
}

type runPropsXML struct {
	Bold     *boolValXML `xml:"b"`
	FontSize valXML      `xml:"sz"`
	Font     fontXML     `xml:"rFonts"`
	Color    valXML      `xml:"color"`
}

// boolValXML handles OOXML toggle properties: present with no val means true.
type boolValXML struct {
	Val string `xml:"val,attr"`
}

func (b *boolValXML) isSet() bool {
	if b == nil {
		return false
	}
	return b.Val != "false" && b.Val != "0"
}

type fontXML struct {
	ASCII    string `xml:"ascii,attr"`
	HAnsi    string `xml:"hAnsi,attr"`
	EastAsia string `xml:"eastAsia,attr"`
}

// preferred returns the east-asian face when present, since house fonts are
// declared there.
func (f fontXML) preferred() string {
	if f.EastAsia != "" {
		return f.EastAsia
	}
	if f.ASCII != "" {
		return f.ASCII
	}
	return f.HAnsi
}

type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

type tabXML struct{}

type breakXML struct {
	Type string `xml:"type,attr"`
}

type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// tableXML represents <w:tbl>.
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// sectPrXML carries the section's page geometry.
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"pgSz"`
	PgMar pgMarXML `xml:"pgMar"`
}

type pgSzXML struct {
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
}

// stylesXML represents word/styles.xml, reduced to what style resolution
// needs: names for heading classification and run defaults for font fallback.
type stylesXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

type styleXML struct {
	Type     string      `xml:"type,attr"`
	StyleID  string      `xml:"styleId,attr"`
	Name     valXML      `xml:"name"`
	RunProps runPropsXML `xml:"rPr"`
}
