// Package format detects the upload formats the document engine accepts:
// DOCX for import and style sampling, PDF for style sampling only.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported upload format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// DetectBytes inspects the content to determine the format. It is more
// reliable than extension-based detection: a ZIP archive only counts as DOCX
// when it actually carries a word/ part, so XLSX and PPTX uploads are
// rejected rather than misread.
func DetectBytes(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// ZIP magic: PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return detectZIPFormat(data)
	}

	return Unknown
}

func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return DOCX
		}
	}
	return Unknown
}
