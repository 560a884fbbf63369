package model

import "testing"

func TestStyleAttrsMerge(t *testing.T) {
	base := StyleAttrs{
		FontFamily:    String("仿宋_GB2312"),
		FontSizePt:    Float64(16),
		LineSpacingPt: Float64(28),
	}
	override := StyleAttrs{
		FontFamily: String("黑体"),
		Bold:       Bool(true),
	}

	merged := base.Merge(override)
	if *merged.FontFamily != "黑体" {
		t.Errorf("FontFamily = %s, want 黑体", *merged.FontFamily)
	}
	if *merged.FontSizePt != 16 {
		t.Errorf("FontSizePt = %v, want preserved 16", *merged.FontSizePt)
	}
	if merged.Bold == nil || !*merged.Bold {
		t.Error("Bold override not applied")
	}
	if *merged.LineSpacingPt != 28 {
		t.Error("LineSpacingPt not preserved")
	}

	// result shares no pointers with either input
	*merged.FontFamily = "宋体"
	if *base.FontFamily != "仿宋_GB2312" || *override.FontFamily != "黑体" {
		t.Error("Merge result shares pointers with inputs")
	}
}

func TestStyleAttrsIndentExclusive(t *testing.T) {
	var a StyleAttrs
	a.SetFirstLineIndentPt(32)
	if a.FirstLineIndentChars != nil {
		t.Error("pt setter did not clear chars")
	}
	a.SetFirstLineIndentChars(2)
	if a.FirstLineIndentPt != nil {
		t.Error("chars setter did not clear pt")
	}

	base := StyleAttrs{}
	base.SetFirstLineIndentChars(2)
	var override StyleAttrs
	override.SetFirstLineIndentPt(32)
	merged := base.Merge(override)
	if merged.FirstLineIndentChars != nil {
		t.Error("merge kept both indent forms")
	}
	if merged.FirstLineIndentPt == nil || *merged.FirstLineIndentPt != 32 {
		t.Error("merge lost the pt indent")
	}
}

func TestStyleAttrsIsZero(t *testing.T) {
	if !(StyleAttrs{}).IsZero() {
		t.Error("empty bag reported as non-zero")
	}
	if (StyleAttrs{Bold: Bool(false)}).IsZero() {
		t.Error("bag with explicit bold reported as zero")
	}
	if (StyleAttrs{DividerRed: true}).IsZero() {
		t.Error("divider bag reported as zero")
	}
}

func TestNormalizeColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#d40000", "#D40000"},
		{"D40000", "#D40000"},
		{" #d40000 ", "#D40000"},
		{"#FFF", ""},
		{"red", ""},
		{"#GG0000", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeColorHex(tt.in); got != tt.want {
			t.Errorf("NormalizeColorHex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{28.000001, 28},
		{15.8049, 15.8},
		{15.806, 15.81},
		{-2.404, -2.4},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
