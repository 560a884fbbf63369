package classify

import "testing"

func TestCanonicalFont(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"仿宋", "仿宋_GB2312"},
		{"仿宋_GB2312", "仿宋_GB2312"},
		{"楷体", "楷体_GB2312"},
		{"小标宋", "方正小标宋简"},
		{"方正小标宋", "方正小标宋简"},
		{"黑体", "黑体"},
		{"Times New Roman", "Times New Roman"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalFont(tt.in); got != tt.want {
			t.Errorf("CanonicalFont(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractFontName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"正文字体改为仿宋", "仿宋_GB2312"},
		{"一级标题使用黑体", "黑体"},
		{"标题设为小标宋", "方正小标宋简"},
		{"字体调整为宋体", "宋体"},
		{"行距保持不变", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractFontName(tt.text); got != tt.want {
			t.Errorf("ExtractFontName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestFontTargets(t *testing.T) {
	tests := []struct {
		text string
		want map[string]bool
	}{
		{
			"正文字体改为仿宋",
			map[string]bool{"body": true},
		},
		{
			"一级标题使用黑体",
			map[string]bool{"level1": true},
		},
		{
			"二级标题和三级标题用楷体",
			map[string]bool{"level2": true, "level3": true},
		},
		{
			"标题改为黑体",
			map[string]bool{"level1": true, "level2": true, "level3": true, "level4": true},
		},
		{
			"全文使用仿宋",
			map[string]bool{"body": true, "level1": true, "level2": true, "level3": true, "level4": true},
		},
		{
			"行距调为28磅",
			map[string]bool{},
		},
	}

	for _, tt := range tests {
		got := FontTargets(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("FontTargets(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for key := range tt.want {
			if !got[key] {
				t.Errorf("FontTargets(%q) missing %s", tt.text, key)
			}
		}
	}
}
