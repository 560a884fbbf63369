package classify

import "testing"

func TestHeadingLevelByMarker(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"一、总体要求", 1},
		{"十二、其他事项", 1},
		{"（一）提高认识", 2},
		{"（十）强化保障", 2},
		{"1.落实责任。", 3},
		{"12.加强督导。", 3},
		{"（1）建立台账。", 4},
		{"（12）定期通报。", 4},
		{"总体要求", 0},
		{"1、顿号不是三级标记", 0},
		{"(一)半角括号不算", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := HeadingLevelByMarker(tt.text); got != tt.want {
			t.Errorf("HeadingLevelByMarker(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestHeadingLevelByFont(t *testing.T) {
	tests := []struct {
		font string
		text string
		want int
	}{
		{"黑体", "总体要求", 1},
		{"楷体_GB2312", "提高政治站位", 2},
		{"仿宋_GB2312", "工作目标与重点任务", 3},
		{"仿宋_GB2312", "这是一段以句号结尾的普通正文内容。", 0},
		{"仿宋_GB2312", "短", 0},
		{"宋体", "总体要求", 0},
		{"", "总体要求", 0},
	}

	for _, tt := range tests {
		if got := HeadingLevelByFont(tt.font, tt.text); got != tt.want {
			t.Errorf("HeadingLevelByFont(%q, %q) = %d, want %d", tt.font, tt.text, got, tt.want)
		}
	}
}

func TestHeadingMarker(t *testing.T) {
	tests := []struct {
		level      int
		text       string
		wantMarker string
		wantRest   string
	}{
		{1, "三、保障措施", "三、", "保障措施"},
		{2, "（二）压实责任", "（二）", "压实责任"},
		{3, "2.细化分工。", "2.", "细化分工。"},
		{4, "（3）限期整改。", "（3）", "限期整改。"},
		{1, "保障措施", "", "保障措施"},
		{2, "三、层级不符", "", "三、层级不符"},
		{0, "三、越界层级", "", "三、越界层级"},
		{5, "三、越界层级", "", "三、越界层级"},
	}

	for _, tt := range tests {
		marker, rest := HeadingMarker(tt.level, tt.text)
		if marker != tt.wantMarker || rest != tt.wantRest {
			t.Errorf("HeadingMarker(%d, %q) = (%q, %q), want (%q, %q)",
				tt.level, tt.text, marker, rest, tt.wantMarker, tt.wantRest)
		}
	}
}

func TestHeadingStyleLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading 1", 1},
		{"heading 2", 2},
		{"Heading3", 3},
		{"标题 4", 4},
		{"标题2", 2},
		{"Heading 5", 0},
		{"Normal", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := HeadingStyleLevel(tt.style); got != tt.want {
			t.Errorf("HeadingStyleLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}

func TestLooksLikeTitle(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"总体要求", true},
		{"关于进一步加强城市管理工作的实施意见", true},
		{"短补", false}, // under 4 runes
		{"这是一段完整的句子所以带了句号。", false},
		{"这个标题实在太长太长太长太长太长太长太长太长太长太长了", false},
	}

	for _, tt := range tests {
		if got := LooksLikeTitle(tt.text); got != tt.want {
			t.Errorf("LooksLikeTitle(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
