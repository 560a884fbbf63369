package classify

import "testing"

func TestIsSuffixMarker(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"主持：金刚善", true},
		{"主 持：金刚善", true},
		{"主持人：金刚善", true},
		{"参加：张三、李四", true},
		{"参会人员：全体干部", true},
		{"列席：王五", true},
		{"出席人员：见附名单", true},
		{"记录人：赵六", true},
		{"记 录 员: 赵六", true},
		{"发送：各区县", true},
		{"主送：市政府办公室", true},
		{"抄送：市委办公室", true},
		{"会议主持情况说明", false},
		{"主持工作的同志", false}, // no colon
		{"正文内容。", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSuffixMarker(tt.text); got != tt.want {
			t.Errorf("IsSuffixMarker(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestSplitSuffixMarker(t *testing.T) {
	tests := []struct {
		text       string
		wantMarker string
		wantRest   string
		wantOK     bool
	}{
		{"主 持：金刚善", "主 持：", "金刚善", true},
		{"记录人:赵六", "记录人:", "赵六", true},
		{"抄送：市委办、市人大办", "抄送：", "市委办、市人大办", true},
		{"主持：", "主持：", "", true},
		{"普通正文。", "", "普通正文。", false},
	}

	for _, tt := range tests {
		marker, rest, ok := SplitSuffixMarker(tt.text)
		if marker != tt.wantMarker || rest != tt.wantRest || ok != tt.wantOK {
			t.Errorf("SplitSuffixMarker(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.text, marker, rest, ok, tt.wantMarker, tt.wantRest, tt.wantOK)
		}
	}
}

func TestIsSignerLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"签发人：李明", true},
		{"签 发 人:李明", true},
		{"签发时间：2024-01-05", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSignerLine(tt.text); got != tt.want {
			t.Errorf("IsSignerLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsDistributionLine(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"发送：各镇人民政府", true},
		{"发至：县级以上单位", true},
		{"发文：机关各部门", true},
		{"抄送：市委办公室", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDistributionLine(tt.text); got != tt.want {
			t.Errorf("IsDistributionLine(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestLooksLikeSentence(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"现将有关事项通知如下。", true},
		{"短句。", false}, // under 10 runes
		{"为深入贯彻落实上级部署要求，结合我市实际", true},
		{"各区县人民政府、市直各有关部门注意落实：", true},
		{"标题形式的一行", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := LooksLikeSentence(tt.text); got != tt.want {
			t.Errorf("LooksLikeSentence(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
