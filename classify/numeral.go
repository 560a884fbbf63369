package classify

import (
	"strconv"
	"strings"
)

var zhDigits = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

var zhByValue = map[int]string{
	1: "一", 2: "二", 3: "三", 4: "四", 5: "五",
	6: "六", 7: "七", 8: "八", 9: "九", 10: "十",
}

// ZhToInt converts a Chinese numeral in the 1..99 range ("一", "十", "十二",
// "二十一") to its integer value; 0 means unparsable.
func ZhToInt(zh string) int {
	if zh == "" {
		return 0
	}
	if zh == "十" {
		return 10
	}
	if strings.HasPrefix(zh, "十") {
		return 10 + zhDigits[strings.TrimPrefix(zh, "十")]
	}
	if strings.Contains(zh, "十") {
		left, right, _ := strings.Cut(zh, "十")
		return zhDigits[left]*10 + zhDigits[right]
	}
	return zhDigits[zh]
}

// IntToZh converts 1..99 to its Chinese numeral form.
func IntToZh(n int) string {
	if s, ok := zhByValue[n]; ok {
		return s
	}
	if n < 20 {
		return "十" + zhByValue[n-10]
	}
	tens, rem := n/10, n%10
	out := zhByValue[tens] + "十"
	if rem > 0 {
		out += zhByValue[rem]
	}
	return out
}

// HeadingNumber parses the ordinal carried by a heading's numbering marker:
// Chinese numerals for levels 1 and 2, Arabic for levels 3 and 4.
// ok is false when text does not start with the level's marker.
func HeadingNumber(level int, text string) (n int, ok bool) {
	marker, _ := HeadingMarker(level, text)
	if marker == "" {
		return 0, false
	}
	trimmed := strings.NewReplacer("、", "", "（", "", "）", "", ".", "").Replace(marker)
	switch level {
	case 1, 2:
		if v := ZhToInt(trimmed); v > 0 {
			return v, true
		}
		return 0, false
	default:
		v, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

// ExpectedMarker renders the marker a heading at the given level should carry
// for ordinal n ("三、", "（三）", "3.", "（3）").
func ExpectedMarker(level, n int) string {
	switch level {
	case 1:
		return IntToZh(n) + "、"
	case 2:
		return "（" + IntToZh(n) + "）"
	case 3:
		return strconv.Itoa(n) + "."
	default:
		return "（" + strconv.Itoa(n) + "）"
	}
}
