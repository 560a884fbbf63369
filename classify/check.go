package classify

import (
	"fmt"
	"strings"

	"github.com/leew00726/publicText/model"
)

// IssueLevel separates blocking problems from advisories.
type IssueLevel string

const (
	IssueError   IssueLevel = "error"
	IssueWarning IssueLevel = "warning"
)

// Issue is one convention violation found in a document body.
type Issue struct {
	Code    string
	Message string
	Path    string
	Level   IssueLevel
}

// punctuationEnd is the sentence-terminal punctuation set for heading checks.
const punctuationEnd = "。！？；："

// CheckDocument walks a document body and reports house-style convention
// issues: heading level range, numbering continuity, heading end punctuation
// (none on H1, required on H3/H4) and body first-line indent.
func CheckDocument(doc *model.Document) []Issue {
	var issues []Issue
	counters := map[int]int{1: 0, 2: 0, 3: 0, 4: 0}

	for idx, node := range doc.Children {
		path := fmt.Sprintf("body.content[%d]", idx)

		switch n := node.(type) {
		case *model.Heading:
			if n.Level < 1 || n.Level > 4 {
				issues = append(issues, Issue{
					Code:    "B_LEVEL_RANGE",
					Message: "标题层级必须在 H1-H4 范围内。",
					Path:    path,
					Level:   IssueError,
				})
				continue
			}

			text := strings.TrimSpace(n.Text())
			if text == "" {
				continue
			}

			for deeper := n.Level + 1; deeper <= 4; deeper++ {
				counters[deeper] = 0
			}
			counters[n.Level]++

			marker, rest := HeadingMarker(n.Level, text)
			expected := ExpectedMarker(n.Level, counters[n.Level])
			if marker != "" && marker != expected {
				issues = append(issues, Issue{
					Code:    "B_NUMBERING",
					Message: fmt.Sprintf("编号疑似异常，当前 %s，期望 %s", marker, expected),
					Path:    path,
					Level:   IssueWarning,
				})
			}

			tail := text
			if marker != "" {
				tail = rest
			}
			if tail != "" {
				endsPunc := strings.ContainsRune(punctuationEnd, lastRune(tail))
				if n.Level == 1 && endsPunc {
					issues = append(issues, Issue{
						Code:    "B_PUNC_H1",
						Message: "H1 句末不应有标点。",
						Path:    path,
						Level:   IssueError,
					})
				}
				if (n.Level == 3 || n.Level == 4) && !endsPunc {
					issues = append(issues, Issue{
						Code:    fmt.Sprintf("B_PUNC_H%d", n.Level),
						Message: fmt.Sprintf("H%d 句末必须有标点。", n.Level),
						Path:    path,
						Level:   IssueError,
					})
				}
			}

		case *model.Paragraph:
			if v := n.Attrs.FirstLineIndentChars; v != nil && *v != 2 {
				issues = append(issues, Issue{
					Code:    "A_INDENT",
					Message: "正文首行应缩进2字。",
					Path:    path,
					Level:   IssueWarning,
				})
			}

		case *model.Table:
			// no table-level conventions

		default:
			issues = append(issues, Issue{
				Code:    "A_NODE_TYPE",
				Message: fmt.Sprintf("不支持的节点类型: %s", node.Kind()),
				Path:    path,
				Level:   IssueWarning,
			})
		}
	}

	return issues
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// DocType is a coarse official-document genre.
type DocType string

const (
	DocQingshi DocType = "qingshi" // 请示
	DocJiyao   DocType = "jiyao"   // 纪要
	DocHan     DocType = "han"     // 函
	DocTongzhi DocType = "tongzhi" // 通知
)

// InferDocType picks a genre from a topic name, honoring an explicit caller
// preference when it is one of the known genres.
func InferDocType(topicName string, preferred DocType) DocType {
	switch preferred {
	case DocQingshi, DocJiyao, DocHan, DocTongzhi:
		return preferred
	}
	switch {
	case strings.Contains(topicName, "请示"):
		return DocQingshi
	case strings.Contains(topicName, "纪要"):
		return DocJiyao
	case strings.Contains(topicName, "函"):
		return DocHan
	default:
		return DocTongzhi
	}
}
