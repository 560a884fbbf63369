package model

import (
	"fmt"
	"strings"
)

// NodeKind identifies the concrete type of a document node.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindDocument
	KindHeading
	KindParagraph
	KindTable
	KindTableRow
	KindTableCell
	KindText
)

func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "doc"
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindTableRow:
		return "tableRow"
	case KindTableCell:
		return "tableCell"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is the interface implemented by every member of the document tree.
type Node interface {
	Kind() NodeKind
	// Text returns the concatenated plain text beneath the node.
	Text() string
}

// Document is the root node of a document body.
type Document struct {
	Children []Node
}

// Heading is a numbered or font-classified heading, level 1..4.
type Heading struct {
	Level int
	Attrs StyleAttrs
	Runs  []TextRun
}

// Paragraph is a body paragraph. A paragraph whose Attrs carry DividerRed
// renders as a red horizontal rule and its runs are ignored.
type Paragraph struct {
	Attrs StyleAttrs
	Runs  []TextRun
}

// Table is a grid of rows; rows may be ragged.
type Table struct {
	Rows []TableRow
}

// TableRow is one row of a table.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds nested content, usually paragraphs.
type TableCell struct {
	Children []Node
}

// TextRun is a leaf span of text.
type TextRun struct {
	Value string
}

func (d *Document) Kind() NodeKind { return KindDocument }
func (h *Heading) Kind() NodeKind  { return KindHeading }
func (p *Paragraph) Kind() NodeKind {
	return KindParagraph
}
func (t *Table) Kind() NodeKind    { return KindTable }
func (r *TableRow) Kind() NodeKind { return KindTableRow }
func (c *TableCell) Kind() NodeKind {
	return KindTableCell
}
func (t *TextRun) Kind() NodeKind { return KindText }

func (d *Document) Text() string {
	return joinText(d.Children, "\n")
}

func (h *Heading) Text() string { return runText(h.Runs) }

func (p *Paragraph) Text() string { return runText(p.Runs) }

func (t *Table) Text() string {
	var parts []string
	for i := range t.Rows {
		parts = append(parts, t.Rows[i].Text())
	}
	return strings.Join(parts, "\n")
}

func (r *TableRow) Text() string {
	var parts []string
	for i := range r.Cells {
		parts = append(parts, r.Cells[i].Text())
	}
	return strings.Join(parts, "\t")
}

func (c *TableCell) Text() string {
	return joinText(c.Children, "\n")
}

func (t *TextRun) Text() string { return t.Value }

func runText(runs []TextRun) string {
	var sb strings.Builder
	for i := range runs {
		sb.WriteString(runs[i].Value)
	}
	return sb.String()
}

func joinText(nodes []Node, sep string) string {
	var parts []string
	for _, n := range nodes {
		if t := n.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, sep)
}

// NewDocument creates a root node over the given children.
func NewDocument(children ...Node) *Document {
	return &Document{Children: children}
}

// NewHeading creates a heading node. It panics if level is outside 1..4;
// callers classifying untrusted input should use NewHeadingChecked.
func NewHeading(level int, text string) *Heading {
	h, err := NewHeadingChecked(level, text)
	if err != nil {
		panic(err)
	}
	return h
}

// NewHeadingChecked creates a heading node, validating the level invariant
// at construction rather than at render time.
func NewHeadingChecked(level int, text string) (*Heading, error) {
	if level < 1 || level > 4 {
		return nil, fmt.Errorf("heading level %d outside 1..4", level)
	}
	return &Heading{Level: level, Runs: []TextRun{{Value: text}}}, nil
}

// NewParagraph creates a paragraph node with one text run.
func NewParagraph(text string) *Paragraph {
	return &Paragraph{Runs: []TextRun{{Value: text}}}
}

// NewDivider creates an empty paragraph marked as a red horizontal rule.
func NewDivider() *Paragraph {
	p := &Paragraph{}
	p.Attrs.DividerRed = true
	return p
}

// NewTableCell creates a cell over the given children.
func NewTableCell(children ...Node) TableCell {
	return TableCell{Children: children}
}

// Clone returns a deep copy of the node tree rooted at n.
func Clone(n Node) Node {
	switch v := n.(type) {
	case *Document:
		return &Document{Children: cloneNodes(v.Children)}
	case *Heading:
		return &Heading{Level: v.Level, Attrs: v.Attrs.Clone(), Runs: append([]TextRun(nil), v.Runs...)}
	case *Paragraph:
		return &Paragraph{Attrs: v.Attrs.Clone(), Runs: append([]TextRun(nil), v.Runs...)}
	case *Table:
		rows := make([]TableRow, len(v.Rows))
		for i := range v.Rows {
			cells := make([]TableCell, len(v.Rows[i].Cells))
			for j := range v.Rows[i].Cells {
				cells[j] = TableCell{Children: cloneNodes(v.Rows[i].Cells[j].Children)}
			}
			rows[i] = TableRow{Cells: cells}
		}
		return &Table{Rows: rows}
	case *TableRow:
		cells := make([]TableCell, len(v.Cells))
		for i := range v.Cells {
			cells[i] = TableCell{Children: cloneNodes(v.Cells[i].Children)}
		}
		return &TableRow{Cells: cells}
	case *TableCell:
		return &TableCell{Children: cloneNodes(v.Children)}
	case *TextRun:
		c := *v
		return &c
	default:
		return nil
	}
}

// CloneNodes deep-copies a slice of nodes.
func CloneNodes(nodes []Node) []Node {
	return cloneNodes(nodes)
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if c := Clone(n); c != nil {
			out = append(out, c)
		}
	}
	return out
}
