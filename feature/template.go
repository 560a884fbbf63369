package feature

import (
	"github.com/leew00726/publicText/classify"
	"github.com/leew00726/publicText/model"
)

// extractTemplate locates the fixed leading and trailing blocks of a sample
// and returns them as a content template, plus the [from, to) node range that
// may contribute body-style evidence.
func extractTemplate(nodes []sampleNode, cfg Config) (*model.ContentTemplate, int, int) {
	bodyStart := findBodyStart(nodes)
	suffixStart := findSuffixStart(nodes, cfg.SuffixWindow)

	leadingEnd := 0
	switch {
	case bodyStart >= 0:
		leadingEnd = bodyStart
	case suffixStart > 0:
		// The real body may live in an unparsable container (e.g. a text
		// box); keep the prologue rather than losing it.
		leadingEnd = suffixStart
	}

	bodyTo := len(nodes)
	if suffixStart >= 0 {
		bodyTo = suffixStart
	}
	bodyFrom := leadingEnd
	if bodyFrom > bodyTo {
		bodyFrom = bodyTo
	}

	leading := materialize(nodes[:leadingEnd])
	var trailing []model.Node
	if suffixStart >= 0 {
		trailing = materialize(nodes[suffixStart:])
	}

	// Keep the entries closest to the body text.
	if len(leading) > cfg.BlockCap {
		leading = leading[len(leading)-cfg.BlockCap:]
	}
	if len(trailing) > cfg.BlockCap {
		trailing = trailing[len(trailing)-cfg.BlockCap:]
	}

	leading = ensureSignerDivider(leading)
	trailing = ensureDistributionDividers(trailing)

	if len(leading) == 0 && len(trailing) == 0 {
		return nil, bodyFrom, bodyTo
	}
	return &model.ContentTemplate{
		LeadingNodes:    leading,
		TrailingNodes:   trailing,
		BodyPlaceholder: cfg.BodyPlaceholder,
	}, bodyFrom, bodyTo
}

// findBodyStart returns the index of the first node that reads as real body
// content: a heading, or a sentence-shaped paragraph that is not itself a
// suffix marker. -1 when none qualifies.
func findBodyStart(nodes []sampleNode) int {
	for i, n := range nodes {
		if n.level > 0 {
			return i
		}
		if classify.LooksLikeSentence(n.text) && !classify.IsSuffixMarker(n.text) {
			return i
		}
	}
	return -1
}

// findSuffixStart scans only the last window nodes for the first role-marker
// paragraph (主持/参加/列席/…). -1 when none is found.
func findSuffixStart(nodes []sampleNode, window int) int {
	from := len(nodes) - window
	if from < 0 {
		from = 0
	}
	for i := from; i < len(nodes); i++ {
		if nodes[i].level == 0 && classify.IsSuffixMarker(nodes[i].text) {
			return i
		}
	}
	return -1
}

func materialize(nodes []sampleNode) []model.Node {
	var out []model.Node
	for _, n := range nodes {
		if n.level > 0 {
			h := model.NewHeading(n.level, n.text)
			h.Attrs = n.attrs.Clone()
			out = append(out, h)
			continue
		}
		p := model.NewParagraph(n.text)
		p.Attrs = n.attrs.Clone()
		out = append(out, p)
	}
	return out
}

func isDivider(n model.Node) bool {
	p, ok := n.(*model.Paragraph)
	return ok && p.Attrs.DividerRed
}

// ensureSignerDivider inserts a red rule right after the 签发人 line unless
// one is already there.
func ensureSignerDivider(nodes []model.Node) []model.Node {
	for i, n := range nodes {
		p, ok := n.(*model.Paragraph)
		if !ok || !classify.IsSignerLine(p.Text()) {
			continue
		}
		if i+1 < len(nodes) && isDivider(nodes[i+1]) {
			return nodes
		}
		return insertAt(nodes, i+1, model.NewDivider())
	}
	return nodes
}

// ensureDistributionDividers bounds the 发送/发至/发文 line with red rules on
// both sides unless they are already present.
func ensureDistributionDividers(nodes []model.Node) []model.Node {
	for i, n := range nodes {
		p, ok := n.(*model.Paragraph)
		if !ok || !classify.IsDistributionLine(p.Text()) {
			continue
		}
		if i+1 >= len(nodes) || !isDivider(nodes[i+1]) {
			nodes = insertAt(nodes, i+1, model.NewDivider())
		}
		if i == 0 || !isDivider(nodes[i-1]) {
			nodes = insertAt(nodes, i, model.NewDivider())
		}
		return nodes
	}
	return nodes
}

func insertAt(nodes []model.Node, i int, n model.Node) []model.Node {
	out := make([]model.Node, 0, len(nodes)+1)
	out = append(out, nodes[:i]...)
	out = append(out, n)
	out = append(out, nodes[i:]...)
	return out
}
