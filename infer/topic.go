package infer

import (
	"github.com/leew00726/publicText/feature"
	"github.com/leew00726/publicText/model"
)

// BuildTopicBody scaffolds a new document from a topic's rule set: the
// content template's leading nodes, an editable placeholder paragraph styled
// as body text, then the trailing nodes with suffix typography normalized
// against the rule set's body style. Without a content template the result
// is just the placeholder paragraph.
func BuildTopicBody(rules *model.StyleRules) *model.Document {
	doc := &model.Document{}

	placeholderText := feature.DefaultBodyPlaceholder
	if rules.ContentTemplate != nil && rules.ContentTemplate.BodyPlaceholder != "" {
		placeholderText = rules.ContentTemplate.BodyPlaceholder
	}

	if rules.ContentTemplate != nil {
		doc.Children = append(doc.Children, model.CloneNodes(rules.ContentTemplate.LeadingNodes)...)
	}

	placeholder := model.NewParagraph(placeholderText)
	placeholder.Attrs = rules.Body.Clone()
	doc.Children = append(doc.Children, placeholder)

	if rules.ContentTemplate != nil {
		trailing := model.CloneNodes(rules.ContentTemplate.TrailingNodes)
		normalizeSuffixStyles(trailing, rules.Body)
		doc.Children = append(doc.Children, trailing...)
	}
	return doc
}
