// Package model defines the semantic document tree and style vocabulary shared
// by every other package in publicText.
//
// A document body is an ordered sequence of nodes under a Document root:
//
//	doc := model.NewDocument(
//	    model.NewHeading(1, "一、总体要求"),
//	    model.NewParagraph("各部门要高度重视。"),
//	)
//
// Only Heading and Paragraph nodes carry style attributes. Trees are treated
// as immutable inputs by the importer, extractor and renderer: transformations
// return new trees or new attribute bags rather than mutating in place.
//
// The package also holds the style-rule types produced by inference
// (StyleRules, ConfidenceReport, ContentTemplate), the letterhead template
// model, and the house-style constants for Chinese official documents.
package model
