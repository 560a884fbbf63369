// Package classify holds the pure pattern-matching heuristics for Chinese
// official documents: heading-level markers, CJK numeral conversion,
// suffix-block role markers, sentence/title shape tests, document-number
// bracket normalization and the font alias table.
//
// Every function here is a pure transformation over strings so the heuristics
// can be tested independently of any document object model.
package classify
