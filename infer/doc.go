// Package infer turns per-sample feature summaries into one rule set and
// owns the patch-merge semantics used for incremental rule revision.
//
// Aggregation is statistical: each field takes the mode of its observed
// values, with a per-field confidence of modeCount/presentCount. The result
// is order-insensitive except for the documented first-encountered tie-break.
// Revision is pure: merging a patch never mutates the previous rule set.
package infer
