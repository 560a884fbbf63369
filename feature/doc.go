// Package feature extracts per-role style summaries from sample documents.
//
// Two input paths exist. The DOCX path samples paragraph typography, keyed by
// detected role (body or heading level), reads page margins, and extracts a
// content template: the fixed leading and trailing paragraph blocks that
// recur across samples of one document type. The PDF path extracts text
// fragments with their font and size from page content streams; it yields
// body-style evidence only.
//
// Extraction is a pure transformation of the input bytes. One Features value
// is produced per sample; aggregation across samples lives in package infer.
package feature
