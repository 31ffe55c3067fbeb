// Package pipeline implements the Markdown-to-HTML conversion stages:
//   - Preprocessing (line ending normalization, line splitting)
//   - Inline transforms ([[hash]], ((strip)), ** and __ markers)
//   - Block classification into headers, lists and paragraphs
//   - Alternative rendering engines (goldmark, gomarkdown, blackfriday)
//   - Front matter extraction
//   - Standalone HTML5 document wrapping
//
// The default line engine is a single-pass state machine: each input line is
// transformed, classified, and turned into zero or more HTML fragments, in
// input order.
package pipeline
