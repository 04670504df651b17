// Package docqa answers natural language questions about PDF documents.
// It sends a document and a question to a citation-capable LLM, groups the
// returned content blocks into an introduction, sections, and footnotes, and
// renders the result as markdown with page-citation footnotes.
//
// This package contains domain types, interfaces, and the pure
// grouping/rendering core following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., anthropic/, gin/, pdf/).
package docqa
