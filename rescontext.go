// Package rescontext turns raw, heterogeneous retrieval output into a
// bounded, deduplicated, relevance-ranked textual context suitable for a
// language model with a limited input window. Raw HTML or plain text from
// search and lookup sources flows through content extraction, relevance
// truncation, and attribution formatting; batches of processed results are
// then deduplicated and capped to a total context budget.
//
// This package contains domain types, interfaces, and the pure processing
// core following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., trafilatura/, gemini/, searxng/).
package rescontext
