package rescontext

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., an article body from an
	// extraction strategy). Returns the Markdown representation.
	Convert(html string) (string, error)
}
