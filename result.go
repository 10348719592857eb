package rescontext

import "fmt"

// Result represents a single retrieval result as it flows through the
// processing pipeline. Content starts as raw source output and is replaced
// by processed text as the result moves through the stages. The remaining
// fields are caller-owned metadata and pass through processing unchanged.
type Result struct {
	ID      string `json:"id"`
	Query   string `json:"query"`
	Source  string `json:"source"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// FormatResult renders the canonical attributed string handed to the
// language model: "[Source: {source}] {title}: {content}".
func FormatResult(title, source, content string) string {
	return fmt.Sprintf("[Source: %s] %s: %s", source, title, content)
}
