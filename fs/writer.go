// Package fs provides file-based persistence for research reports.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/rescontext"
)

// QueryToFilename converts a research query to a markdown file name.
// Example: "What does the Tower represent?" → what-does-the-tower-represent.md
func QueryToFilename(query string) string {
	slug := slugify(query)
	if slug == "" {
		return "report.md"
	}
	return slug + ".md"
}

// slugify creates a URL-safe slug from a query.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func slugify(s string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// FormatReport formats a report as markdown with YAML frontmatter.
func FormatReport(report *rescontext.Report) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("query: ")
	b.WriteString(report.Query)
	b.WriteString("\ncreated: ")
	b.WriteString(report.CreatedAt.Format("2006-01-02"))
	if sources := sourceList(report.Results); sources != "" {
		b.WriteString("\nsources: ")
		b.WriteString(sources)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## Context\n\n")
	b.WriteString(report.Context)
	b.WriteString("\n")

	if report.Answer != "" {
		b.WriteString("\n## Answer\n\n")
		b.WriteString(report.Answer)
		b.WriteString("\n")
	}

	return b.String()
}

// sourceList returns the distinct result sources in first-seen order.
func sourceList(results []rescontext.Result) string {
	seen := make(map[string]struct{})
	var sources []string
	for _, r := range results {
		if r.Source == "" {
			continue
		}
		if _, ok := seen[r.Source]; ok {
			continue
		}
		seen[r.Source] = struct{}{}
		sources = append(sources, r.Source)
	}
	return strings.Join(sources, ", ")
}

// Ensure Writer implements rescontext.ReportWriter at compile time.
var _ rescontext.ReportWriter = (*Writer)(nil)

// Writer writes research reports as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteReport writes a report to disk and returns its path.
func (w *Writer) WriteReport(ctx context.Context, report *rescontext.Report) (string, error) {
	if err := report.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, QueryToFilename(report.Query))
	if err := os.WriteFile(path, []byte(FormatReport(report)), 0644); err != nil {
		return "", err
	}
	return path, nil
}
