package main

import (
	"context"
	"io"

	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/research"
	"github.com/fwojciec/rescontext/trafilatura"
)

// ArticleExtractor yields a page title and clean content HTML for the
// read command's markdown path.
type ArticleExtractor interface {
	ExtractArticle(raw string) (*trafilatura.Article, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Aggregator  *research.Aggregator
	Synthesizer rescontext.Synthesizer
	Writer      rescontext.ReportWriter
	Fetcher     rescontext.Fetcher
	Articles    ArticleExtractor
	Converter   rescontext.Converter
	Pipeline    *rescontext.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log requests to stderr"`

	Research ResearchCmd `cmd:"" help:"Gather research context for a query"`
	Read     ReadCmd     `cmd:"" help:"Fetch a page and print it as markdown"`
	Process  ProcessCmd  `cmd:"" help:"Process raw text from stdin into a context string"`
}

// ResearchCmd is the "research" subcommand.
type ResearchCmd struct {
	Query    string `arg:"" help:"Research query"`
	Searxng  string `env:"SEARXNG_URL" help:"SearXNG instance URL (enables web search)"`
	Fetch    bool   `short:"f" help:"Fetch full pages instead of using search snippets"`
	Answer   bool   `short:"a" help:"Synthesize an answer from the gathered context"`
	Save     bool   `short:"s" help:"Save a markdown report"`
	Out      string `short:"o" default:"reports" help:"Report output directory"`
	MaxChars int    `default:"12000" help:"Total context budget in characters"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ProcessCmd is the "process" subcommand.
type ProcessCmd struct {
	Query    string `arg:"" help:"Query used for relevance scoring and the result title"`
	Source   string `default:"stdin" help:"Source name used for attribution"`
	MaxChars int    `default:"1000" help:"Per-result budget in characters"`
}
