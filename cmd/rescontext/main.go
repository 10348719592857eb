package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/fs"
	"github.com/fwojciec/rescontext/gemini"
	reshttp "github.com/fwojciec/rescontext/http"
	"github.com/fwojciec/rescontext/htmltomarkdown"
	"github.com/fwojciec/rescontext/readability"
	"github.com/fwojciec/rescontext/research"
	"github.com/fwojciec/rescontext/searxng"
	reslog "github.com/fwojciec/rescontext/slog"
	"github.com/fwojciec/rescontext/trafilatura"
	"github.com/fwojciec/rescontext/wikipedia"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rescontext"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rescontext --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire command-specific dependencies based on command
	if cmd == "research" {
		searchers := []rescontext.Searcher{
			reslog.NewLoggingSearcher(wikipedia.NewClient(), logger),
		}
		if cli.Research.Searxng != "" {
			searchers = append(searchers,
				reslog.NewLoggingSearcher(searxng.NewClient(cli.Research.Searxng), logger))
		}

		var fetcher rescontext.Fetcher
		if cli.Research.Fetch {
			f := reshttp.NewFetcher(reshttp.WithLimiter(reshttp.NewDomainLimiter(1.0)))
			defer f.Close()
			fetcher = reslog.NewLoggingFetcher(f, logger)
		}

		deps.Aggregator = &research.Aggregator{
			Searchers:     searchers,
			Pipeline:      defaultPipeline(),
			Fetcher:       fetcher,
			MaxTotalChars: cli.Research.MaxChars,
		}

		if cli.Research.Answer {
			client, err := newGeminiClient(ctx, stderr)
			if err != nil {
				return err
			}
			deps.Synthesizer = gemini.NewSynthesizer(client)
		}

		if cli.Research.Save {
			deps.Writer = fs.NewWriter(cli.Research.Out)
		}
	}

	if cmd == "read" {
		f := reshttp.NewFetcher()
		defer f.Close()
		deps.Fetcher = reslog.NewLoggingFetcher(f, logger)
		deps.Articles = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "process" {
		deps.Pipeline = defaultPipeline()
	}

	return kongCtx.Run(deps)
}

// defaultPipeline builds the full extraction chain: trafilatura, then
// readability, then plain tag stripping.
func defaultPipeline() *rescontext.Pipeline {
	return &rescontext.Pipeline{
		Extractor: rescontext.NewChain(
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
			rescontext.TagStripExtractor{},
		),
	}
}

// newGeminiClient connects to the Gemini API using GEMINI_API_KEY.
func newGeminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}
