// Package slog provides logging decorators for rescontext interfaces
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rescontext"
)

// Ensure LoggingFetcher implements rescontext.Fetcher at compile time.
var _ rescontext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of URL, size,
// duration, and errors.
type LoggingFetcher struct {
	next   rescontext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a LoggingFetcher wrapping next.
func NewLoggingFetcher(next rescontext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.next.Fetch(ctx, url)
	duration := time.Since(start)

	if err != nil {
		f.logger.Error("fetch",
			slog.String("url", url),
			slog.Duration("duration", duration),
			slog.Any("err", err),
		)
		return "", err
	}

	f.logger.Info("fetch",
		slog.String("url", url),
		slog.Int("bytes", len(html)),
		slog.Duration("duration", duration),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
