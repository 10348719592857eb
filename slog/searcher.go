package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rescontext"
)

// Ensure LoggingSearcher implements rescontext.Searcher at compile time.
var _ rescontext.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with structured logging of source,
// query, result count, duration, and errors.
type LoggingSearcher struct {
	next   rescontext.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a LoggingSearcher wrapping next.
func NewLoggingSearcher(next rescontext.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string) ([]rescontext.Result, error) {
	start := time.Now()
	results, err := s.next.Search(ctx, query)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error("search",
			slog.String("source", s.next.Name()),
			slog.String("query", query),
			slog.Duration("duration", duration),
			slog.Any("err", err),
		)
		return nil, err
	}

	s.logger.Info("search",
		slog.String("source", s.next.Name()),
		slog.String("query", query),
		slog.Int("results", len(results)),
		slog.Duration("duration", duration),
	)
	return results, nil
}

// Name returns the wrapped searcher's name.
func (s *LoggingSearcher) Name() string {
	return s.next.Name()
}
