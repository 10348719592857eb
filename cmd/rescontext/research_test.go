package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rescontext"
	main "github.com/fwojciec/rescontext/cmd/rescontext"
	"github.com/fwojciec/rescontext/fs"
	"github.com/fwojciec/rescontext/mock"
	"github.com/fwojciec/rescontext/research"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAggregator(searchers ...rescontext.Searcher) *research.Aggregator {
	return &research.Aggregator{
		Searchers: searchers,
		Pipeline:  &rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})},
	}
}

func towerSearcher() *mock.Searcher {
	return &mock.Searcher{
		SearchFn: func(_ context.Context, query string) ([]rescontext.Result, error) {
			return []rescontext.Result{{
				Source:  "wikipedia",
				Title:   "The Tower",
				URL:     "https://en.wikipedia.org/wiki/The_Tower",
				Content: "The Tower represents sudden change.",
			}}, nil
		},
		NameFn: func() string { return "wikipedia" },
	}
}

func TestResearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints gathered context", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Aggregator: testAggregator(towerSearcher()),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "[Source: wikipedia] tower tarot: The Tower represents sudden change.")
	})

	t.Run("reports when nothing was found", func(t *testing.T) {
		t.Parallel()

		empty := &mock.Searcher{
			SearchFn: func(_ context.Context, query string) ([]rescontext.Result, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Aggregator: testAggregator(empty),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results found")
	})

	t.Run("synthesizes an answer with --answer", func(t *testing.T) {
		t.Parallel()

		synth := &mock.Synthesizer{
			SynthesizeFn: func(_ context.Context, query, researchContext string) (string, error) {
				assert.Equal(t, "tower tarot", query)
				assert.Contains(t, researchContext, "sudden change")
				return "The Tower signifies upheaval.", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Aggregator:  testAggregator(towerSearcher()),
			Synthesizer: synth,
		}

		cmd := &main.ResearchCmd{Query: "tower tarot", Answer: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Answer")
		assert.Contains(t, stdout.String(), "The Tower signifies upheaval.")
	})

	t.Run("saves a report with --save", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Aggregator: testAggregator(towerSearcher()),
			Writer:     fs.NewWriter(dir),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot", Save: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		path := filepath.Join(dir, "tower-tarot.md")
		assert.Contains(t, stdout.String(), "Saved report to "+path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "sudden change")
	})

	t.Run("warns about failed sources", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Searcher{
			SearchFn: func(_ context.Context, query string) ([]rescontext.Result, error) {
				return nil, rescontext.Errorf(rescontext.EUNAVAILABLE, "searxng unavailable")
			},
			NameFn: func() string { return "searxng" },
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Aggregator: testAggregator(failing, towerSearcher()),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "1 source(s) failed")
	})

	t.Run("returns error when every source fails", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Searcher{
			SearchFn: func(_ context.Context, query string) ([]rescontext.Result, error) {
				return nil, rescontext.Errorf(rescontext.EUNAVAILABLE, "searxng unavailable")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Aggregator: testAggregator(failing),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns error when --answer has no synthesizer", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     &bytes.Buffer{},
			Aggregator: testAggregator(towerSearcher()),
		}

		cmd := &main.ResearchCmd{Query: "tower tarot", Answer: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, rescontext.EINVALID, rescontext.ErrorCode(err))
	})
}
