package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/rescontext"
	main "github.com/fwojciec/rescontext/cmd/rescontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("processes stdin into a formatted context string", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("<p>The Tower represents sudden change.</p>"),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pipeline: &rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})},
		}

		cmd := &main.ProcessCmd{Query: "tower tarot", Source: "stdin", MaxChars: 1000}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "[Source: stdin] tower tarot: The Tower represents sudden change.\n", stdout.String())
	})

	t.Run("applies the per-result budget", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader(strings.Repeat("tower ", 200)),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Pipeline: &rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})},
		}

		cmd := &main.ProcessCmd{Query: "tower", Source: "stdin", MaxChars: 100}
		err := cmd.Run(deps)

		require.NoError(t, err)
		// Formatted prefix plus at most 100 content characters and a newline.
		assert.LessOrEqual(t, len(stdout.String()), len("[Source: stdin] tower: ")+100+1)
	})

	t.Run("returns error for unprocessable input", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("   \n  "),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Pipeline: &rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})},
		}

		cmd := &main.ProcessCmd{Query: "tower", Source: "stdin", MaxChars: 1000}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, rescontext.EINVALID, rescontext.ErrorCode(err))
	})
}
