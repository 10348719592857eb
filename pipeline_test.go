package rescontext_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/mock"
	"github.com/stretchr/testify/assert"
)

func TestPipeline_Process(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for empty input", func(t *testing.T) {
		t.Parallel()

		p := rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})}

		assert.Empty(t, p.Process("", "query", "source"))
	})

	t.Run("short-circuits when extraction yields nothing", func(t *testing.T) {
		t.Parallel()

		empty := &mock.Extractor{
			ExtractFn: func(raw string) (string, error) { return "", nil },
		}
		p := rescontext.Pipeline{Extractor: empty}

		assert.Empty(t, p.Process("<html><script>x</script></html>", "query", "source"))
	})

	t.Run("formats extracted content with attribution", func(t *testing.T) {
		t.Parallel()

		p := rescontext.Pipeline{Extractor: rescontext.NewChain(rescontext.TagStripExtractor{})}

		result := p.Process("<p>The Tower represents sudden change.</p>", "Tower", "wikipedia")

		assert.Equal(t, "[Source: wikipedia] Tower: The Tower represents sudden change.", result)
	})

	t.Run("bounds content before formatting", func(t *testing.T) {
		t.Parallel()

		p := rescontext.Pipeline{
			Extractor: rescontext.NewChain(rescontext.TagStripExtractor{}),
			MaxChars:  100,
		}

		result := p.Process(strings.Repeat("word ", 200), "query", "source")

		// "[Source: source] query: " prefix plus at most 100 chars of content.
		assert.LessOrEqual(t, utf8.RuneCountInString(result), len("[Source: source] query: ")+100)
	})

	t.Run("degrades to empty on extractor error", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Extractor{
			ExtractFn: func(raw string) (string, error) {
				return "", rescontext.Errorf(rescontext.EINTERNAL, "parser blew up")
			},
		}
		p := rescontext.Pipeline{Extractor: failing}

		assert.Empty(t, p.Process("<p>content</p>", "query", "source"))
	})

	t.Run("caps oversized raw input before extraction", func(t *testing.T) {
		t.Parallel()

		var sawLen int
		capture := &mock.Extractor{
			ExtractFn: func(raw string) (string, error) {
				sawLen = len(raw)
				return "content", nil
			},
		}
		p := rescontext.Pipeline{Extractor: capture, MaxInputBytes: 1024}

		p.Process(strings.Repeat("x", 10_000), "query", "source")

		assert.Equal(t, 1024, sawLen)
	})
}
