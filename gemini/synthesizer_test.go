package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Synthesizer implements rescontext.Synthesizer at compile time.
var _ rescontext.Synthesizer = (*gemini.Synthesizer)(nil)

func TestSynthesizer_RequiresQuery(t *testing.T) {
	t.Parallel()

	s := gemini.NewSynthesizer(nil)
	_, err := s.Synthesize(context.Background(), "", "[Source: wikipedia] Tower: text")

	require.Error(t, err)
	assert.Equal(t, rescontext.EINVALID, rescontext.ErrorCode(err))
}

func TestSynthesizer_RequiresContext(t *testing.T) {
	t.Parallel()

	s := gemini.NewSynthesizer(nil)
	_, err := s.Synthesize(context.Background(), "tower tarot", "  \n ")

	require.Error(t, err)
	assert.Equal(t, rescontext.EINVALID, rescontext.ErrorCode(err))
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("What does the Tower represent?",
		"[Source: wikipedia] Tower: sudden change")

	assert.Contains(t, prompt, "<research>\n[Source: wikipedia] Tower: sudden change\n</research>")
	assert.Contains(t, prompt, "Question: What does the Tower represent?")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, float64(*config.Temperature), 0.001)
}
