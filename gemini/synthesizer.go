// Package gemini provides a rescontext.Synthesizer using Google Gemini to
// answer a research query from the budgeted context.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/rescontext"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Synthesizer implements rescontext.Synthesizer at compile time.
var _ rescontext.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements rescontext.Synthesizer using Google Gemini.
type Synthesizer struct {
	client *genai.Client
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(client *genai.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Synthesize answers the query using only the provided research context.
func (s *Synthesizer) Synthesize(ctx context.Context, query, researchContext string) (string, error) {
	if query == "" {
		return "", rescontext.Errorf(rescontext.EINVALID, "query required")
	}
	if strings.TrimSpace(researchContext) == "" {
		return "", rescontext.Errorf(rescontext.EINVALID, "research context required")
	}

	prompt := BuildUserPrompt(query, researchContext)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", rescontext.Errorf(rescontext.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a research assistant. Answer based only on the research context provided. Each result names its source; cite sources in your answer. If the answer is not in the context, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the research context
// and the query.
func BuildUserPrompt(query, researchContext string) string {
	var sb strings.Builder
	sb.WriteString("<research>\n")
	sb.WriteString(researchContext)
	sb.WriteString("\n</research>\n\n")
	sb.WriteString("Question: ")
	sb.WriteString(query)
	return sb.String()
}
