package rescontext

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxTotalChars is the default total character budget for a batch of
// formatted results, roughly 3000 tokens.
const DefaultMaxTotalChars = 12000

// contextSeparator joins formatted results in the final context.
const contextSeparator = "\n\n"

// BudgetContext caps the total character volume of a batch of formatted
// result strings and joins the survivors with a blank line. If the raw sum
// of individual lengths (separators excluded) fits within maxTotalChars the
// pieces are joined unmodified. Otherwise every piece is independently
// truncated to an equal share of the budget, maxTotalChars/len(results),
// regardless of its original length or relevance. An empty batch yields "".
func BudgetContext(results []string, maxTotalChars int) string {
	if len(results) == 0 {
		return ""
	}
	if maxTotalChars <= 0 {
		maxTotalChars = DefaultMaxTotalChars
	}

	total := 0
	for _, r := range results {
		total += utf8.RuneCountInString(r)
	}
	if total <= maxTotalChars {
		return strings.Join(results, contextSeparator)
	}

	perResultBudget := maxTotalChars / len(results)
	truncated := make([]string, len(results))
	for i, r := range results {
		runes := []rune(r)
		if len(runes) > perResultBudget {
			runes = runes[:perResultBudget]
		}
		truncated[i] = string(runes)
	}
	return strings.Join(truncated, contextSeparator)
}
