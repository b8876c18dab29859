package insights

import (
	"fmt"
	"strings"

	"github.com/vmilosevic/liftinsights/internal/strength"
)

const imbalancePromptHeader = `You are a strength coach assistant.
Below are pre-computed strength findings for a user, one per opposing muscle group pair.
All ratios, tiers and thresholds are already calculated. Do NOT recompute or second-guess any number.
Write a short, encouraging narrative (3-5 sentences) explaining what the findings mean
and which pair, if any, deserves attention first. Plain text, no markdown.`

// BuildImbalancePrompt renders the detector's findings into the narrative
// prompt. The model only narrates; every number it sees is final.
func BuildImbalancePrompt(findings []strength.Finding, summary string) string {
	var b strings.Builder
	b.WriteString(imbalancePromptHeader)
	b.WriteString("\n\nOverall: ")
	b.WriteString(summary)
	b.WriteString("\n\nFindings:\n")

	for _, f := range findings {
		if !f.HasData {
			fmt.Fprintf(&b, "- %s: not enough data logged\n", f.ImbalanceType)
			continue
		}
		fmt.Fprintf(
			&b,
			"- %s: %s %.1f %s (%s) vs %s %.1f %s (%s), ratio %s, balanced range %s, verdict: %s\n",
			f.ImbalanceType,
			f.Lift1Name, f.Lift1Weight, f.Lift1Unit, f.Lift1Level,
			f.Lift2Name, f.Lift2Weight, f.Lift2Unit, f.Lift2Level,
			f.UserRatio, f.BalancedRange, f.Focus,
		)
	}

	return b.String()
}
