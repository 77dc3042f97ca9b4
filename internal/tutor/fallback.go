package tutor

import (
	"fmt"
	"strings"

	"github.com/yida7942-create/gmat-tutor/internal/models"
)

// fallbackExplanation is served when AI generation is unavailable. The stored
// explanation, when present, is still useful on its own.
func fallbackExplanation(q models.Question, userAnswer int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The correct answer is %s.", optionLetter(q.CorrectAnswer))
	if userAnswer != q.CorrectAnswer {
		fmt.Fprintf(&b, " You chose %s.", optionLetter(userAnswer))
	}
	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(q.Explanation)
	} else {
		b.WriteString("\n\nNo detailed explanation is available for this question. Re-read the passage and compare your choice against the correct answer carefully.")
	}
	return b.String()
}

func fallbackTranslation(q models.Question) string {
	return "Translation is unavailable right now. Try reading the question slowly, isolating the main clause of each sentence before the modifiers."
}

func fallbackSummary(stats sessionStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session complete: %d/%d correct (%.0f%%).\n\n", stats.Correct, stats.Total, stats.Accuracy)

	switch {
	case stats.Accuracy >= 80:
		b.WriteString("Strong session! Your accuracy is at a competitive level. Consider moving to harder questions or tightening your pacing.")
	case stats.Accuracy >= 60:
		b.WriteString("Solid progress, with room to improve. Review every question you missed and write down the reasoning trap in each one.")
	default:
		b.WriteString("A tough session, which is where the most learning happens. Slow down, re-read the missed questions, and focus on understanding why each wrong option is wrong.")
	}

	if len(stats.WeakTags) > 0 {
		fmt.Fprintf(&b, "\n\nFocus areas for next time: %s.", strings.Join(stats.WeakTags, ", "))
	}
	return b.String()
}

// quickTips are served per skill tag when AI generation is unavailable.
var quickTips = map[string]string{
	"Assumption": "Look for the unstated link between evidence and conclusion. The correct answer, when negated, should make the argument fall apart.",
	"Strengthen": "Find the gap in the argument first, then pick the option that closes it. Beware of answers that merely restate the conclusion.",
	"Weaken":     "Attack the link between premises and conclusion, not the premises themselves. An alternative explanation is a classic weakener.",
	"Inference":  "Stay within what the text guarantees. If an option needs even one extra assumption, it is not a valid inference.",
	"Evaluate":   "Turn each option into a yes/no question. The right one gives opposite verdicts on the argument depending on the answer.",
	"Boldface":   "Label each bold portion by its role first (premise, conclusion, opposing view), then match the roles to the options.",
}

const defaultTip = "Read the question stem before the passage so you know what to look for, and eliminate options that are out of scope first."

func fallbackTip(skillTag string) string {
	if tip, ok := quickTips[skillTag]; ok {
		return tip
	}
	return defaultTip
}
