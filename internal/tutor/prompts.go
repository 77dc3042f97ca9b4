package tutor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yida7942-create/gmat-tutor/internal/models"
)

const systemPrompt = `You are an experienced GMAT verbal tutor. You explain questions clearly and concisely, always anchoring on the learner's actual reasoning mistake rather than restating the official answer. Keep a supportive tone and use short paragraphs.`

const quickTipPromptTemplate = `Give one short, actionable tip (2-3 sentences) for approaching GMAT %s questions tagged "%s". Focus on pattern recognition, not generic study advice.`

// optionLetter maps an answer index to the conventional A-E label.
func optionLetter(idx int) string {
	if idx < 0 || idx >= 26 {
		return "?"
	}
	return string(rune('A' + idx))
}

func formatOptions(options []string) string {
	var b strings.Builder
	for i, opt := range options {
		fmt.Fprintf(&b, "%s. %s\n", optionLetter(i), opt)
	}
	return b.String()
}

func buildExplainPrompt(q models.Question, userAnswer int, isCorrect bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question type: %s / %s\n", q.Category, q.Subcategory)
	if len(q.SkillTags) > 0 {
		fmt.Fprintf(&b, "Skills tested: %s\n", strings.Join(q.SkillTags, ", "))
	}
	fmt.Fprintf(&b, "\nQuestion:\n%s\n\nOptions:\n%s", q.Content, formatOptions(q.Options))
	fmt.Fprintf(&b, "\nCorrect answer: %s\n", optionLetter(q.CorrectAnswer))

	if isCorrect {
		fmt.Fprintf(&b, "The learner answered %s, which is correct.\n\n", optionLetter(userAnswer))
		b.WriteString("Briefly confirm the reasoning behind the correct answer and point out the most tempting wrong option and why it fails.")
	} else {
		fmt.Fprintf(&b, "The learner answered %s, which is wrong.\n\n", optionLetter(userAnswer))
		b.WriteString("Explain: 1) why the learner's choice is wrong, naming the specific reasoning trap it represents; 2) why the correct answer is right; 3) one concrete habit to avoid this mistake next time.")
	}
	if q.Explanation != "" {
		fmt.Fprintf(&b, "\n\nReference explanation (rephrase, do not quote verbatim):\n%s", q.Explanation)
	}
	return b.String()
}

func buildTranslatePrompt(q models.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following GMAT %s question into Chinese, then break down any sentence whose structure is likely to trip up a non-native reader (long modifiers, inverted clauses, abstract references).\n\n", q.Subcategory)
	fmt.Fprintf(&b, "Question:\n%s\n\nOptions:\n%s", q.Content, formatOptions(q.Options))
	b.WriteString("\nFormat: full translation first, then a short sentence-by-sentence analysis of the difficult parts only.")
	return b.String()
}

// sessionStats is the aggregate view of one session used to build summary
// prompts and fallback text.
type sessionStats struct {
	Total           int
	Correct         int
	Accuracy        float64
	AvgTimeSecs     float64
	ErrorsByType    map[string]int
	WeakTags        []string
	ErrorCategories map[string]int
}

func summarizeSession(logs []models.StudyLog, questions map[int64]models.Question) sessionStats {
	stats := sessionStats{
		ErrorsByType:    make(map[string]int),
		ErrorCategories: make(map[string]int),
	}

	tagErrors := make(map[string]int)
	totalTime := 0
	for _, entry := range logs {
		stats.Total++
		totalTime += entry.TimeTakenSecs
		if entry.IsCorrect {
			stats.Correct++
			continue
		}
		if entry.ErrorCategory != "" {
			stats.ErrorCategories[entry.ErrorCategory]++
		}
		q, ok := questions[entry.QuestionID]
		if !ok {
			continue
		}
		stats.ErrorsByType[q.Subcategory]++
		for _, tag := range q.SkillTags {
			tagErrors[tag]++
		}
	}

	if stats.Total > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Total) * 100
		stats.AvgTimeSecs = float64(totalTime) / float64(stats.Total)
	}

	type tagCount struct {
		tag string
		n   int
	}
	counts := make([]tagCount, 0, len(tagErrors))
	for tag, n := range tagErrors {
		counts = append(counts, tagCount{tag, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].n != counts[j].n {
			return counts[i].n > counts[j].n
		}
		return counts[i].tag < counts[j].tag
	})
	for i, c := range counts {
		if i == 3 {
			break
		}
		stats.WeakTags = append(stats.WeakTags, c.tag)
	}
	return stats
}

func buildSummaryPrompt(stats sessionStats) string {
	var b strings.Builder
	b.WriteString("Write an encouraging end-of-session review for a GMAT learner based on these numbers.\n\n")
	fmt.Fprintf(&b, "Questions answered: %d\nCorrect: %d (%.0f%%)\nAverage time per question: %.0f seconds\n", stats.Total, stats.Correct, stats.Accuracy, stats.AvgTimeSecs)

	if len(stats.ErrorsByType) > 0 {
		b.WriteString("\nErrors by question type:\n")
		for _, qt := range sortedKeys(stats.ErrorsByType) {
			fmt.Fprintf(&b, "- %s: %d\n", qt, stats.ErrorsByType[qt])
		}
	}
	if len(stats.ErrorCategories) > 0 {
		b.WriteString("\nSelf-reported error categories:\n")
		for _, cat := range sortedKeys(stats.ErrorCategories) {
			fmt.Fprintf(&b, "- %s: %d\n", cat, stats.ErrorCategories[cat])
		}
	}
	if len(stats.WeakTags) > 0 {
		fmt.Fprintf(&b, "\nMost-missed skills: %s\n", strings.Join(stats.WeakTags, ", "))
	}
	b.WriteString("\nCover: what went well, the single most important pattern in the mistakes, and 2-3 concrete priorities for the next session. Keep it under 250 words.")
	return b.String()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
