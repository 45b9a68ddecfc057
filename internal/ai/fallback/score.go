// Package fallback provides the deterministic heuristics used whenever the
// remote Gemini service is unavailable: a keyword-based answer scorer and a
// fixed interview question catalog. Identical input always yields identical
// output.
package fallback

import "strings"

// domain is one keyword set used to score answers. The question text is
// matched against the triggers, first match wins.
type domain struct {
	triggers []string
	keywords []string
}

var domains = []domain{
	{
		triggers: []string{"python"},
		keywords: []string{"def", "class", "import", "try", "except", "list", "tuple", "dict", "decorator", "generator"},
	},
	{
		triggers: []string{"javascript", "js"},
		keywords: []string{"function", "const", "let", "var", "async", "await", "promise", "closure", "hoisting"},
	},
	{
		triggers: []string{"react"},
		keywords: []string{"component", "state", "props", "hook", "usestate", "useeffect", "virtual", "dom"},
	},
	{
		triggers: []string{"django"},
		keywords: []string{"model", "view", "template", "orm", "migration", "signal", "authentication"},
	},
}

// Score rates an answer without calling the remote service. It starts from a
// base of 5, awards 2 points per domain keyword found in the answer (the
// domain is picked by the first trigger found in the question), 1 point each
// for answers longer than 100 and 200 characters, and 2 points when the
// answer carries a code block or a function definition. The result is
// clamped to [0,10] and paired with tiered feedback.
func Score(question, answer string) (int, string) {
	questionLower := strings.ToLower(question)
	answerLower := strings.ToLower(answer)

	score := 5

	for _, d := range domains {
		if !matchesAny(questionLower, d.triggers) {
			continue
		}
		for _, keyword := range d.keywords {
			if strings.Contains(answerLower, keyword) {
				score += 2
			}
		}
		break
	}

	if len(answer) > 100 {
		score++
	}
	if len(answer) > 200 {
		score++
	}

	if strings.Contains(answer, "```") || strings.Contains(answer, "def ") || strings.Contains(answer, "function ") {
		score += 2
	}

	score = clamp(score)

	return score, Feedback(score)
}

// Feedback returns the canned feedback sentence for a score.
func Feedback(score int) string {
	switch {
	case score >= 8:
		return "Excellent answer! You demonstrate strong technical knowledge."
	case score >= 6:
		return "Good answer! You show solid understanding of the concept."
	case score >= 4:
		return "Fair attempt. Consider providing more specific examples and technical details."
	default:
		return "Try to provide more detailed technical explanations with examples."
	}
}

// PerformanceLabel maps an average interview score to the qualitative tier
// shown in the final summary. Same thresholds as Feedback.
func PerformanceLabel(avg float64) string {
	switch {
	case avg >= 8:
		return "Excellent"
	case avg >= 6:
		return "Good"
	case avg >= 4:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

func matchesAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
