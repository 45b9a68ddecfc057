package interview

import (
	"fmt"
	"strings"

	"github.com/mkravets/talentscout/internal/ai/fallback"
)

// Summary aggregates the results of a completed interview.
type Summary struct {
	Questions int
	Average   float64
	Label     string
}

// Summary computes the final evaluation over all answered questions.
func (s Session) Summary() Summary {
	if len(s.Results) == 0 {
		return Summary{}
	}

	total := 0
	for _, result := range s.Results {
		total += result.Score
	}
	avg := float64(total) / float64(len(s.Results))

	return Summary{
		Questions: len(s.Results),
		Average:   avg,
		Label:     fallback.PerformanceLabel(avg),
	}
}

// SummaryText renders the final evaluation with per-question details, the
// way it is presented once at the end of a session.
func (s Session) SummaryText() string {
	summary := s.Summary()
	if summary.Questions == 0 {
		return "Interview Complete! No answers were recorded."
	}

	var b strings.Builder
	b.WriteString("Interview Complete!\n\n")
	b.WriteString("Final Evaluation:\n")
	fmt.Fprintf(&b, "- Total Questions: %d\n", summary.Questions)
	fmt.Fprintf(&b, "- Average Score: %.1f/10\n", summary.Average)
	fmt.Fprintf(&b, "- Overall Performance: %s\n", summary.Label)

	b.WriteString("\nDetailed Results:\n")
	for i, result := range s.Results {
		fmt.Fprintf(&b, "\nQuestion %d: %s\n", i+1, truncate(result.Question, 50))
		fmt.Fprintf(&b, "Score: %d/10\n", result.Score)
		fmt.Fprintf(&b, "Feedback: %s\n", result.Feedback)
	}

	return strings.TrimRight(b.String(), "\n")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
