package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mkravets/talentscout/internal/ai"
	"github.com/mkravets/talentscout/internal/ai/fallback"
)

//go:embed evaluation_prompt.md
var evaluationPromptTemplate string

const defaultFeedback = "Good attempt! Keep practicing."

var scorePattern = regexp.MustCompile(`(\d+)/10`)

// EvaluateAnswer scores an answer via Gemini. Transient upstream failures
// (and a missing credential) route to the deterministic keyword scorer; any
// other failure produces a low-confidence default of 5 with the failure
// detail as feedback, so the interview never aborts.
func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string) ai.Evaluation {
	prompt := buildEvaluationPrompt(question, answer)
	c.debugPreview("answer evaluation request", prompt)

	evaluation := attempt(ctx, c.generator, prompt,
		parseEvaluation,
		func() ai.Evaluation {
			score, feedback := fallback.Score(question, answer)
			return ai.Evaluation{Score: score, Feedback: feedback}
		},
		func(err error) ai.Evaluation {
			c.logger.Warn("answer evaluation failed", zap.Error(err))
			return ai.Evaluation{
				Score:    5,
				Feedback: fmt.Sprintf("Error evaluating answer: %v. Please try again.", err),
			}
		},
	)

	c.logger.Debug("answer evaluation result", zap.Int("score", evaluation.Score))
	return evaluation
}

func buildEvaluationPrompt(question, answer string) string {
	prompt := strings.ReplaceAll(evaluationPromptTemplate, "{{QUESTION}}", question)
	return strings.ReplaceAll(prompt, "{{ANSWER}}", answer)
}

// parseEvaluation extracts the first "N/10" score from the response text,
// defaulting to 5 when absent, and treats everything after the match as
// feedback. Best effort on purpose: a usable value always comes back.
func parseEvaluation(raw string) ai.Evaluation {
	score := 5
	feedback := raw

	if loc := scorePattern.FindStringSubmatchIndex(raw); loc != nil {
		if parsed, err := strconv.Atoi(raw[loc[2]:loc[3]]); err == nil {
			score = parsed
		}
		feedback = raw[loc[1]:]
	}

	feedback = strings.TrimSpace(strings.ReplaceAll(feedback, "Feedback:", ""))
	if feedback == "" {
		feedback = defaultFeedback
	}

	return ai.Evaluation{Score: clamp(score), Feedback: feedback}
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
