package ai

import (
	"context"
	"strings"
)

// Evaluation is the assessment of a single answer. Score is always within
// [0,10] and Feedback is never empty.
type Evaluation struct {
	Score    int
	Feedback string
}

// QuestionGenerator produces 1-5 interview questions for a tech stack. The
// returned list is never empty: implementations degrade to a fallback
// catalog or to a single error-shaped entry instead of failing.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, techStack []string) []string
}

// AnswerEvaluator scores a free-text answer to a question. Implementations
// never fail: unavailable backends yield a heuristic or default evaluation.
type AnswerEvaluator interface {
	EvaluateAnswer(ctx context.Context, question, answer string) Evaluation
}

// IsErrorList reports whether a question list is the error-shaped result of
// a non-transient generation failure. Callers must check for this shape
// rather than rely on an error return.
func IsErrorList(questions []string) bool {
	return len(questions) > 0 && strings.HasPrefix(questions[0], "Error")
}
