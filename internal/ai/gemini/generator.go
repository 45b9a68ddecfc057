package gemini

import (
	"context"
	"fmt"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mkravets/talentscout/internal/ai/fallback"
)

//go:embed question_prompt.md
var questionPromptTemplate string

const maxQuestions = 5

// GenerateQuestions asks Gemini for 3-5 technical questions covering the
// tech stack. When the service is unavailable with a transient signature (or
// no credential is configured) the fixed fallback catalog answers instead.
// Any other failure yields a single error-shaped entry; callers detect it
// with IsErrorList. The result is never empty and never longer than five.
func (c *Client) GenerateQuestions(ctx context.Context, techStack []string) []string {
	prompt := buildQuestionPrompt(techStack)
	c.debugPreview("question generation request", prompt)

	questions := attempt(ctx, c.generator, prompt,
		parseQuestions,
		func() []string { return fallback.Questions(techStack) },
		func(err error) []string {
			c.logger.Warn("question generation failed", zap.Error(err))
			return []string{fmt.Sprintf("Error generating questions: %v", err)}
		},
	)

	c.logger.Debug("question generation result", zap.Int("count", len(questions)))
	return questions
}

func buildQuestionPrompt(techStack []string) string {
	return strings.ReplaceAll(questionPromptTemplate, "{{TECH_STACK}}", strings.Join(techStack, ", "))
}

// parseQuestions is a lenient parser: it keeps only numbered or dashed lines
// with the marker stripped, and when nothing matches, the whole raw text
// becomes the single question.
func parseQuestions(raw string) []string {
	questions := make([]string, 0, maxQuestions)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] != '-' && (line[0] < '0' || line[0] > '9') {
			continue
		}
		if q := strings.TrimLeft(line, "0123456789.- "); q != "" {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		questions = []string{raw}
	}
	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}
