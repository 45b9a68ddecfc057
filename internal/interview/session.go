// Package interview holds the conversational state machine driving a single
// intake-and-interview session. A Session is an explicit value object:
// transitions take a Session and return the next one, there is no shared
// mutable state. Progression is strictly forward or exit.
package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkravets/talentscout/internal/ai"
	"github.com/mkravets/talentscout/internal/candidate"
)

// Phase is the stage a session is in. Phases only advance.
type Phase string

const (
	PhaseCollectingInfo Phase = "collecting_info"
	PhaseConfirming     Phase = "confirming"
	PhaseInterviewing   Phase = "interviewing"
	PhaseCompleted      Phase = "completed"
)

const (
	startMessage    = "Great! Let's start your technical interview. I'll ask you questions one by one and evaluate your answers."
	goodbyeMessage  = "Session ended. Goodbye!"
	closingMessage  = "Thank you for your time! Your interview results have been recorded. Our team will contact you soon."
	emptyAnswerMsg  = "Please provide an answer before submitting."
	generationError = "Sorry, there was an error generating questions. Please try again later."
)

var exitCommands = []string{"exit", "quit", "bye"}

// Result is the evaluation of one answered question. Never mutated after
// creation.
type Result struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Message is one entry of the session transcript.
type Message struct {
	Text          string
	FromCandidate bool
}

// Session is the full conversational state. The zero value is not usable;
// start with New.
type Session struct {
	Phase         Phase
	FieldIndex    int
	Candidate     candidate.Profile
	Questions     []string
	QuestionIndex int
	Results       []Result
	Transcript    []Message
}

// Reply carries the assistant messages produced by a transition, in display
// order.
type Reply struct {
	Messages []string
}

// New starts a session at the first intake field.
func New() Session {
	return Session{Phase: PhaseCollectingInfo}
}

// Prompt returns the assistant message to display for the current state.
func (s Session) Prompt() string {
	switch s.Phase {
	case PhaseCollectingInfo:
		return candidate.InfoPrompt(candidate.Fields[s.FieldIndex].Label)
	case PhaseConfirming:
		return s.detailsRecap()
	case PhaseInterviewing:
		return fmt.Sprintf("Question %d: %s", s.QuestionIndex+1, s.Questions[s.QuestionIndex])
	default:
		return closingMessage
	}
}

// SubmitField handles one line of input during info collection. Invalid
// input keeps the session on the same field and surfaces the fallback
// prompt; there is no retry limit. Exit keywords complete the session.
func (s Session) SubmitField(input string) (Session, Reply) {
	if s.Phase != PhaseCollectingInfo {
		return s, Reply{}
	}

	if isExit(input) {
		return s.exit()
	}

	field := candidate.Fields[s.FieldIndex]
	input = candidate.Sanitize(input)

	if !s.Candidate.Set(field.Key, input) {
		return s, Reply{Messages: []string{candidate.FallbackPrompt(field.Label)}}
	}

	s.Transcript = append(s.Transcript,
		Message{Text: candidate.InfoPrompt(field.Label)},
		Message{Text: s.Candidate.Get(field.Key), FromCandidate: true},
	)

	s.FieldIndex++
	if s.FieldIndex == len(candidate.Fields) {
		s.Phase = PhaseConfirming
		return s, Reply{Messages: []string{s.detailsRecap()}}
	}

	return s, Reply{Messages: []string{candidate.InfoPrompt(candidate.Fields[s.FieldIndex].Label)}}
}

// Confirm starts the interview: it requests questions for the collected tech
// stack and, when the list is usable, moves to the first question. On an
// error-shaped list the session stays in the confirming phase so the
// candidate can try again.
func (s Session) Confirm(ctx context.Context, generator ai.QuestionGenerator) (Session, Reply) {
	if s.Phase != PhaseConfirming {
		return s, Reply{}
	}

	questions := generator.GenerateQuestions(ctx, s.Candidate.TechStack)
	if len(questions) == 0 || ai.IsErrorList(questions) {
		return s, Reply{Messages: []string{generationError}}
	}

	s.Questions = questions
	s.QuestionIndex = 0
	s.Phase = PhaseInterviewing
	s.Transcript = append(s.Transcript,
		Message{Text: s.detailsRecap()},
		Message{Text: startMessage},
	)

	return s, Reply{Messages: []string{startMessage, s.Prompt()}}
}

// SubmitAnswer evaluates one answer and advances to the next question, or
// completes the session after the last one. Blank answers are rejected
// without a state change. Exit keywords complete the session immediately.
func (s Session) SubmitAnswer(ctx context.Context, evaluator ai.AnswerEvaluator, answer string) (Session, Reply) {
	if s.Phase != PhaseInterviewing {
		return s, Reply{}
	}

	if isExit(answer) {
		return s.exit()
	}

	if strings.TrimSpace(answer) == "" {
		return s, Reply{Messages: []string{emptyAnswerMsg}}
	}

	question := s.Questions[s.QuestionIndex]
	evaluation := evaluator.EvaluateAnswer(ctx, question, answer)

	s.Results = append(s.Results, Result{
		Question: question,
		Answer:   answer,
		Score:    evaluation.Score,
		Feedback: evaluation.Feedback,
	})

	scoreLine := fmt.Sprintf("Score: %d/10", evaluation.Score)
	feedbackLine := fmt.Sprintf("Feedback: %s", evaluation.Feedback)

	s.Transcript = append(s.Transcript,
		Message{Text: s.Prompt()},
		Message{Text: answer, FromCandidate: true},
		Message{Text: scoreLine},
		Message{Text: feedbackLine},
	)

	s.QuestionIndex++
	if s.QuestionIndex == len(s.Questions) {
		s.Phase = PhaseCompleted
		return s, Reply{Messages: []string{scoreLine, feedbackLine, s.SummaryText(), closingMessage}}
	}

	return s, Reply{Messages: []string{scoreLine, feedbackLine, s.Prompt()}}
}

// Quit ends the session from any input-accepting state, recording nothing.
func (s Session) Quit() (Session, Reply) {
	if s.Phase == PhaseCompleted {
		return s, Reply{}
	}
	return s.exit()
}

func (s Session) exit() (Session, Reply) {
	s.Phase = PhaseCompleted
	return s, Reply{Messages: []string{goodbyeMessage}}
}

func (s Session) detailsRecap() string {
	var b strings.Builder
	b.WriteString("Here are the details you provided:\n")
	for _, field := range candidate.Fields {
		fmt.Fprintf(&b, "%s: %s\n", field.Label, s.Candidate.Get(field.Key))
	}
	return strings.TrimRight(b.String(), "\n")
}

func isExit(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, command := range exitCommands {
		if input == command {
			return true
		}
	}
	return false
}
