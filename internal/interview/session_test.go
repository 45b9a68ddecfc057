package interview

import (
	"context"
	"strings"
	"testing"

	"github.com/mkravets/talentscout/internal/ai"
)

type stubGenerator struct {
	questions []string
	calls     int
}

func (s *stubGenerator) GenerateQuestions(context.Context, []string) []string {
	s.calls++
	return s.questions
}

type stubEvaluator struct {
	score    int
	feedback string
}

func (s *stubEvaluator) EvaluateAnswer(_ context.Context, _, _ string) ai.Evaluation {
	return ai.Evaluation{Score: s.score, Feedback: s.feedback}
}

var intakeInputs = []string{
	"Jane Doe",
	"jane@example.com",
	"+12345678901",
	"4",
	"Backend Engineer",
	"Berlin",
	"Python, Django",
}

func collected(t *testing.T) Session {
	t.Helper()

	session := New()
	for _, input := range intakeInputs {
		var reply Reply
		session, reply = session.SubmitField(input)
		if len(reply.Messages) == 0 {
			t.Fatalf("expected a reply for input %q", input)
		}
	}

	if session.Phase != PhaseConfirming {
		t.Fatalf("expected confirming phase after intake, got %q", session.Phase)
	}
	return session
}

func TestSessionCollectsAllFields(t *testing.T) {
	session := collected(t)

	c := session.Candidate
	if c.Name != "Jane Doe" || c.Email != "jane@example.com" || c.Phone != "+12345678901" {
		t.Fatalf("unexpected profile: %+v", c)
	}
	if c.Experience != 4 || c.Position != "Backend Engineer" || c.Location != "Berlin" {
		t.Fatalf("unexpected profile: %+v", c)
	}
	if len(c.TechStack) != 2 || c.TechStack[0] != "Python" || c.TechStack[1] != "Django" {
		t.Fatalf("unexpected tech stack: %v", c.TechStack)
	}
}

func TestSessionInvalidFieldRepeatsSamePrompt(t *testing.T) {
	session := New()
	session, _ = session.SubmitField("Jane Doe")

	before := session.FieldIndex
	var reply Reply
	session, reply = session.SubmitField("not-an-email")

	if session.FieldIndex != before {
		t.Fatalf("field index advanced on invalid input: %d", session.FieldIndex)
	}
	if session.Phase != PhaseCollectingInfo {
		t.Fatalf("phase changed on invalid input: %q", session.Phase)
	}
	if len(reply.Messages) != 1 || !strings.Contains(reply.Messages[0], "Email Address") {
		t.Fatalf("expected fallback prompt for the email field, got %v", reply.Messages)
	}

	// Retries are unlimited; a later valid input still advances.
	session, _ = session.SubmitField("still invalid")
	session, _ = session.SubmitField("jane@example.com")
	if session.FieldIndex != 2 {
		t.Fatalf("expected advance after valid retry, got %d", session.FieldIndex)
	}
}

func TestSessionExitDuringPhoneCollection(t *testing.T) {
	session := New()
	session, _ = session.SubmitField("Jane Doe")
	session, _ = session.SubmitField("jane@example.com")

	session, reply := session.SubmitField("  EXIT ")

	if session.Phase != PhaseCompleted {
		t.Fatalf("expected completed phase, got %q", session.Phase)
	}
	if len(session.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(session.Results))
	}
	if len(session.Candidate.TechStack) != 0 {
		t.Fatalf("expected no tech stack recorded, got %v", session.Candidate.TechStack)
	}
	if len(reply.Messages) != 1 || reply.Messages[0] != goodbyeMessage {
		t.Fatalf("unexpected reply: %v", reply.Messages)
	}
}

func TestSessionConfirmStartsInterview(t *testing.T) {
	session := collected(t)
	gen := &stubGenerator{questions: []string{"Q1", "Q2"}}

	session, reply := session.Confirm(context.Background(), gen)

	if session.Phase != PhaseInterviewing {
		t.Fatalf("expected interviewing phase, got %q", session.Phase)
	}
	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
	if session.QuestionIndex != 0 || len(session.Questions) != 2 {
		t.Fatalf("unexpected question state: %+v", session)
	}
	if len(reply.Messages) == 0 || !strings.Contains(reply.Messages[len(reply.Messages)-1], "Q1") {
		t.Fatalf("expected first question in reply, got %v", reply.Messages)
	}
}

func TestSessionConfirmStaysOnErrorList(t *testing.T) {
	session := collected(t)
	gen := &stubGenerator{questions: []string{"Error generating questions: boom"}}

	session, reply := session.Confirm(context.Background(), gen)

	if session.Phase != PhaseConfirming {
		t.Fatalf("expected to stay in confirming phase, got %q", session.Phase)
	}
	if len(session.Questions) != 0 {
		t.Fatalf("error list must not be stored as questions: %v", session.Questions)
	}
	if len(reply.Messages) != 1 || reply.Messages[0] != generationError {
		t.Fatalf("unexpected reply: %v", reply.Messages)
	}
}

func TestSessionAnswersAccumulateAndComplete(t *testing.T) {
	session := collected(t)
	gen := &stubGenerator{questions: []string{"Q1", "Q2"}}
	eval := &stubEvaluator{score: 7, feedback: "decent"}
	ctx := context.Background()

	session, _ = session.Confirm(ctx, gen)

	session, reply := session.SubmitAnswer(ctx, eval, "first answer")
	if session.Phase != PhaseInterviewing || session.QuestionIndex != 1 {
		t.Fatalf("unexpected state after first answer: %+v", session)
	}
	if !strings.Contains(reply.Messages[len(reply.Messages)-1], "Q2") {
		t.Fatalf("expected next question in reply, got %v", reply.Messages)
	}

	session, reply = session.SubmitAnswer(ctx, eval, "second answer")
	if session.Phase != PhaseCompleted {
		t.Fatalf("expected completed phase, got %q", session.Phase)
	}

	if len(session.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(session.Results))
	}
	first := session.Results[0]
	if first.Question != "Q1" || first.Answer != "first answer" || first.Score != 7 || first.Feedback != "decent" {
		t.Fatalf("unexpected result: %+v", first)
	}

	last := reply.Messages[len(reply.Messages)-1]
	if last != closingMessage {
		t.Fatalf("expected closing message last, got %q", last)
	}
}

func TestSessionRejectsBlankAnswer(t *testing.T) {
	session := collected(t)
	gen := &stubGenerator{questions: []string{"Q1"}}
	eval := &stubEvaluator{score: 5, feedback: "ok"}
	ctx := context.Background()

	session, _ = session.Confirm(ctx, gen)

	session, reply := session.SubmitAnswer(ctx, eval, "   \n ")
	if session.QuestionIndex != 0 || len(session.Results) != 0 {
		t.Fatalf("blank answer must not change state: %+v", session)
	}
	if len(reply.Messages) != 1 || reply.Messages[0] != emptyAnswerMsg {
		t.Fatalf("unexpected reply: %v", reply.Messages)
	}
}

func TestSessionSummary(t *testing.T) {
	session := Session{
		Phase: PhaseCompleted,
		Results: []Result{
			{Question: "Q1", Score: 8, Feedback: "great"},
			{Question: "Q2", Score: 5, Feedback: "ok"},
		},
	}

	summary := session.Summary()
	if summary.Questions != 2 {
		t.Fatalf("expected 2 questions, got %d", summary.Questions)
	}
	if summary.Average != 6.5 {
		t.Fatalf("expected average 6.5, got %v", summary.Average)
	}
	if summary.Label != "Good" {
		t.Fatalf("expected Good label, got %q", summary.Label)
	}

	text := session.SummaryText()
	if !strings.Contains(text, "Average Score: 6.5/10") || !strings.Contains(text, "Overall Performance: Good") {
		t.Fatalf("unexpected summary text: %q", text)
	}
	if !strings.Contains(text, "Question 1: Q1") {
		t.Fatalf("expected per-question details, got %q", text)
	}
}

func TestSessionSummaryTruncatesLongQuestions(t *testing.T) {
	long := strings.Repeat("q", 80)
	session := Session{
		Phase:   PhaseCompleted,
		Results: []Result{{Question: long, Score: 9, Feedback: "x"}},
	}

	text := session.SummaryText()
	if !strings.Contains(text, strings.Repeat("q", 50)+"...") {
		t.Fatalf("expected truncated question preview, got %q", text)
	}
	if strings.Contains(text, strings.Repeat("q", 51)) {
		t.Fatalf("question preview not truncated: %q", text)
	}
}

func TestSessionTranscriptRecordsDialogue(t *testing.T) {
	session := collected(t)

	// Prompt and candidate input per field, in order.
	if len(session.Transcript) != len(intakeInputs)*2 {
		t.Fatalf("expected %d transcript entries, got %d", len(intakeInputs)*2, len(session.Transcript))
	}
	if session.Transcript[0].FromCandidate {
		t.Fatal("first transcript entry must be the assistant prompt")
	}
	if !session.Transcript[1].FromCandidate || session.Transcript[1].Text != "Jane Doe" {
		t.Fatalf("unexpected transcript entry: %+v", session.Transcript[1])
	}
}

func TestSessionQuit(t *testing.T) {
	session := collected(t)

	session, reply := session.Quit()
	if session.Phase != PhaseCompleted {
		t.Fatalf("expected completed phase, got %q", session.Phase)
	}
	if len(reply.Messages) != 1 || reply.Messages[0] != goodbyeMessage {
		t.Fatalf("unexpected reply: %v", reply.Messages)
	}

	// Quit on a completed session is a no-op.
	session, reply = session.Quit()
	if len(reply.Messages) != 0 {
		t.Fatalf("expected no reply, got %v", reply.Messages)
	}
}
