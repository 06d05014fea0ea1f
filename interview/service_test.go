package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx"
	"github.com/Abraxas-365/interviewer/pkg/errx"
)

// stubProvider replays canned completions and records every upstream call
type stubProvider struct {
	replies      []string
	err          error
	calls        int
	lastMessages []llm.Message
	lastOptions  llm.Options
}

func (p *stubProvider) Chat(ctx context.Context, messages []llm.Message, options *llm.Options) (*llm.Response, error) {
	p.calls++
	p.lastMessages = append([]llm.Message(nil), messages...)
	p.lastOptions = *options

	if p.err != nil {
		return nil, llm.ErrUpstreamFailure(p.err)
	}

	reply := "ok"
	if len(p.replies) > 0 {
		reply = p.replies[0]
		p.replies = p.replies[1:]
	}
	return &llm.Response{Message: llm.NewAssistantMessage(reply)}, nil
}

func newTestService(provider *stubProvider) (*Service, sessionx.Store) {
	store := sessionx.NewMemoryStore()
	svc := NewService(Config{
		Store:     store,
		LLMClient: llm.NewClient(provider),
		Model:     "gpt-4",
		Question:  GenerationParams{Temperature: 0.2, MaxTokens: 100},
		Feedback:  GenerationParams{Temperature: 0.3, MaxTokens: 150},
	})
	return svc, store
}

func TestStartInterviewSeedsTranscript(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(&stubProvider{})

	interview, err := svc.StartInterview(ctx, "u1", "backend engineer")
	if err != nil {
		t.Fatalf("StartInterview() error = %v", err)
	}
	if interview.Role != "backend engineer" {
		t.Errorf("Role = %q, want %q", interview.Role, "backend engineer")
	}

	got, _ := store.Get(ctx, "u1")
	if len(got.Messages) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(got.Messages))
	}
	system := got.Messages[0]
	if system.Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", system.Role)
	}
	if !strings.Contains(system.Content, "backend engineer") {
		t.Errorf("system prompt does not name the job role: %q", system.Content)
	}
	if !strings.Contains(system.Content, "one question at a time") {
		t.Errorf("system prompt missing interviewer rules: %q", system.Content)
	}
}

func TestAskQuestion(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{replies: []string{"Explain REST."}}
	svc, store := newTestService(provider)

	svc.StartInterview(ctx, "u1", "backend engineer")

	question, err := svc.AskQuestion(ctx, "u1")
	if err != nil {
		t.Fatalf("AskQuestion() error = %v", err)
	}
	if question != "Explain REST." {
		t.Errorf("question = %q, want %q", question, "Explain REST.")
	}
	if provider.lastOptions.Model != "gpt-4" {
		t.Errorf("model = %q, want gpt-4", provider.lastOptions.Model)
	}
	if provider.lastOptions.Temperature != 0.2 || provider.lastOptions.MaxTokens != 100 {
		t.Errorf("question generation params = %+v", provider.lastOptions)
	}
	if len(provider.lastMessages) != 1 {
		t.Errorf("upstream received %d messages, want full transcript of 1", len(provider.lastMessages))
	}

	got, _ := store.Get(ctx, "u1")
	if len(got.Messages) != 2 || got.Messages[1].Role != llm.RoleAssistant {
		t.Errorf("transcript after question = %+v, want system+assistant", got.Messages)
	}
}

func TestAskQuestionWithoutSession(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := newTestService(provider)

	_, err := svc.AskQuestion(context.Background(), "nobody")
	if err == nil {
		t.Fatal("AskQuestion() without session returned nil error")
	}
	if !errx.IsType(err, errx.TypeNotFound) {
		t.Errorf("error type = %v, want not-found", err)
	}
	if provider.calls != 0 {
		t.Errorf("upstream calls = %d, want 0", provider.calls)
	}
}

func TestSubmitAnswer(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{replies: []string{"Explain REST.", "Score: 7/10"}}
	svc, store := newTestService(provider)

	svc.StartInterview(ctx, "u1", "backend engineer")
	svc.AskQuestion(ctx, "u1")

	feedback, err := svc.SubmitAnswer(ctx, "u1", "REST is stateless.")
	if err != nil {
		t.Fatalf("SubmitAnswer() error = %v", err)
	}
	if feedback != "Score: 7/10" {
		t.Errorf("feedback = %q, want %q", feedback, "Score: 7/10")
	}
	if provider.lastOptions.Temperature != 0.3 || provider.lastOptions.MaxTokens != 150 {
		t.Errorf("feedback generation params = %+v", provider.lastOptions)
	}

	// system + question + answer + rubric + feedback
	got, _ := store.Get(ctx, "u1")
	wantRoles := []string{llm.RoleSystem, llm.RoleAssistant, llm.RoleUser, llm.RoleSystem, llm.RoleAssistant}
	if len(got.Messages) != len(wantRoles) {
		t.Fatalf("transcript length = %d, want %d", len(got.Messages), len(wantRoles))
	}
	for i, role := range wantRoles {
		if got.Messages[i].Role != role {
			t.Errorf("message[%d].Role = %q, want %q", i, got.Messages[i].Role, role)
		}
	}
	if !strings.Contains(got.Messages[3].Content, "score out of 10") {
		t.Errorf("rubric message = %q, want scoring rubric", got.Messages[3].Content)
	}

	// The upstream call saw answer and rubric but not its own reply.
	if len(provider.lastMessages) != 4 {
		t.Errorf("upstream received %d messages, want 4", len(provider.lastMessages))
	}
}

func TestSubmitAnswerUpstreamFailureKeepsAnswerAndRubric(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{}
	svc, store := newTestService(provider)

	svc.StartInterview(ctx, "u1", "backend engineer")

	provider.err = errors.New("connection reset")
	_, err := svc.SubmitAnswer(ctx, "u1", "REST is stateless.")
	if err == nil {
		t.Fatal("SubmitAnswer() with failing upstream returned nil error")
	}
	if !errx.IsType(err, errx.TypeExternal) {
		t.Errorf("error type = %v, want external", err)
	}

	// No rollback: answer and rubric stay, the assistant reply is missing.
	got, _ := store.Get(ctx, "u1")
	if len(got.Messages) != 3 {
		t.Fatalf("transcript length after failure = %d, want 3", len(got.Messages))
	}
	if got.Messages[1].Role != llm.RoleUser || got.Messages[2].Role != llm.RoleSystem {
		t.Errorf("transcript tail after failure = %+v", got.Messages[1:])
	}
}

func TestSubmitAnswerWithoutSession(t *testing.T) {
	provider := &stubProvider{}
	svc, _ := newTestService(provider)

	_, err := svc.SubmitAnswer(context.Background(), "nobody", "an answer")
	if err == nil {
		t.Fatal("SubmitAnswer() without session returned nil error")
	}
	if provider.calls != 0 {
		t.Errorf("upstream calls = %d, want 0", provider.calls)
	}
}

func TestEndInterviewIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(&stubProvider{})

	svc.StartInterview(ctx, "u1", "backend engineer")

	if err := svc.EndInterview(ctx, "u1"); err != nil {
		t.Fatalf("EndInterview() error = %v", err)
	}
	if err := svc.EndInterview(ctx, "u1"); err != nil {
		t.Fatalf("second EndInterview() error = %v", err)
	}

	if _, err := svc.AskQuestion(ctx, "u1"); err == nil {
		t.Error("AskQuestion() after EndInterview() returned nil error")
	}
}
