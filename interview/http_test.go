package interview

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(provider *stubProvider) *fiber.App {
	svc, _ := newTestService(provider)
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})
	RegisterRoutes(app, svc)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test(%s) error = %v", path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	payload := make(map[string]any)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &payload); err != nil {
			t.Fatalf("response from %s is not JSON: %q", path, data)
		}
	}
	return resp.StatusCode, payload
}

func TestInterviewFlow(t *testing.T) {
	provider := &stubProvider{replies: []string{"Explain REST.", "Score: 7/10"}}
	app := newTestApp(provider)

	status, body := post(t, app, "/start_interview", `{"user_id":"u1","role":"backend engineer"}`)
	if status != http.StatusOK {
		t.Fatalf("start_interview status = %d, want 200 (body: %v)", status, body)
	}
	if body["message"] != "Interview started" || body["role"] != "backend engineer" {
		t.Errorf("start_interview body = %v", body)
	}
	if id, _ := body["interview_id"].(string); id == "" {
		t.Error("start_interview did not return an interview_id")
	}

	status, body = post(t, app, "/ask_question", `{"user_id":"u1"}`)
	if status != http.StatusOK {
		t.Fatalf("ask_question status = %d, want 200 (body: %v)", status, body)
	}
	if body["question"] != "Explain REST." {
		t.Errorf("ask_question body = %v", body)
	}

	status, body = post(t, app, "/submit_answer", `{"user_id":"u1","answer":"REST is stateless."}`)
	if status != http.StatusOK {
		t.Fatalf("submit_answer status = %d, want 200 (body: %v)", status, body)
	}
	if body["feedback"] != "Score: 7/10" {
		t.Errorf("submit_answer body = %v", body)
	}

	status, body = post(t, app, "/end_interview", `{"user_id":"u1"}`)
	if status != http.StatusOK {
		t.Fatalf("end_interview status = %d, want 200 (body: %v)", status, body)
	}
	if body["message"] != "Interview ended" {
		t.Errorf("end_interview body = %v", body)
	}

	// The session is gone, so the next question must fail.
	status, body = post(t, app, "/ask_question", `{"user_id":"u1"}`)
	if status != http.StatusBadRequest {
		t.Errorf("ask_question after end status = %d, want 400 (body: %v)", status, body)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("ask_question after end returned no error message")
	}
}

func TestStartInterviewValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"role":"backend engineer"}`},
		{"missing role", `{"user_id":"u1"}`},
		{"empty body", `{}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&stubProvider{})

			status, body := post(t, app, "/start_interview", tt.body)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (body: %v)", status, body)
			}
			if msg, _ := body["error"].(string); msg == "" {
				t.Error("error message missing from response")
			}
		})
	}
}

func TestAskQuestionUnknownUser(t *testing.T) {
	provider := &stubProvider{}
	app := newTestApp(provider)

	status, body := post(t, app, "/ask_question", `{"user_id":"ghost"}`)
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 (body: %v)", status, body)
	}
	if provider.calls != 0 {
		t.Errorf("upstream calls = %d, want 0", provider.calls)
	}
}

func TestSubmitAnswerUpstreamFailure(t *testing.T) {
	provider := &stubProvider{replies: []string{"Explain REST."}}
	app := newTestApp(provider)

	post(t, app, "/start_interview", `{"user_id":"u1","role":"backend engineer"}`)
	post(t, app, "/ask_question", `{"user_id":"u1"}`)

	provider.err = io.ErrUnexpectedEOF
	status, body := post(t, app, "/submit_answer", `{"user_id":"u1","answer":"REST is stateless."}`)
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 (body: %v)", status, body)
	}
	if msg, _ := body["error"].(string); msg == "" {
		t.Error("error message missing from response")
	}
}

func TestEndInterviewIdempotentHTTP(t *testing.T) {
	app := newTestApp(&stubProvider{})

	for i := 0; i < 2; i++ {
		status, body := post(t, app, "/end_interview", `{"user_id":"never-started"}`)
		if status != http.StatusOK {
			t.Errorf("end_interview call %d status = %d, want 200 (body: %v)", i+1, status, body)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test(/health) error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	if body["status"] != "healthy" {
		t.Errorf("health body = %v", body)
	}
}
