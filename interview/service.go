// Package interview implements the technical interview simulation flow:
// per-user transcripts, interviewer prompting and answer evaluation via a
// chat completion provider.
package interview

import (
	"context"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx"
	"github.com/Abraxas-365/interviewer/pkg/logx"
)

// GenerationParams tune one kind of chat completion call
type GenerationParams struct {
	Temperature float64
	MaxTokens   int64
}

// Config holds service dependencies and generation parameters
type Config struct {
	Store     sessionx.Store
	LLMClient *llm.Client
	Model     string
	Question  GenerationParams
	Feedback  GenerationParams
}

// Service drives interview sessions
type Service struct {
	store        sessionx.Store
	llmClient    *llm.Client
	questionOpts []llm.Option
	feedbackOpts []llm.Option
}

// NewService creates an interview service
func NewService(cfg Config) *Service {
	return &Service{
		store:     cfg.Store,
		llmClient: cfg.LLMClient,
		questionOpts: []llm.Option{
			llm.WithModel(cfg.Model),
			llm.WithTemperature(cfg.Question.Temperature),
			llm.WithMaxTokens(cfg.Question.MaxTokens),
		},
		feedbackOpts: []llm.Option{
			llm.WithModel(cfg.Model),
			llm.WithTemperature(cfg.Feedback.Temperature),
			llm.WithMaxTokens(cfg.Feedback.MaxTokens),
		},
	}
}

// StartInterview creates a fresh session seeded with the interviewer
// instruction for the given job role. A prior session for the same user is
// replaced.
func (s *Service) StartInterview(ctx context.Context, userID, role string) (*sessionx.Interview, error) {
	system := llm.NewSystemMessage(systemPrompt(role))
	return s.store.Create(ctx, userID, role, system)
}

// AskQuestion sends the full transcript upstream and appends the generated
// question as an assistant message.
func (s *Service) AskQuestion(ctx context.Context, userID string) (string, error) {
	interview, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	response, err := s.llmClient.Chat(ctx, interview.Messages, s.questionOpts...)
	if err != nil {
		logx.WithError(err).WithField("user_id", userID).Error("Question generation failed")
		return "", err
	}

	if err := s.store.Append(ctx, userID, response.Message); err != nil {
		return "", err
	}

	logx.WithFields(logx.Fields{
		"interview_id": interview.ID,
		"user_id":      userID,
		"total_tokens": response.Usage.TotalTokens,
	}).Info("Interview question generated")

	return response.Message.Content, nil
}

// SubmitAnswer records the candidate's answer, injects the scoring rubric as
// a system message and returns the generated feedback. The rubric rides in
// the same transcript so the model scores with full conversational context.
// When the upstream call fails the answer and rubric stay appended; the next
// turn resends the longer transcript.
func (s *Service) SubmitAnswer(ctx context.Context, userID, answer string) (string, error) {
	err := s.store.Append(ctx, userID,
		llm.NewUserMessage(answer),
		llm.NewSystemMessage(feedbackPrompt()),
	)
	if err != nil {
		return "", err
	}

	interview, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	response, err := s.llmClient.Chat(ctx, interview.Messages, s.feedbackOpts...)
	if err != nil {
		logx.WithError(err).WithField("user_id", userID).Error("Feedback generation failed")
		return "", err
	}

	if err := s.store.Append(ctx, userID, response.Message); err != nil {
		return "", err
	}

	logx.WithFields(logx.Fields{
		"interview_id": interview.ID,
		"user_id":      userID,
		"total_tokens": response.Usage.TotalTokens,
	}).Info("Answer feedback generated")

	return response.Message.Content, nil
}

// EndInterview removes the user's session. Ending an absent session succeeds.
func (s *Service) EndInterview(ctx context.Context, userID string) error {
	return s.store.Remove(ctx, userID)
}

// Health reports whether the session store is reachable
func (s *Service) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}
