package sessionx

import (
	"context"
	"sync"
	"time"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/logx"
)

// MemoryStore keeps interviews in a process-local map. State lives for the
// process lifetime and is lost on restart.
type MemoryStore struct {
	mu         sync.RWMutex
	interviews map[string]*Interview
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		interviews: make(map[string]*Interview),
	}
}

// Create inserts a new interview, replacing any prior one for the user
func (s *MemoryStore) Create(ctx context.Context, userID, role string, system llm.Message) (*Interview, error) {
	interview := NewInterview(userID, role, system)

	s.mu.Lock()
	s.interviews[userID] = interview
	s.mu.Unlock()

	logx.WithFields(logx.Fields{
		"interview_id": interview.ID,
		"user_id":      userID,
		"job_role":     role,
	}).Info("Interview session created")

	return interview.Clone(), nil
}

// Get returns a copy of the user's interview
func (s *MemoryStore) Get(ctx context.Context, userID string) (*Interview, error) {
	s.mu.RLock()
	interview, ok := s.interviews[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNoActiveInterview()
	}
	return interview.Clone(), nil
}

// Append adds messages to the end of the user's transcript
func (s *MemoryStore) Append(ctx context.Context, userID string, messages ...llm.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	interview, ok := s.interviews[userID]
	if !ok {
		return ErrNoActiveInterview()
	}

	interview.Messages = append(interview.Messages, messages...)
	interview.UpdatedAt = time.Now()
	return nil
}

// Remove deletes the user's interview; removing an absent one is not an error
func (s *MemoryStore) Remove(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.interviews, userID)
	s.mu.Unlock()

	logx.WithField("user_id", userID).Debug("Interview session removed")
	return nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Count returns the number of active interviews
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.interviews)
}
