// Package sessionx manages per-user interview transcripts.
package sessionx

import (
	"time"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/google/uuid"
)

// InterviewID is a unique identifier for an interview session
type InterviewID string

// NewInterviewID generates a new interview ID
func NewInterviewID() InterviewID {
	return InterviewID("iv_" + uuid.New().String())
}

// Interview is one user's interview session: metadata plus the ordered
// transcript. The first message is always the interviewer system instruction.
type Interview struct {
	ID        InterviewID   `json:"id" db:"id"`
	UserID    string        `json:"user_id" db:"user_id"`
	Role      string        `json:"role" db:"role"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
	Messages  []llm.Message `json:"messages" db:"-"`
}

// NewInterview creates an interview seeded with the system instruction
func NewInterview(userID, role string, system llm.Message) *Interview {
	now := time.Now()
	return &Interview{
		ID:        NewInterviewID(),
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []llm.Message{system},
	}
}

// Clone returns a deep copy so callers can read the transcript without
// holding store locks
func (iv *Interview) Clone() *Interview {
	cp := *iv
	cp.Messages = make([]llm.Message, len(iv.Messages))
	copy(cp.Messages, iv.Messages)
	return &cp
}
