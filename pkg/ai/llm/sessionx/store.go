package sessionx

import (
	"context"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
)

// Store persists interview sessions keyed by user ID.
//
// Create overwrites any prior interview for the user (last start wins).
// Get and Append fail with ErrNoActiveInterview when the user has no
// session. Remove is idempotent. Implementations serialize map access but
// do not make the append/call/append sequence of a turn transactional;
// concurrent turns for the same user can interleave appends.
type Store interface {
	Create(ctx context.Context, userID, role string, system llm.Message) (*Interview, error)
	Get(ctx context.Context, userID string) (*Interview, error)
	Append(ctx context.Context, userID string, messages ...llm.Message) error
	Remove(ctx context.Context, userID string) error
	Ping(ctx context.Context) error
}
