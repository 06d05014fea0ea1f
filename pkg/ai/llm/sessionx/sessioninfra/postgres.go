// Postgres-backed session store.
//
// Expected schema:
//
//	CREATE TABLE interviews (
//	    user_id    TEXT PRIMARY KEY,
//	    id         TEXT NOT NULL,
//	    role       TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
//
//	CREATE TABLE interview_messages (
//	    id      BIGSERIAL PRIMARY KEY,
//	    user_id TEXT NOT NULL REFERENCES interviews(user_id) ON DELETE CASCADE,
//	    role    TEXT NOT NULL,
//	    content TEXT NOT NULL
//	);
package sessioninfra

import (
	"context"
	"database/sql"
	"time"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx"
	"github.com/Abraxas-365/interviewer/pkg/logx"
	"github.com/jmoiron/sqlx"
)

// PostgresStore persists interviews in PostgreSQL
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a store backed by the given database handle
func NewPostgresStore(db *sqlx.DB) sessionx.Store {
	logx.Info("PostgreSQL session store initialized")
	return &PostgresStore{db: db}
}

type messageRow struct {
	ID      int64  `db:"id"`
	UserID  string `db:"user_id"`
	Role    string `db:"role"`
	Content string `db:"content"`
}

// Create inserts a new interview, replacing any prior one for the user
func (s *PostgresStore) Create(ctx context.Context, userID, role string, system llm.Message) (*sessionx.Interview, error) {
	interview := sessionx.NewInterview(userID, role, system)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, sessionx.ErrStorageFailure(err)
	}
	defer tx.Rollback()

	// Last start wins: drop any prior interview for this user.
	if _, err := tx.ExecContext(ctx, `DELETE FROM interviews WHERE user_id = $1`, userID); err != nil {
		logx.WithError(err).Error("Failed to clear prior interview")
		return nil, sessionx.ErrStorageFailure(err)
	}

	insertInterview := `
        INSERT INTO interviews (user_id, id, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err = tx.ExecContext(ctx, insertInterview,
		interview.UserID,
		interview.ID,
		interview.Role,
		interview.CreatedAt,
		interview.UpdatedAt,
	)
	if err != nil {
		logx.WithError(err).Error("Failed to create interview")
		return nil, sessionx.ErrStorageFailure(err)
	}

	insertMessage := `INSERT INTO interview_messages (user_id, role, content) VALUES ($1, $2, $3)`
	if _, err := tx.ExecContext(ctx, insertMessage, userID, system.Role, system.Content); err != nil {
		logx.WithError(err).Error("Failed to insert system message")
		return nil, sessionx.ErrStorageFailure(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, sessionx.ErrStorageFailure(err)
	}

	logx.WithFields(logx.Fields{
		"interview_id": interview.ID,
		"user_id":      userID,
		"job_role":     role,
	}).Info("Interview session created")

	return interview, nil
}

// Get returns the user's interview with its full transcript
func (s *PostgresStore) Get(ctx context.Context, userID string) (*sessionx.Interview, error) {
	var interview sessionx.Interview
	query := `SELECT user_id, id, role, created_at, updated_at FROM interviews WHERE user_id = $1`

	err := sqlx.GetContext(ctx, s.db, &interview, query, userID)
	if err == sql.ErrNoRows {
		return nil, sessionx.ErrNoActiveInterview()
	}
	if err != nil {
		logx.WithError(err).Error("Failed to get interview")
		return nil, sessionx.ErrStorageFailure(err)
	}

	var rows []messageRow
	messagesQuery := `SELECT id, user_id, role, content FROM interview_messages WHERE user_id = $1 ORDER BY id ASC`
	if err := sqlx.SelectContext(ctx, s.db, &rows, messagesQuery, userID); err != nil {
		logx.WithError(err).Error("Failed to get interview messages")
		return nil, sessionx.ErrStorageFailure(err)
	}

	interview.Messages = make([]llm.Message, 0, len(rows))
	for _, row := range rows {
		interview.Messages = append(interview.Messages, llm.Message{
			Role:    row.Role,
			Content: row.Content,
		})
	}

	return &interview, nil
}

// Append adds messages to the end of the user's transcript
func (s *PostgresStore) Append(ctx context.Context, userID string, messages ...llm.Message) error {
	var exists bool
	err := sqlx.GetContext(ctx, s.db, &exists,
		`SELECT EXISTS (SELECT 1 FROM interviews WHERE user_id = $1)`, userID)
	if err != nil {
		logx.WithError(err).Error("Failed to check interview existence")
		return sessionx.ErrStorageFailure(err)
	}
	if !exists {
		return sessionx.ErrNoActiveInterview()
	}

	insert := `INSERT INTO interview_messages (user_id, role, content) VALUES ($1, $2, $3)`
	for _, msg := range messages {
		if _, err := s.db.ExecContext(ctx, insert, userID, msg.Role, msg.Content); err != nil {
			logx.WithError(err).Error("Failed to append message")
			return sessionx.ErrStorageFailure(err)
		}
	}

	touch := `UPDATE interviews SET updated_at = $1 WHERE user_id = $2`
	_, _ = s.db.ExecContext(ctx, touch, time.Now(), userID)
	return nil
}

// Remove deletes the user's interview; removing an absent one is not an error
func (s *PostgresStore) Remove(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM interviews WHERE user_id = $1`, userID); err != nil {
		logx.WithError(err).Error("Failed to delete interview")
		return sessionx.ErrStorageFailure(err)
	}

	logx.WithField("user_id", userID).Debug("Interview session removed")
	return nil
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
