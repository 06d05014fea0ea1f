package sessioninfra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abraxas-365/interviewer/pkg/ai/llm"
	"github.com/Abraxas-365/interviewer/pkg/ai/llm/sessionx"
	"github.com/Abraxas-365/interviewer/pkg/logx"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "interview:"

// RedisStore persists interviews as one JSON document per user. Entries
// carry no TTL; sessions live until explicitly removed.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given Redis client
func NewRedisStore(client *redis.Client) sessionx.Store {
	logx.Info("Redis session store initialized")
	return &RedisStore{client: client}
}

func redisKey(userID string) string {
	return redisKeyPrefix + userID
}

// Create inserts a new interview, replacing any prior one for the user
func (s *RedisStore) Create(ctx context.Context, userID, role string, system llm.Message) (*sessionx.Interview, error) {
	interview := sessionx.NewInterview(userID, role, system)
	if err := s.save(ctx, interview); err != nil {
		return nil, err
	}

	logx.WithFields(logx.Fields{
		"interview_id": interview.ID,
		"user_id":      userID,
		"job_role":     role,
	}).Info("Interview session created")

	return interview, nil
}

// Get returns the user's interview
func (s *RedisStore) Get(ctx context.Context, userID string) (*sessionx.Interview, error) {
	data, err := s.client.Get(ctx, redisKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sessionx.ErrNoActiveInterview()
	}
	if err != nil {
		logx.WithError(err).Error("Failed to read interview from Redis")
		return nil, sessionx.ErrStorageFailure(err)
	}

	var interview sessionx.Interview
	if err := json.Unmarshal(data, &interview); err != nil {
		logx.WithError(err).Error("Failed to decode interview document")
		return nil, sessionx.ErrStorageFailure(err)
	}
	return &interview, nil
}

// Append adds messages to the end of the user's transcript
func (s *RedisStore) Append(ctx context.Context, userID string, messages ...llm.Message) error {
	interview, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	interview.Messages = append(interview.Messages, messages...)
	interview.UpdatedAt = time.Now()
	return s.save(ctx, interview)
}

// Remove deletes the user's interview; removing an absent one is not an error
func (s *RedisStore) Remove(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, redisKey(userID)).Err(); err != nil {
		logx.WithError(err).Error("Failed to delete interview from Redis")
		return sessionx.ErrStorageFailure(err)
	}

	logx.WithField("user_id", userID).Debug("Interview session removed")
	return nil
}

// Ping checks Redis connectivity
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) save(ctx context.Context, interview *sessionx.Interview) error {
	data, err := json.Marshal(interview)
	if err != nil {
		return sessionx.ErrStorageFailure(err)
	}

	if err := s.client.Set(ctx, redisKey(interview.UserID), data, 0).Err(); err != nil {
		logx.WithError(err).Error("Failed to write interview to Redis")
		return sessionx.ErrStorageFailure(err)
	}
	return nil
}
