package cache

import (
	"context"
	"errors"
	"fmt"
	"pathfinder/internal/model"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when an analysis holds the session.
var ErrLocked = errors.New("session is locked")

// SessionCache keeps quiz sessions and their answers in Redis. Session
// metadata is a JSON string; answers live in a hash keyed by question id so
// re-answering a question overwrites in place.
type SessionCache interface {
	Save(ctx context.Context, session *model.QuizSession) error
	Get(ctx context.Context, id string) (*model.QuizSession, error)
	SaveAnswer(ctx context.Context, session *model.QuizSession, questionID int, answer string) error
	Lock(ctx context.Context, id string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, id string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionCache(client *redis.Client, ttl time.Duration) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id string) string { return fmt.Sprintf("session:%s", id) }
func answersKey(id string) string { return fmt.Sprintf("session:%s:answers", id) }
func lockKey(id string) string    { return fmt.Sprintf("session:%s:lock", id) }

// Save stores the session metadata. Answers are not written here.
func (c *sessionCache) Save(ctx context.Context, session *model.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), data, c.ttl)
		pipe.Expire(ctx, answersKey(session.ID), c.ttl)
		return nil
	})
	return err
}

// Get returns the session with its answers, or nil if it does not exist.
func (c *sessionCache) Get(ctx context.Context, id string) (*model.QuizSession, error) {
	data, err := c.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}

	raw, err := c.client.HGetAll(ctx, answersKey(id)).Result()
	if err != nil {
		return nil, err
	}
	session.Answers = make(model.AnswerMap, len(raw))
	for field, answer := range raw {
		qid, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		session.Answers[qid] = answer
	}
	return &session, nil
}

// SaveAnswer writes one answer and the session metadata in a single
// transaction that only commits while no analysis holds the session. A claim
// taken between the check and the commit aborts the write with ErrLocked.
func (c *sessionCache) SaveAnswer(ctx context.Context, session *model.QuizSession, questionID int, answer string) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	id := session.ID
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		held, err := tx.Exists(ctx, lockKey(id)).Result()
		if err != nil {
			return err
		}
		if held > 0 {
			return ErrLocked
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, answersKey(id), strconv.Itoa(questionID), answer)
			pipe.Expire(ctx, answersKey(id), c.ttl)
			pipe.Set(ctx, sessionKey(id), data, c.ttl)
			return nil
		})
		return err
	}, lockKey(id))
	if errors.Is(err, redis.TxFailedErr) {
		return ErrLocked
	}
	return err
}

// Lock claims the session for one analysis run. It reports false if another
// run holds the claim.
func (c *sessionCache) Lock(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, lockKey(id), "1", ttl).Result()
}

func (c *sessionCache) Unlock(ctx context.Context, id string) error {
	return c.client.Del(ctx, lockKey(id)).Err()
}
