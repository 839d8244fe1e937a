package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"founderkit/internal/models/db_models"
	mem "founderkit/pkg/memcache"
)

const DefaultSessionPrefix = "founderkit:questionnaire:"

// SessionRepository keeps questionnaire sessions between requests. Load
// returns nil, nil for ids that are missing or expired.
type SessionRepository interface {
	Save(ctx context.Context, session *db_models.QuestionnaireSession) error
	Load(ctx context.Context, id string) (*db_models.QuestionnaireSession, error)
	Delete(ctx context.Context, id string) error
}

type sessionConfig struct {
	prefix string
	ttl    time.Duration
}

type SessionOption func(*sessionConfig)

// WithSessionTTL sets the expiration of stored sessions. Zero keeps them
// until they are deleted.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(c *sessionConfig) {
		c.ttl = ttl
	}
}

func WithSessionPrefix(prefix string) SessionOption {
	return func(c *sessionConfig) {
		c.prefix = prefix
	}
}

func newSessionConfig(opts []SessionOption) sessionConfig {
	cfg := sessionConfig{prefix: DefaultSessionPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func encodeSession(session *db_models.QuestionnaireSession) ([]byte, error) {
	if session == nil || session.ID == "" || session.Session == nil {
		return nil, fmt.Errorf("questionnaire session record is incomplete")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

func decodeSession(data []byte) (*db_models.QuestionnaireSession, error) {
	var session db_models.QuestionnaireSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if session.Session == nil {
		return nil, fmt.Errorf("stored session %s has no questionnaire state", session.ID)
	}
	return &session, nil
}

type redisSessionRepository struct {
	client *backend.Client
	sessionConfig
}

func NewRedisSessionRepository(client *backend.Client, opts ...SessionOption) SessionRepository {
	return &redisSessionRepository{
		client:        client,
		sessionConfig: newSessionConfig(opts),
	}
}

func (r *redisSessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *redisSessionRepository) Save(ctx context.Context, session *db_models.QuestionnaireSession) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(session.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Load(ctx context.Context, id string) (*db_models.QuestionnaireSession, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load from redis: %w", err)
	}
	return decodeSession(val)
}

func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

type memorySessionRepository struct {
	store mem.Store
	sessionConfig
}

// NewMemorySessionRepository keeps sessions in process. Used when no Redis
// is configured.
func NewMemorySessionRepository(store mem.Store, opts ...SessionOption) SessionRepository {
	return &memorySessionRepository{
		store:         store,
		sessionConfig: newSessionConfig(opts),
	}
}

func (m *memorySessionRepository) Save(ctx context.Context, session *db_models.QuestionnaireSession) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	m.store.Set(m.prefix+session.ID, data, m.ttl)
	return nil
}

func (m *memorySessionRepository) Load(ctx context.Context, id string) (*db_models.QuestionnaireSession, error) {
	data, ok := m.store.Get(m.prefix + id)
	if !ok {
		return nil, nil
	}
	return decodeSession(data)
}

func (m *memorySessionRepository) Delete(ctx context.Context, id string) error {
	m.store.Delete(m.prefix + id)
	return nil
}
