package thread

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists compose state between requests. A missing entry is not an
// error; callers start from a fresh idle state.
type Store interface {
	Load(ctx context.Context, visitorID, page string) (*State, error)
	Save(ctx context.Context, visitorID, page string, state *State) error
}

func stateKey(visitorID, page string) string {
	return fmt.Sprintf("thread:view:%s:%s", visitorID, page)
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, visitorID, page string) (*State, error) {
	data, err := s.client.Get(ctx, stateKey(visitorID, page)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

func (s *redisStore) Save(ctx context.Context, visitorID, page string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, stateKey(visitorID, page), data, s.ttl).Err()
}

// memoryStore backs development setups without redis.
type memoryStore struct {
	mu     sync.Mutex
	states map[string]State
}

func NewMemoryStore() Store {
	return &memoryStore{states: make(map[string]State)}
}

func (s *memoryStore) Load(ctx context.Context, visitorID, page string) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[stateKey(visitorID, page)]
	if !ok {
		return nil, nil
	}
	copied := state
	return &copied, nil
}

func (s *memoryStore) Save(ctx context.Context, visitorID, page string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[stateKey(visitorID, page)] = *state
	return nil
}
