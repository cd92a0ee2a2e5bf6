package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"contact-map-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the ContactStore port.
// The closest rendition of the original key/value store: one key, one JSON
// blob, overwritten wholesale on every Save.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

// Load returns the saved contact list, or the seed list when the key is
// absent or holds an unparseable value.
func (s *RedisStore) Load(ctx context.Context) ([]domain.Contact, error) {
	if s.Client == nil {
		return nil, errors.New("redis store: client is nil")
	}

	blob, err := s.Client.Get(ctx, StoreKey).Result()
	if errors.Is(err, redis.Nil) {
		return SeedContacts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load contacts: redis get %q: %w", StoreKey, err)
	}

	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(blob), &contacts); err != nil {
		log.Printf("redis store: unparseable blob, using seed list: %v", err)
		return SeedContacts(), nil
	}

	return contacts, nil
}

// Save stores the full list under the single store key. Values never expire.
func (s *RedisStore) Save(ctx context.Context, contacts []domain.Contact) error {
	if s.Client == nil {
		return errors.New("redis store: client is nil")
	}

	blob, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("save contacts: marshal list: %w", err)
	}

	if err := s.Client.Set(ctx, StoreKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("save contacts: redis set %q: %w", StoreKey, err)
	}

	return nil
}
