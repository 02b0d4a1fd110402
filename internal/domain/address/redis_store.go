// internal/domain/address/redis_store.go
package address

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const addressBookKey = "address_book:v1"

// RedisStore persists the address book as a JSON snapshot in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed address book store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load rehydrates the address book. A missing key yields an empty book.
func (s *RedisStore) Load() ([]Address, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := s.client.Get(ctx, addressBookKey).Result()
	if err == redis.Nil {
		return nil, "", nil
	} else if err != nil {
		return nil, "", err
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, "", err
	}
	return snap.Addresses, snap.SelectedID, nil
}

// Save writes the full address book snapshot. No expiration: the book is
// durable until explicitly changed.
func (s *RedisStore) Save(addresses []Address, selectedID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	data, err := json.Marshal(snapshot{Addresses: addresses, SelectedID: selectedID})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, addressBookKey, data, 0).Err()
}
