package dictionary

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client to keep user-added dictionary words.
// Words are stored per language in a Redis set.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a Store on top of the provided Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, prefix: "caesar:words:"}
}

func (s *Store) key(lang string) string { return s.prefix + lang }

// Add inserts a word into the user dictionary for the language.
func (s *Store) Add(ctx context.Context, lang, word string) error {
	return s.client.SAdd(ctx, s.key(lang), word).Err()
}

// Remove deletes a word from the user dictionary.
func (s *Store) Remove(ctx context.Context, lang, word string) error {
	return s.client.SRem(ctx, s.key(lang), word).Err()
}

// All returns every word stored for the language.
func (s *Store) All(ctx context.Context, lang string) ([]string, error) {
	return s.client.SMembers(ctx, s.key(lang)).Result()
}

// Count returns the number of stored words for the language.
func (s *Store) Count(ctx context.Context, lang string) (int64, error) {
	return s.client.SCard(ctx, s.key(lang)).Result()
}
