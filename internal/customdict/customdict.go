// Package customdict persists user-supplied dictionary state in Redis.
package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store keeps custom words in a Redis set and user corrections in a Redis
// hash so they survive restarts.
type Store struct {
	client         *redis.Client
	wordsKey       string
	correctionsKey string
}

// New creates a Store backed by the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, wordsKey: "custom_dict", correctionsKey: "user_corrections"}
}

// AddWord inserts a word into the custom dictionary.
func (s *Store) AddWord(word string) error {
	return s.client.SAdd(context.Background(), s.wordsKey, word).Err()
}

// Words returns all custom dictionary words.
func (s *Store) Words() ([]string, error) {
	return s.client.SMembers(context.Background(), s.wordsKey).Result()
}

// SetCorrection records a misspelled word to correction mapping.
// Last write wins.
func (s *Store) SetCorrection(misspelled, correction string) error {
	return s.client.HSet(context.Background(), s.correctionsKey, misspelled, correction).Err()
}

// Corrections returns all stored user corrections.
func (s *Store) Corrections() (map[string]string, error) {
	return s.client.HGetAll(context.Background(), s.correctionsKey).Result()
}
