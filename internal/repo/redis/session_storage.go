// Package redis persists the console session in Redis, for shared
// workstations where several console processes must observe one sign-in.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

const (
	tokenKey = "console:token"
	userKey  = "console:user"
)

func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

type SessionStorage struct {
	client *goredis.Client
}

func NewSessionStorage(client *goredis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

func (s *SessionStorage) ReadToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get token key: %w", err)
	}
	return token, nil
}

func (s *SessionStorage) ReadUser(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, userKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user key: %w", err)
	}
	return raw, nil
}

func (s *SessionStorage) WriteSession(ctx context.Context, token string, user []byte) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey, token, 0)
	pipe.Set(ctx, userKey, user, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write session keys: %w", err)
	}
	return nil
}

func (s *SessionStorage) WriteUser(ctx context.Context, user []byte) error {
	if err := s.client.Set(ctx, userKey, user, 0).Err(); err != nil {
		return fmt.Errorf("write user key: %w", err)
	}
	return nil
}

func (s *SessionStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, tokenKey, userKey).Err(); err != nil {
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}
