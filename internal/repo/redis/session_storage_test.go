package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newStorageForTest(t *testing.T) *SessionStorage {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStorage(client)
}

func TestAbsentKeysReadAsEmpty(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	token, err := storage.ReadToken(ctx)
	if err != nil || token != "" {
		t.Fatalf("absent token should read empty: %q err=%v", token, err)
	}
	user, err := storage.ReadUser(ctx)
	if err != nil || user != nil {
		t.Fatalf("absent user should read nil: %q err=%v", user, err)
	}
}

func TestWriteSessionRoundTrip(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	if err := storage.WriteSession(ctx, "abc", []byte(`{"_id":"u1"}`)); err != nil {
		t.Fatalf("write session: %v", err)
	}

	token, err := storage.ReadToken(ctx)
	if err != nil || token != "abc" {
		t.Fatalf("unexpected token: %q err=%v", token, err)
	}
	user, err := storage.ReadUser(ctx)
	if err != nil || string(user) != `{"_id":"u1"}` {
		t.Fatalf("unexpected user: %q err=%v", user, err)
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	if err := storage.WriteSession(ctx, "abc", []byte(`{}`)); err != nil {
		t.Fatalf("write session: %v", err)
	}
	if err := storage.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := storage.Clear(ctx); err != nil {
		t.Fatalf("clearing cleared storage should not fail: %v", err)
	}

	token, err := storage.ReadToken(ctx)
	if err != nil || token != "" {
		t.Fatalf("token should be gone: %q err=%v", token, err)
	}
	user, err := storage.ReadUser(ctx)
	if err != nil || user != nil {
		t.Fatalf("user should be gone: %q err=%v", user, err)
	}
}

func TestWriteUserLeavesTokenUntouched(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	if err := storage.WriteSession(ctx, "abc", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("write session: %v", err)
	}
	if err := storage.WriteUser(ctx, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("write user: %v", err)
	}

	token, _ := storage.ReadToken(ctx)
	if token != "abc" {
		t.Fatalf("token changed: %q", token)
	}
	user, _ := storage.ReadUser(ctx)
	if string(user) != `{"v":2}` {
		t.Fatalf("user not updated: %q", user)
	}
}
