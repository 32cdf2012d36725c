package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, ttl), mr
}

func TestStoreCreateGet(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	handle, err := store.Create(ctx, Record{
		Email:     "coach@example.com",
		Role:      "trainer",
		TrainerID: "64f1a2b3c4d5e6f7a8b9c0d1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if handle == "" {
		t.Fatal("empty handle")
	}

	rec, err := store.Get(ctx, handle)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Email != "coach@example.com" || rec.Role != "trainer" {
		t.Errorf("record = %+v", rec)
	}
	if rec.TrainerID != "64f1a2b3c4d5e6f7a8b9c0d1" {
		t.Errorf("trainerId = %q", rec.TrainerID)
	}
	if rec.CreatedAt == 0 {
		t.Error("createdAt not stamped")
	}
}

func TestStoreGetUnknownHandle(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	if _, err := store.Get(context.Background(), "no-such-handle"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	handle, err := store.Create(ctx, Record{Email: "a@b.c", Role: "admin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, handle); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session err = %v, want ErrNotFound", err)
	}
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	handle, err := store.Create(ctx, Record{Email: "a@b.c", Role: "admin"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.Delete(ctx, handle); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx, handle); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := store.Delete(ctx, ""); err != nil {
		t.Fatalf("empty handle delete: %v", err)
	}

	if _, err := store.Get(ctx, handle); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted session err = %v, want ErrNotFound", err)
	}
}

func TestStoreCorruptRecord(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)

	mr.Set("sess:corrupt", "{not json")
	if _, err := store.Get(context.Background(), "corrupt"); !errors.Is(err, ErrNotFound) {
		t.Errorf("corrupt blob err = %v, want ErrNotFound", err)
	}
}
