package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dianadeliz/vva-dsm-capstoneproject/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() {
		mr.Close()
	})

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return client, mr
}

func TestResetTokenRepositoryImpl_StoreAndConsume(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	if err := repo.Store(context.Background(), 42, "hash-a"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	userID, err := repo.Consume(context.Background(), "hash-a")
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
}

func TestResetTokenRepositoryImpl_ConsumeIsSingleUse(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	if err := repo.Store(context.Background(), 42, "hash-a"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if _, err := repo.Consume(context.Background(), "hash-a"); err != nil {
		t.Fatalf("first Consume failed: %v", err)
	}

	_, err := repo.Consume(context.Background(), "hash-a")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid on second use, got %v", err)
	}
}

func TestResetTokenRepositoryImpl_ConsumeUnknownToken(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	_, err := repo.Consume(context.Background(), "never-stored")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid, got %v", err)
	}
}

func TestResetTokenRepositoryImpl_TokenExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	if err := repo.Store(context.Background(), 42, "hash-a"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	// Expired tokens fail identically to unknown ones
	_, err := repo.Consume(context.Background(), "hash-a")
	if !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected ErrResetTokenInvalid after expiry, got %v", err)
	}
}

func TestResetTokenRepositoryImpl_ReissueInvalidatesPrevious(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	if err := repo.Store(context.Background(), 42, "hash-old"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := repo.Store(context.Background(), 42, "hash-new"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if _, err := repo.Consume(context.Background(), "hash-old"); !errors.Is(err, domain.ErrResetTokenInvalid) {
		t.Errorf("expected superseded token to be invalid, got %v", err)
	}

	userID, err := repo.Consume(context.Background(), "hash-new")
	if err != nil {
		t.Fatalf("Consume of fresh token failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
}

func TestResetTokenRepositoryImpl_TokensArePerUser(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewResetTokenRepository(client, 10*time.Minute)

	if err := repo.Store(context.Background(), 1, "hash-user1"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := repo.Store(context.Background(), 2, "hash-user2"); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// Issuing for one user must not disturb another's token
	userID, err := repo.Consume(context.Background(), "hash-user1")
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if userID != 1 {
		t.Errorf("expected user 1, got %d", userID)
	}

	userID, err = repo.Consume(context.Background(), "hash-user2")
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}
	if userID != 2 {
		t.Errorf("expected user 2, got %d", userID)
	}
}
