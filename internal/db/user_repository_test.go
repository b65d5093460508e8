package db

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/amal/internal/models"
)

func testUser(username string) models.User {
	return models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "$2a$10$test-hash",
		DisplayName:  "Test User",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCreateRejectsDuplicateUsername(t *testing.T) {
	t.Parallel()

	repository := NewUserRepository(openTestDatabase(t))

	first := testUser("budi123")
	if err := repository.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	second := testUser("budi123")
	if err := repository.Create(&second); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestConcurrentRegistrationsYieldOneWinner(t *testing.T) {
	t.Parallel()

	repository := NewUserRepository(openTestDatabase(t))

	const attempts = 4
	results := make([]error, attempts)
	var wg sync.WaitGroup
	for index := 0; index < attempts; index++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			user := testUser("budi123")
			results[slot] = repository.Create(&user)
		}(index)
	}
	wg.Wait()

	successes := 0
	duplicates := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDuplicateUsername):
			duplicates++
		default:
			t.Fatalf("unexpected create error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", successes)
	}
	if duplicates != attempts-1 {
		t.Fatalf("expected %d duplicate failures, got %d", attempts-1, duplicates)
	}
}

func TestFindByUsernameIsCaseSensitive(t *testing.T) {
	t.Parallel()

	repository := NewUserRepository(openTestDatabase(t))

	user := testUser("budi123")
	if err := repository.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	if _, found, err := repository.FindByUsername("budi123"); err != nil || !found {
		t.Fatalf("expected exact-case lookup to match, found=%v err=%v", found, err)
	}
	if _, found, err := repository.FindByUsername("Budi123"); err != nil || found {
		t.Fatalf("expected different-case lookup to miss, found=%v err=%v", found, err)
	}
}

func TestFindByUsernameMissIsNotAnError(t *testing.T) {
	t.Parallel()

	repository := NewUserRepository(openTestDatabase(t))

	_, found, err := repository.FindByUsername("no-such-user")
	if err != nil {
		t.Fatalf("expected miss without error, got %v", err)
	}
	if found {
		t.Fatal("expected miss for unknown username")
	}
}
