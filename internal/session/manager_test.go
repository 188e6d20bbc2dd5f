package session

import (
	"testing"
	"time"
)

func TestCreateAndResolve(t *testing.T) {
	m := NewManager(24 * time.Hour)

	token := m.Create(42)
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, ok := m.UserID(token)
	if !ok {
		t.Fatal("expected session to resolve")
	}
	if userID != 42 {
		t.Fatalf("expected userID 42, got %d", userID)
	}
}

func TestTokensAreOpaqueAndUnique(t *testing.T) {
	m := NewManager(24 * time.Hour)

	t1 := m.Create(1)
	t2 := m.Create(1)

	if t1 == t2 {
		t.Fatal("expected distinct tokens for separate logins")
	}
}

func TestDestroy(t *testing.T) {
	m := NewManager(24 * time.Hour)

	token := m.Create(7)
	m.Destroy(token)

	if _, ok := m.UserID(token); ok {
		t.Fatal("expected destroyed session to be gone")
	}

	// destroying again must not panic
	m.Destroy(token)
}

func TestUnknownToken(t *testing.T) {
	m := NewManager(24 * time.Hour)

	if _, ok := m.UserID("not-a-session"); ok {
		t.Fatal("expected unknown token to fail")
	}
}

func TestAbsoluteExpiry(t *testing.T) {
	m := NewManager(10 * time.Millisecond)

	token := m.Create(9)
	time.Sleep(20 * time.Millisecond)

	if _, ok := m.UserID(token); ok {
		t.Fatal("expected session to expire after TTL")
	}
}

func TestConcurrentCreateAndResolve(t *testing.T) {
	m := NewManager(24 * time.Hour)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(id int) {
			defer func() { done <- struct{}{} }()
			token := m.Create(id)
			if got, ok := m.UserID(token); !ok || got != id {
				t.Errorf("session for user %d did not resolve", id)
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
