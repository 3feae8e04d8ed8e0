package auth_test

import (
	"testing"

	"royalmotors/internal/auth"
	"royalmotors/internal/store"
)

const secret = "royalmotors369741"

func newGate() (*auth.Gate, *store.SessionStore) {
	sessions := store.NewSessionStore()
	return auth.NewGate(secret, sessions), sessions
}

func TestUnlockExactMatch(t *testing.T) {
	gate, sessions := newGate()

	if !gate.Unlock("sid", secret) {
		t.Fatal("exact secret must unlock")
	}
	if !gate.IsAdmin("sid") {
		t.Fatal("session should be unlocked")
	}
	// The marker is the literal "true" under the session key.
	if v, ok := sessions.Get("sid", auth.SessionKey); !ok || v != "true" {
		t.Fatalf("session marker missing or wrong: ok=%v v=%q", ok, v)
	}
	if gate.FailedLast("sid") {
		t.Fatal("success must clear the failure flag")
	}
}

func TestUnlockRejectsWrongAndDifferentCase(t *testing.T) {
	gate, _ := newGate()

	for _, pw := range []string{"", "wrong", "ROYALMOTORS369741", "Royalmotors369741"} {
		if gate.Unlock("sid", pw) {
			t.Fatalf("password %q must not unlock", pw)
		}
		if gate.IsAdmin("sid") {
			t.Fatalf("session unlocked by %q", pw)
		}
		if !gate.FailedLast("sid") {
			t.Fatalf("failure flag not set after %q", pw)
		}
	}
}

func TestFailureFlagIsConsumedOnce(t *testing.T) {
	gate, _ := newGate()
	gate.Unlock("sid", "nope")

	if !gate.FailedLast("sid") {
		t.Fatal("first read should see the flag")
	}
	if gate.FailedLast("sid") {
		t.Fatal("flag must clear after being read")
	}
}

func TestLogoutLocks(t *testing.T) {
	gate, _ := newGate()
	gate.Unlock("sid", secret)
	gate.Logout("sid")
	if gate.IsAdmin("sid") {
		t.Fatal("logout must lock the session")
	}
}

func TestStateRestoredFromSessionMarker(t *testing.T) {
	sessions := store.NewSessionStore()
	sessions.Set("sid", auth.SessionKey, "true")
	gate := auth.NewGate(secret, sessions)
	if !gate.IsAdmin("sid") {
		t.Fatal("marker present means UNLOCKED on start")
	}

	// Any other value means locked.
	sessions.Set("sid2", auth.SessionKey, "yes")
	if gate.IsAdmin("sid2") {
		t.Fatal("only the literal \"true\" unlocks")
	}
}
