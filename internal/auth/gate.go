// Package auth implements the password gate in front of the admin mode.
//
// This is deliberately not real authentication: a single static shared
// secret unlocks the editor for a session. There is no server-side account
// model to protect here beyond keeping honest visitors out of the admin
// forms, and strengthening it is out of scope.
package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"royalmotors/internal/store"
)

// SessionKey holds the literal "true" in the session scope while unlocked.
const SessionKey = "is_admin_royal"

const failedKey = "auth_failed"

// Gate is a two-state machine per session: LOCKED and UNLOCKED. The secret
// is kept only as a bcrypt hash in memory; comparison preserves exact,
// case-sensitive match semantics.
type Gate struct {
	secretHash []byte
	sessions   *store.SessionStore
}

func NewGate(secret string, sessions *store.SessionStore) *Gate {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable with an over-long secret; refuse to start quietly.
		log.Fatalf("[auth] cannot hash admin secret: %v", err)
	}
	return &Gate{secretHash: hash, sessions: sessions}
}

// Unlock moves the session to UNLOCKED iff password matches the shared
// secret exactly. A mismatch leaves the session locked and raises the
// failure flag for the login page to show once.
func (g *Gate) Unlock(sid, password string) bool {
	if bcrypt.CompareHashAndPassword(g.secretHash, []byte(password)) != nil {
		g.sessions.Set(sid, failedKey, "true")
		return false
	}
	g.sessions.Set(sid, SessionKey, "true")
	g.sessions.Remove(sid, failedKey)
	return true
}

// IsAdmin restores the state from the session marker: UNLOCKED iff the
// marker is present with the literal value "true".
func (g *Gate) IsAdmin(sid string) bool {
	v, ok := g.sessions.Get(sid, SessionKey)
	return ok && v == "true"
}

// Logout returns the session to LOCKED.
func (g *Gate) Logout(sid string) {
	g.sessions.Remove(sid, SessionKey)
}

// FailedLast reports and clears the failure flag. The flag is transient:
// the login page consumes it once, mirroring an error indicator that
// disappears as soon as the visitor edits the input again.
func (g *Gate) FailedLast(sid string) bool {
	v, ok := g.sessions.Get(sid, failedKey)
	if ok {
		g.sessions.Remove(sid, failedKey)
	}
	return ok && v == "true"
}
