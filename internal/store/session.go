package store

import "sync"

// SessionStore is the session-scoped KV: one small keyspace per session id,
// held only in memory. Sessions vanish on process restart, which is the
// session lifetime here — nothing in this scope is ever persisted.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]map[string]string)}
}

func (s *SessionStore) Get(sid, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	kv, ok := s.data[sid]
	if !ok {
		return "", false
	}
	v, ok := kv[key]
	return v, ok
}

func (s *SessionStore) Set(sid, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.data[sid]
	if !ok {
		kv = make(map[string]string)
		s.data[sid] = kv
	}
	kv[key] = value
}

func (s *SessionStore) Remove(sid, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kv, ok := s.data[sid]; ok {
		delete(kv, key)
		if len(kv) == 0 {
			delete(s.data, sid)
		}
	}
}

// Destroy drops the whole keyspace of one session.
func (s *SessionStore) Destroy(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sid)
}
