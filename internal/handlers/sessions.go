package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/sunridge/campreg/internal/auth"
)

const sessionTTL = 24 * time.Hour

type adminSession struct {
	principal auth.Principal
	expires   time.Time
}

// SessionStore is the in-process admin session table: random token -> logged
// in principal. Sessions do not survive a restart, which is acceptable for a
// single-admin dashboard.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]adminSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]adminSession)}
}

func (s *SessionStore) Put(p auth.Principal) string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = adminSession{principal: p, expires: time.Now().Add(sessionTTL)}
	return token
}

func (s *SessionStore) Get(token string) (auth.Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return auth.Principal{}, false
	}
	if time.Now().After(sess.expires) {
		delete(s.sessions, token)
		return auth.Principal{}, false
	}
	return sess.principal, true
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
