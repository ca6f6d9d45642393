// Package session keeps admin sessions in process memory, keyed by an
// opaque token carried in a cookie. There is no shared backend, so a
// session lives and dies with the process.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session is the authenticated state referenced by a token.
type Session struct {
	AdminID   string
	Username  string
	ExpiresAt time.Time
}

// Store maps tokens to sessions with a fixed idle lifetime. Expired
// entries are dropped lazily on access.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// New creates a session and returns its token.
func (s *Store) New(adminID, username string) string {
	token := newToken()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = Session{
		AdminID:   adminID,
		Username:  username,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	return token
}

// Get resolves a token. A stale entry is deleted and reported absent.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return sess, true
}

// Delete removes a session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func newToken() string {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
