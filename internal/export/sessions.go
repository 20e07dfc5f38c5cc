package export

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/youruser/posterapp/internal/schema"
)

// Sessions holds the live editing sessions keyed by random id.
type Sessions struct {
	mu sync.RWMutex
	m  map[string]*Session
}

// NewSessions returns an empty session store.
func NewSessions() *Sessions {
	return &Sessions{m: make(map[string]*Session)}
}

// Create starts a new idle session for a poster type.
func (ss *Sessions) Create(posterType string, s *schema.Schema) *Session {
	sess := newSession(randomID(), posterType, s)
	ss.mu.Lock()
	ss.m[sess.ID] = sess
	ss.mu.Unlock()
	return sess
}

// Get looks up a live session.
func (ss *Sessions) Get(id string) (*Session, bool) {
	ss.mu.RLock()
	sess, ok := ss.m[id]
	ss.mu.RUnlock()
	return sess, ok
}

// Remove discards a session; leaving the editor is the cancellation
// signal for any of its in-flight work.
func (ss *Sessions) Remove(id string) {
	ss.mu.Lock()
	delete(ss.m, id)
	ss.mu.Unlock()
}

func randomID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("export: session id entropy: " + err.Error())
	}
	return hex.EncodeToString(b)
}
