package auth

import (
	"sync"
	"time"
)

// TokenTTL is how long a stored access token is considered live.
//
// Spotify access tokens expire after one hour; a record older than this is
// treated as absent.
const TokenTTL = 3600 * time.Second

type tokenRecord struct {
	accessToken string
	createdAt   time.Time
}

// TokenStore holds access tokens keyed by session. It is the only mutable
// shared state in the authentication layer: written by [Flow], read by every
// authenticated request.
//
// A single-tenant deployment passes one constant session key for every
// operation; multi-tenant callers key by their own session identifier.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]tokenRecord
	now    func() time.Time
}

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]tokenRecord),
		now:    time.Now,
	}
}

// Set stores an access token for the session key, stamping it with the current
// time. Any prior record for the key is overwritten.
func (s *TokenStore) Set(sessionKey, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[sessionKey] = tokenRecord{accessToken: accessToken, createdAt: s.now()}
}

// Get returns the live token for the session key. Records older than
// [TokenTTL] are evicted as a side effect and reported as absent.
func (s *TokenStore) Get(sessionKey string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tokens[sessionKey]
	if !ok {
		return "", false
	}

	if s.now().Sub(record.createdAt) > TokenTTL {
		delete(s.tokens, sessionKey)
		return "", false
	}

	return record.accessToken, true
}

// Authenticated reports whether a live token exists for the session key.
func (s *TokenStore) Authenticated(sessionKey string) bool {
	_, ok := s.Get(sessionKey)
	return ok
}
