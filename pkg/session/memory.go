package session

import "sync"

// MemoryRegistry keeps valid tokens in a process-local set. State is
// lost on restart; a fresh process requires a new login.
type MemoryRegistry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{tokens: make(map[string]struct{})}
}

func (r *MemoryRegistry) Create() (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.tokens[token] = struct{}{}
	r.mu.Unlock()

	return token, nil
}

func (r *MemoryRegistry) IsValid(token string) (bool, error) {
	r.mu.RLock()
	_, ok := r.tokens[token]
	r.mu.RUnlock()
	return ok, nil
}

// Invalidate is idempotent: removing an unknown token succeeds.
func (r *MemoryRegistry) Invalidate(token string) error {
	r.mu.Lock()
	delete(r.tokens, token)
	r.mu.Unlock()
	return nil
}
