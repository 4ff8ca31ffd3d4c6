package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// ===============================
// Tokens de verificação / reset
// ===============================

const (
	KindVerify = "verify"
	KindReset  = "reset"

	ResetTokenTTL = time.Hour
)

// TokenStore guarda tokens de uso único com expiração, chaveados por
// (tipo, email). Get devolve "" quando não há token válido.
type TokenStore interface {
	Set(ctx context.Context, kind, email, token string, ttl time.Duration) error
	Get(ctx context.Context, kind, email string) (string, error)
	Delete(ctx context.Context, kind, email string) error
}

func GenerateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err) // entropia do SO indisponível
	}
	return hex.EncodeToString(b)
}

// ===============================
// Implementação em memória
// ===============================

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// MemoryTokenStore atende testes e ambientes sem Redis.
type MemoryTokenStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryTokenStore) Set(_ context.Context, kind, email, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[kind+":"+email] = memoryEntry{
		token:     token,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryTokenStore) Get(_ context.Context, kind, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[kind+":"+email]
	if !ok {
		return "", nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, kind+":"+email)
		return "", nil
	}
	return entry.token, nil
}

func (s *MemoryTokenStore) Delete(_ context.Context, kind, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, kind+":"+email)
	return nil
}

var _ TokenStore = (*MemoryTokenStore)(nil)
