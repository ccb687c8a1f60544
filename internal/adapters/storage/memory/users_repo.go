package memory

import (
	"context"
	"strings"
	"sync"

	"vahis-pet-care-hub/internal/domain/accounts"
)

type userRepo struct {
	mu         sync.RWMutex
	byID       map[string]accounts.User
	byUsername map[string]string // username (lower) -> id
}

func NewUserRepo() accounts.Repository {
	return &userRepo{
		byID:       make(map[string]accounts.User),
		byUsername: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u accounts.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Username)
	if _, taken := r.byUsername[key]; taken {
		return accounts.ErrUsernameTaken
	}
	r.byID[u.ID] = u
	r.byUsername[key] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return r.byID[id], nil
}

type sessionRepo struct {
	mu      sync.Mutex
	byToken map[string]accounts.Session
}

// NewSessionRepo se usa también con Postgres: las sesiones no sobreviven reinicios.
func NewSessionRepo() accounts.SessionRepository {
	return &sessionRepo{
		byToken: make(map[string]accounts.Session),
	}
}

func (r *sessionRepo) Create(ctx context.Context, s accounts.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken[s.Token] = s
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, token string) (accounts.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byToken[token]
	if !ok {
		return accounts.Session{}, accounts.ErrSessionNotFound
	}
	return s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return accounts.ErrSessionNotFound
	}
	delete(r.byToken, token)
	return nil
}
