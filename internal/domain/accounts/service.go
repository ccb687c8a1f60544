package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"vahis-pet-care-hub/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

const (
	DefaultSessionTTL = 24 * time.Hour
	minPasswordLen    = 6
)

type Service struct {
	users    Repository
	sessions SessionRepository
	ttl      time.Duration

	now  func() time.Time
	cost int
}

func NewService(users Repository, sessions SessionRepository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		cost:     bcrypt.DefaultCost,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < minPasswordLen {
		return User{}, ErrInvalidInput
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return User{}, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// EnsureUser crea el usuario si no existe (seed del admin por defecto).
// Devuelve created=false si ya estaba.
func (s *Service) EnsureUser(ctx context.Context, username, password string) (bool, error) {
	_, err := s.Register(ctx, username, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUsernameTaken):
		return false, nil
	default:
		return false, err
	}
}

// Login valida credenciales y abre una sesión nueva.
func (s *Service) Login(ctx context.Context, username, password string) (User, Session, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, Session{}, ErrInvalidCredentials
		}
		return User{}, Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, Session{}, ErrInvalidCredentials
	}

	now := s.now()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return User{}, Session{}, err
	}
	return u, sess, nil
}

// Logout es idempotente.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	err := s.sessions.Delete(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return nil
	}
	return err
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.users.GetByID(ctx, id)
}

// Verify implementa auth.AuthVerifier sobre las sesiones propias.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrSessionNotFound
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return auth.Claims{}, ErrSessionExpired
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		return auth.Claims{}, err
	}
	return auth.Claims{UserID: u.ID, Username: u.Username}, nil
}
