// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/pkg/auth"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

var (
	// ErrInvalidCredentials is returned when login fails. The message is
	// identical for unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an existing email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// Service handles storefront account business logic. Accounts are
// keyed by email in the mirror; each session tracks its current user.
type Service struct {
	store     store.Store
	config    *config.Config
	passwords *auth.PasswordManager
	bus       *events.Bus
}

// NewService creates a new user service
func NewService(st store.Store, cfg *config.Config, bus *events.Bus) *Service {
	return &Service{
		store:     st,
		config:    cfg,
		passwords: auth.NewPasswordManager(cfg),
		bus:       bus,
	}
}

// RegisterRequest represents account creation data.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents login data.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and signs the session in as it.
func (s *Service) Register(ctx context.Context, sessionID string, req *RegisterRequest) (*User, error) {
	email := normalizeEmail(req.Email)

	exists, err := s.store.Exists(ctx, userKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	rec := record{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := store.SetJSON(ctx, s.store, userKey(email), rec, 0); err != nil {
		return nil, fmt.Errorf("failed to persist account: %w", err)
	}

	if err := s.setCurrent(ctx, sessionID, email); err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

// Login verifies credentials and signs the session in.
func (s *Service) Login(ctx context.Context, sessionID string, req *LoginRequest) (*User, error) {
	rec, err := s.loadRecord(ctx, normalizeEmail(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if err := s.passwords.VerifyPassword(req.Password, rec.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.setCurrent(ctx, sessionID, rec.Email); err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

// Logout clears the session's current user.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Del(ctx, currentUserKey(sessionID)); err != nil {
		return err
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicUser})
	return nil
}

// Current returns the session's signed-in user, or nil when anonymous.
func (s *Service) Current(ctx context.Context, sessionID string) (*User, error) {
	email, err := s.store.Get(ctx, currentUserKey(sessionID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	rec, err := s.loadRecord(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

// Private helper methods

func (r *record) toUser() *User {
	return &User{
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (s *Service) loadRecord(ctx context.Context, email string) (*record, error) {
	var rec record
	if err := store.GetJSON(ctx, s.store, userKey(email), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Service) setCurrent(ctx context.Context, sessionID, email string) error {
	if err := s.store.Set(ctx, currentUserKey(sessionID), email, s.config.Store.SessionTTL); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	s.bus.Publish(events.Event{SessionID: sessionID, Topic: events.TopicUser})
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func userKey(email string) string {
	return fmt.Sprintf("user:email:%s", email)
}

func currentUserKey(sessionID string) string {
	return fmt.Sprintf("session:user:%s", sessionID)
}
