// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"slimdown/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu          sync.Mutex
	contestants []domain.Contestant
	users       []*domain.User
	sessions    map[string]*domain.Session

	userIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.ContestantRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- ContestantRepository ---

// Add appends a contestant, keeping enrollment order.
func (db *DB) Add(ctx context.Context, c domain.Contestant) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.contestants {
		if db.contestants[i].Name == c.Name {
			return errors.New("contestant already exists")
		}
	}
	db.contestants = append(db.contestants, c)
	return nil
}

// Get retrieves a contestant by name.
func (db *DB) Get(ctx context.Context, name string) (*domain.Contestant, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.contestants {
		if db.contestants[i].Name == name {
			// return a copy so callers cannot mutate the stored record
			c := db.contestants[i]
			return &c, nil
		}
	}
	return nil, nil
}

// List returns all contestants in enrollment order.
func (db *DB) List(ctx context.Context) ([]domain.Contestant, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Contestant, len(db.contestants))
	copy(result, db.contestants)
	return result, nil
}

// Update replaces the stored record with the same name.
func (db *DB) Update(ctx context.Context, c domain.Contestant) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.contestants {
		if db.contestants[i].Name == c.Name {
			db.contestants[i] = c
			return nil
		}
	}
	return errors.New("contestant not found")
}

// Remove deletes a contestant by name.
func (db *DB) Remove(ctx context.Context, name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.contestants {
		if db.contestants[i].Name == name {
			db.contestants = append(db.contestants[:i], db.contestants[i+1:]...)
			return nil
		}
	}
	return errors.New("contestant not found")
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token, dropping it when expired.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
