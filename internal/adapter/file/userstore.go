package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"slimdown/internal/domain"
)

// UserStore persists organizer accounts as a JSON document, usually beside
// the roster. Sessions are not written to disk; serve keeps them in memory.
type UserStore struct {
	mu   sync.Mutex
	path string
}

var _ domain.UserRepository = (*UserStore)(nil)

// NewUserStore returns a user store backed by the JSON document at path.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

type userRecord struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetByUsername retrieves a user by username.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return toUser(u), nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return toUser(u), nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (s *UserStore) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, u := range users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	rec := userRecord{
		ID:           maxID + 1,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.save(append(users, rec)); err != nil {
		return nil, err
	}
	return toUser(rec), nil
}

// Count returns the total number of users.
func (s *UserStore) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

func toUser(r userRecord) *domain.User {
	return &domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func (s *UserStore) load() ([]userRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read users: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var users []userRecord
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users %s: %w", s.path, err)
	}
	return users, nil
}

func (s *UserStore) save(users []userRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, append(data, '\n'))
}
