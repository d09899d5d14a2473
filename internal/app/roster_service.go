package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"slimdown/internal/domain"
)

var (
	// ErrContestantExists indicates an add with a name already on the roster.
	ErrContestantExists = errors.New("contestant already exists")
	// ErrContestantNotFound indicates the named contestant is not on the roster.
	ErrContestantNotFound = errors.New("contestant not found")
	// ErrNameRequired indicates an empty contestant name.
	ErrNameRequired = errors.New("contestant name is required")
)

// RosterService encapsulates the contestant management use cases.
type RosterService struct {
	repo domain.ContestantRepository
	calc domain.Calculator
	now  func() time.Time
}

// NewRosterService creates a RosterService backed by the given repository
// and calculator.
func NewRosterService(repo domain.ContestantRepository, calc domain.Calculator) *RosterService {
	return &RosterService{repo: repo, calc: calc, now: time.Now}
}

// Enroll validates and stores a new contestant. The date of birth is vetted
// through the calculator, and the current weight starts equal to the
// starting weight.
func (s *RosterService) Enroll(ctx context.Context, name, dateOfBirth string, startingWeight float64) (*domain.Contestant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.calc.Age(ctx, dateOfBirth); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrContestantExists
	}

	c := domain.Contestant{
		Name:           name,
		DateOfBirth:    dateOfBirth,
		StartingWeight: startingWeight,
		CurrentWeight:  startingWeight,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Add(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// RecordWeight stores a new current weight for the named contestant and
// returns the updated record.
func (s *RosterService) RecordWeight(ctx context.Context, name string, weight float64) (*domain.Contestant, error) {
	c, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	c.CurrentWeight = weight
	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// EditRequest carries the optional field corrections applied by Edit. Nil
// fields are left unchanged.
type EditRequest struct {
	DateOfBirth    *string
	StartingWeight *float64
	CurrentWeight  *float64
}

// Edit corrects stored fields of the named contestant. A new date of birth
// is vetted through the calculator before anything is written.
func (s *RosterService) Edit(ctx context.Context, name string, req EditRequest) (*domain.Contestant, error) {
	c, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if req.DateOfBirth != nil {
		if _, err := s.calc.Age(ctx, *req.DateOfBirth); err != nil {
			return nil, err
		}
		c.DateOfBirth = *req.DateOfBirth
	}
	if req.StartingWeight != nil {
		c.StartingWeight = *req.StartingWeight
	}
	if req.CurrentWeight != nil {
		c.CurrentWeight = *req.CurrentWeight
	}
	if err := s.repo.Update(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes the named contestant from the roster.
func (s *RosterService) Remove(ctx context.Context, name string) error {
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}
	return s.repo.Remove(ctx, strings.TrimSpace(name))
}

// Get returns the named contestant or ErrContestantNotFound.
func (s *RosterService) Get(ctx context.Context, name string) (*domain.Contestant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	c, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContestantNotFound
	}
	return c, nil
}

// List returns the roster in enrollment order.
func (s *RosterService) List(ctx context.Context) ([]domain.Contestant, error) {
	return s.repo.List(ctx)
}
