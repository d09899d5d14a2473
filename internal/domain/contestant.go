package domain

import (
	"context"
	"time"
)

// Contestant is a challenge participant. Only the enrolled facts are kept;
// age, weight lost and percentage lost are derived from these on demand and
// never stored.
type Contestant struct {
	Name           string    `json:"name"`
	DateOfBirth    string    `json:"date_of_birth"`
	StartingWeight float64   `json:"starting_weight"`
	CurrentWeight  float64   `json:"current_weight"`
	CreatedAt      time.Time `json:"created_at"`
}

// ContestantRepository is the port for contestant persistence. List returns
// contestants in enrollment order. Get returns (nil, nil) when the name is
// unknown.
type ContestantRepository interface {
	Add(ctx context.Context, c Contestant) error
	Get(ctx context.Context, name string) (*Contestant, error)
	List(ctx context.Context) ([]Contestant, error)
	Update(ctx context.Context, c Contestant) error
	Remove(ctx context.Context, name string) error
}
