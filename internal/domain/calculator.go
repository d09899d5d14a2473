package domain

import "context"

// Calculator computes the derived contestant values. Implementations round
// weights and percentages to two decimal places, so results do not depend on
// which implementation is wired in.
type Calculator interface {
	Age(ctx context.Context, dateOfBirth string) (int, error)
	WeightLost(ctx context.Context, starting, current float64) (float64, error)
	PercentageLost(ctx context.Context, lost, starting float64) (float64, error)
}
