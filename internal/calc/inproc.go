package calc

import (
	"context"
	"strconv"
	"time"

	"slimdown/internal/domain"
)

// InProcess computes derived values without spawning the calculator binary.
type InProcess struct {
	now func() time.Time
}

var _ domain.Calculator = (*InProcess)(nil)

// NewInProcess returns an in-process calculator evaluated against the
// current date.
func NewInProcess() *InProcess {
	return &InProcess{now: time.Now}
}

func (c *InProcess) Age(_ context.Context, dateOfBirth string) (int, error) {
	today := domain.DateOf(c.now())
	dob, err := domain.ParseDOB(dateOfBirth)
	if err != nil {
		return 0, err
	}
	if dob.After(today) {
		return 0, domain.ErrInvalidDateOfBirth
	}
	return domain.AgeOn(dob, today), nil
}

func (c *InProcess) WeightLost(_ context.Context, starting, current float64) (float64, error) {
	return round2(domain.WeightLost(starting, current)), nil
}

func (c *InProcess) PercentageLost(_ context.Context, lost, starting float64) (float64, error) {
	return round2(domain.PercentageLost(lost, starting)), nil
}

// round2 rounds by formatting with two decimals and parsing the result back,
// the same transformation a value undergoes when read from the binary's
// stdout.
func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
