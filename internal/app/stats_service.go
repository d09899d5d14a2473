package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"

	"slimdown/internal/domain"
)

// StatsService derives the challenge views: per-contestant details, the
// ranked standings, and the aggregate summary. All derived values go through
// the calculator port.
type StatsService struct {
	repo domain.ContestantRepository
	calc domain.Calculator
}

// NewStatsService creates a StatsService backed by the given repository and
// calculator.
func NewStatsService(repo domain.ContestantRepository, calc domain.Calculator) *StatsService {
	return &StatsService{repo: repo, calc: calc}
}

// Standing is one contestant's place in the challenge. Rank 1 is the largest
// percentage lost; contestants with equal percentages keep enrollment order.
type Standing struct {
	Rank           int     `json:"rank"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	StartingWeight float64 `json:"starting_weight"`
	CurrentWeight  float64 `json:"current_weight"`
	WeightLost     float64 `json:"weight_lost"`
	PercentageLost float64 `json:"percentage_lost"`
}

// Detail is the info view for a single contestant: the stored record plus
// its derived values.
type Detail struct {
	domain.Contestant
	Age            int     `json:"age"`
	WeightLost     float64 `json:"weight_lost"`
	PercentageLost float64 `json:"percentage_lost"`
}

// Summary aggregates the whole challenge.
type Summary struct {
	Contestants     int     `json:"contestants"`
	TotalWeightLost float64 `json:"total_weight_lost"`
	MeanPctLost     float64 `json:"mean_percentage_lost"`
	MedianPctLost   float64 `json:"median_percentage_lost"`
	StdDevPctLost   float64 `json:"stddev_percentage_lost"`
}

// Describe returns the detail view for one contestant.
func (s *StatsService) Describe(ctx context.Context, name string) (*Detail, error) {
	c, err := s.repo.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrContestantNotFound
	}

	age, lost, pct, err := s.derive(ctx, *c)
	if err != nil {
		return nil, err
	}
	return &Detail{Contestant: *c, Age: age, WeightLost: lost, PercentageLost: pct}, nil
}

// Roster returns the detail view for every contestant in enrollment order.
func (s *StatsService) Roster(ctx context.Context) ([]Detail, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Detail, 0, len(roster))
	for _, c := range roster {
		age, lost, pct, err := s.derive(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, Detail{Contestant: c, Age: age, WeightLost: lost, PercentageLost: pct})
	}
	return out, nil
}

// Standings returns the roster ranked by percentage lost, descending. The
// sort is stable, so ties keep enrollment order.
func (s *StatsService) Standings(ctx context.Context) ([]Standing, error) {
	roster, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Standing, 0, len(roster))
	for _, c := range roster {
		age, lost, pct, err := s.derive(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, Standing{
			Name:           c.Name,
			Age:            age,
			StartingWeight: c.StartingWeight,
			CurrentWeight:  c.CurrentWeight,
			WeightLost:     lost,
			PercentageLost: pct,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PercentageLost > out[j].PercentageLost
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// Summarize aggregates the standings into challenge-wide numbers.
func (s *StatsService) Summarize(ctx context.Context) (*Summary, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	if len(standings) == 0 {
		return &Summary{}, nil
	}

	losses := make([]float64, len(standings))
	pcts := make([]float64, len(standings))
	for i, st := range standings {
		losses[i] = st.WeightLost
		pcts[i] = st.PercentageLost
	}

	total, err := stats.Sum(losses)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(pcts)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(pcts)
	if err != nil {
		return nil, err
	}
	stddev, err := stats.StandardDeviation(pcts)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Contestants:     len(standings),
		TotalWeightLost: total,
		MeanPctLost:     mean,
		MedianPctLost:   median,
		StdDevPctLost:   stddev,
	}, nil
}

// derive computes the three derived values for one record. The percentage is
// computed from the calculator's weight-lost result, so it reflects the same
// two-decimal value a caller would see.
func (s *StatsService) derive(ctx context.Context, c domain.Contestant) (age int, lost, pct float64, err error) {
	age, err = s.calc.Age(ctx, c.DateOfBirth)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("contestant %s: %w", c.Name, err)
	}
	lost, err = s.calc.WeightLost(ctx, c.StartingWeight, c.CurrentWeight)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("contestant %s: %w", c.Name, err)
	}
	pct, err = s.calc.PercentageLost(ctx, lost, c.StartingWeight)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("contestant %s: %w", c.Name, err)
	}
	return age, lost, pct, nil
}
