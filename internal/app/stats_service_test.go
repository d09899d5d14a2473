package app_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"slimdown/internal/app"
	"slimdown/internal/domain"
)

func rosterOf(contestants ...domain.Contestant) *mockContestantRepo {
	return &mockContestantRepo{
		listFn: func(_ context.Context) ([]domain.Contestant, error) {
			return contestants, nil
		},
		getFn: func(_ context.Context, name string) (*domain.Contestant, error) {
			for _, c := range contestants {
				if c.Name == name {
					cc := c
					return &cc, nil
				}
			}
			return nil, nil
		},
	}
}

func TestStandings_RankedByPercentageLost(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "Alice", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 180},
		domain.Contestant{Name: "Bob", DateOfBirth: "1985-01-20", StartingWeight: 150, CurrentWeight: 120},
		domain.Contestant{Name: "Carol", DateOfBirth: "2000-03-02", StartingWeight: 100, CurrentWeight: 100},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	standings, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(standings) != 3 {
		t.Fatalf("expected 3 standings, got %d", len(standings))
	}

	// Bob lost 20%, Alice 10%, Carol 0%.
	wantOrder := []string{"Bob", "Alice", "Carol"}
	for i, name := range wantOrder {
		if standings[i].Name != name {
			t.Errorf("rank %d: expected %s, got %s", i+1, name, standings[i].Name)
		}
		if standings[i].Rank != i+1 {
			t.Errorf("expected rank %d, got %d", i+1, standings[i].Rank)
		}
	}

	top := standings[0]
	if top.WeightLost != 30 || top.PercentageLost != 20 {
		t.Errorf("unexpected derived values: %+v", top)
	}
	if top.Age != 40 {
		t.Errorf("expected Bob's age 40 at 2025-12-01, got %d", top.Age)
	}
}

func TestStandings_TieKeepsEnrollmentOrder(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "First", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 180},
		domain.Contestant{Name: "Second", DateOfBirth: "1990-05-15", StartingWeight: 100, CurrentWeight: 90},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	standings, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Both lost 10%; enrollment order decides.
	if standings[0].Name != "First" || standings[1].Name != "Second" {
		t.Errorf("tie must keep enrollment order, got %s then %s", standings[0].Name, standings[1].Name)
	}
}

func TestStandings_SingleContestantRanksFirst(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "Solo", DateOfBirth: "1990-05-15", StartingWeight: 180, CurrentWeight: 180},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	standings, err := svc.Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(standings) != 1 || standings[0].Rank != 1 || standings[0].Name != "Solo" {
		t.Errorf("expected Solo at rank 1, got %+v", standings)
	}
}

func TestStandings_RepoError(t *testing.T) {
	repo := &mockContestantRepo{
		listFn: func(_ context.Context) ([]domain.Contestant, error) {
			return nil, errors.New("db down")
		},
	}
	svc := app.NewStatsService(repo, calcAt2025)

	_, err := svc.Standings(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDescribe(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "Alice", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 175},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	d, err := svc.Describe(context.Background(), "Alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Age != 35 {
		t.Errorf("expected age 35, got %d", d.Age)
	}
	if d.WeightLost != 25 || d.PercentageLost != 12.5 {
		t.Errorf("unexpected derived values: %+v", d)
	}
	if d.DateOfBirth != "1990-05-15" {
		t.Errorf("stored fields must carry through: %+v", d)
	}

	_, err = svc.Describe(context.Background(), "Ghost")
	if !errors.Is(err, app.ErrContestantNotFound) {
		t.Errorf("expected ErrContestantNotFound, got %v", err)
	}
}

func TestRoster_KeepsEnrollmentOrder(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "Alice", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 180},
		domain.Contestant{Name: "Bob", DateOfBirth: "1985-01-20", StartingWeight: 250, CurrentWeight: 200},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	details, err := svc.Roster(context.Background())
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].Name != "Alice" || details[1].Name != "Bob" {
		t.Fatalf("expected enrollment order Alice, Bob; got %s, %s", details[0].Name, details[1].Name)
	}
	if details[0].Age != 35 {
		t.Errorf("expected Alice age 35, got %d", details[0].Age)
	}
	if details[1].PercentageLost != 20.0 {
		t.Errorf("expected Bob pct 20, got %v", details[1].PercentageLost)
	}
}

func TestSummarize(t *testing.T) {
	repo := rosterOf(
		domain.Contestant{Name: "Alice", DateOfBirth: "1990-05-15", StartingWeight: 200, CurrentWeight: 180},
		domain.Contestant{Name: "Bob", DateOfBirth: "1985-01-20", StartingWeight: 150, CurrentWeight: 120},
	)
	svc := app.NewStatsService(repo, calcAt2025)

	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Contestants != 2 {
		t.Errorf("expected 2 contestants, got %d", sum.Contestants)
	}
	if sum.TotalWeightLost != 50 {
		t.Errorf("expected 50 lbs total, got %v", sum.TotalWeightLost)
	}
	// Percentages are 10 and 20.
	if sum.MeanPctLost != 15 || sum.MedianPctLost != 15 {
		t.Errorf("unexpected mean/median: %+v", sum)
	}
	if math.Abs(sum.StdDevPctLost-5) > 1e-9 {
		t.Errorf("expected stddev 5, got %v", sum.StdDevPctLost)
	}
}

func TestSummarize_EmptyRoster(t *testing.T) {
	svc := app.NewStatsService(rosterOf(), calcAt2025)

	sum, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Contestants != 0 || sum.TotalWeightLost != 0 || sum.MeanPctLost != 0 {
		t.Errorf("expected zero summary, got %+v", sum)
	}
}
