package domain_test

import (
	"math"
	"testing"

	"slimdown/internal/domain"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestParseDOB(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    domain.Date
		wantErr bool
	}{
		{"valid", "1990-05-15", domain.Date{Year: 1990, Month: 5, Day: 15}, false},
		{"valid boundary day", "1990-01-31", domain.Date{Year: 1990, Month: 1, Day: 31}, false},
		{"february 31 accepted", "2024-02-31", domain.Date{Year: 2024, Month: 2, Day: 31}, false},
		{"empty", "", domain.Date{}, true},
		{"slashes", "1990/05/15", domain.Date{}, true},
		{"reversed", "15-05-1990", domain.Date{}, true},
		{"unpadded month", "1990-5-15", domain.Date{}, true},
		{"letter in year", "199O-05-15", domain.Date{}, true},
		{"trailing garbage", "1990-05-15x", domain.Date{}, true},
		{"month zero", "1990-00-15", domain.Date{}, true},
		{"month thirteen", "1990-13-15", domain.Date{}, true},
		{"day zero", "1990-05-00", domain.Date{}, true},
		{"day thirty-two", "1990-05-32", domain.Date{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.ParseDOB(tc.in)
			if tc.wantErr {
				if err != domain.ErrInvalidDateOfBirth {
					t.Fatalf("ParseDOB(%q) err = %v; want ErrInvalidDateOfBirth", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDOB(%q) err = %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDOB(%q) = %+v; want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAgeOn(t *testing.T) {
	tests := []struct {
		name  string
		dob   domain.Date
		today domain.Date
		want  int
	}{
		{"birthday not yet reached", domain.Date{Year: 1990, Month: 5, Day: 15}, domain.Date{Year: 2025, Month: 12, Day: 1}, 35},
		{"day before birthday", domain.Date{Year: 1990, Month: 5, Day: 15}, domain.Date{Year: 2025, Month: 5, Day: 14}, 34},
		{"on birthday", domain.Date{Year: 1990, Month: 5, Day: 15}, domain.Date{Year: 2025, Month: 5, Day: 15}, 35},
		{"day after birthday", domain.Date{Year: 1990, Month: 5, Day: 15}, domain.Date{Year: 2025, Month: 5, Day: 16}, 35},
		{"born today", domain.Date{Year: 2025, Month: 5, Day: 15}, domain.Date{Year: 2025, Month: 5, Day: 15}, 0},
		{"earlier month later day", domain.Date{Year: 2000, Month: 3, Day: 20}, domain.Date{Year: 2024, Month: 2, Day: 25}, 23},
		{"leap day birth", domain.Date{Year: 2004, Month: 2, Day: 29}, domain.Date{Year: 2025, Month: 2, Day: 28}, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.AgeOn(tc.dob, tc.today); got != tc.want {
				t.Errorf("AgeOn(%v, %v) = %d; want %d", tc.dob, tc.today, got, tc.want)
			}
		})
	}
}

func TestDateAfter(t *testing.T) {
	base := domain.Date{Year: 2025, Month: 6, Day: 15}
	tests := []struct {
		name string
		d    domain.Date
		want bool
	}{
		{"later year", domain.Date{Year: 2026, Month: 1, Day: 1}, true},
		{"later month", domain.Date{Year: 2025, Month: 7, Day: 1}, true},
		{"later day", domain.Date{Year: 2025, Month: 6, Day: 16}, true},
		{"same day", domain.Date{Year: 2025, Month: 6, Day: 15}, false},
		{"earlier", domain.Date{Year: 2025, Month: 6, Day: 14}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.After(base); got != tc.want {
				t.Errorf("(%v).After(%v) = %v; want %v", tc.d, base, got, tc.want)
			}
		})
	}
}

func TestWeightLost(t *testing.T) {
	tests := []struct {
		name              string
		starting, current float64
		want              float64
	}{
		{"loss", 200.0, 175.5, 24.5},
		{"gain is negative", 180.0, 190.0, -10.0},
		{"no change", 150.0, 150.0, 0},
		{"zero current", 120.0, 0, 120.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.WeightLost(tc.starting, tc.current)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("WeightLost(%v, %v) = %v; want %v", tc.starting, tc.current, got, tc.want)
			}
			// Swapping the arguments flips the sign.
			if swapped := domain.WeightLost(tc.current, tc.starting); !almostEqual(swapped, -tc.want, 1e-9) {
				t.Errorf("WeightLost(%v, %v) = %v; want %v", tc.current, tc.starting, swapped, -tc.want)
			}
		})
	}
}

func TestPercentageLost(t *testing.T) {
	tests := []struct {
		name           string
		lost, starting float64
		want           float64
	}{
		{"eighth of starting", 25.0, 200.0, 12.5},
		{"all of starting", 200.0, 200.0, 100.0},
		{"gain is negative", -10.0, 200.0, -5.0},
		{"zero starting", 25.0, 0, 0},
		{"negative starting", 25.0, -10.0, 0},
		{"zero lost", 0, 180.0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.PercentageLost(tc.lost, tc.starting)
			if !almostEqual(got, tc.want, 1e-9) {
				t.Errorf("PercentageLost(%v, %v) = %v; want %v", tc.lost, tc.starting, got, tc.want)
			}
		})
	}

	// Doubling the loss doubles the percentage while starting is held fixed.
	if a, b := domain.PercentageLost(10, 160), domain.PercentageLost(20, 160); !almostEqual(2*a, b, 1e-9) {
		t.Errorf("PercentageLost not linear in lost: %v vs %v", a, b)
	}
}
