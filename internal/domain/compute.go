package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateOfBirth is returned for dates of birth that are not in
// YYYY-MM-DD form, have an out-of-range month or day, or lie in the future.
var ErrInvalidDateOfBirth = errors.New("invalid date of birth")

// Date is a calendar date exactly as written. Combinations such as
// 2024-02-31 are representable; validation is range checks only, with no
// per-month day count.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// After reports whether d is a later calendar date than other.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDOB parses a date of birth in strict YYYY-MM-DD form: four digits,
// dash, two digits, dash, two digits. The month must be 1-12 and the day
// 1-31.
func ParseDOB(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, ErrInvalidDateOfBirth
	}
	year, ok := atoiDigits(s[0:4])
	if !ok {
		return Date{}, ErrInvalidDateOfBirth
	}
	month, ok := atoiDigits(s[5:7])
	if !ok {
		return Date{}, ErrInvalidDateOfBirth
	}
	day, ok := atoiDigits(s[8:10])
	if !ok {
		return Date{}, ErrInvalidDateOfBirth
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, ErrInvalidDateOfBirth
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

func atoiDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// AgeOn returns the age in whole years on the given day for someone born on
// dob. The count goes down by one when the birthday has not yet occurred in
// today's year.
func AgeOn(dob, today Date) int {
	age := today.Year - dob.Year
	if today.Month < dob.Month || (today.Month == dob.Month && today.Day < dob.Day) {
		age--
	}
	return age
}

// WeightLost returns starting - current. Negative when weight was gained.
func WeightLost(starting, current float64) float64 {
	return starting - current
}

// PercentageLost returns the weight lost as a percentage of the starting
// weight, or 0 when the starting weight is zero or negative.
func PercentageLost(lost, starting float64) float64 {
	if starting <= 0 {
		return 0
	}
	return lost / starting * 100
}
