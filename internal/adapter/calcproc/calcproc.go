// Package calcproc drives the slimcalc binary as a child process and exposes
// it as a domain.Calculator.
package calcproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"slimdown/internal/calc"
	"slimdown/internal/domain"
)

// Calculator shells out to the calculator binary for every operation. When a
// fallback is configured, any process failure (missing binary, timeout,
// unparseable output) is answered by the fallback instead; the two paths
// return identical values for identical inputs.
type Calculator struct {
	path     string
	timeout  time.Duration
	fallback domain.Calculator
}

var _ domain.Calculator = (*Calculator)(nil)

// New returns a Calculator that runs the binary at path. fallback may be nil,
// in which case process failures surface as errors.
func New(path string, fallback domain.Calculator) *Calculator {
	return &Calculator{path: path, timeout: 5 * time.Second, fallback: fallback}
}

func (c *Calculator) Age(ctx context.Context, dateOfBirth string) (int, error) {
	out, err := c.invoke(ctx, "age", dateOfBirth)
	if err == nil {
		age, perr := strconv.Atoi(out)
		if perr == nil {
			return age, nil
		}
		err = fmt.Errorf("calculator age: unexpected output %q", out)
	}
	// A rejected date is an answer, not a process failure.
	if c.fallback != nil && !errors.Is(err, domain.ErrInvalidDateOfBirth) {
		log.WithError(err).Debug("calculator process failed, answering in-process")
		return c.fallback.Age(ctx, dateOfBirth)
	}
	return 0, err
}

func (c *Calculator) WeightLost(ctx context.Context, starting, current float64) (float64, error) {
	return c.derive(ctx, "weight_lost", starting, current, func() (float64, error) {
		return c.fallback.WeightLost(ctx, starting, current)
	})
}

func (c *Calculator) PercentageLost(ctx context.Context, lost, starting float64) (float64, error) {
	return c.derive(ctx, "percentage_lost", lost, starting, func() (float64, error) {
		return c.fallback.PercentageLost(ctx, lost, starting)
	})
}

func (c *Calculator) derive(ctx context.Context, op string, a, b float64, fallback func() (float64, error)) (float64, error) {
	out, err := c.invoke(ctx, op, formatArg(a), formatArg(b))
	if err == nil {
		v, perr := strconv.ParseFloat(out, 64)
		if perr == nil {
			return v, nil
		}
		err = fmt.Errorf("calculator %s: unexpected output %q", op, out)
	}
	if c.fallback != nil {
		log.WithError(err).Debug("calculator process failed, answering in-process")
		return fallback()
	}
	return 0, err
}

// invoke runs one command against the binary and returns its trimmed stdout.
func (c *Calculator) invoke(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if strings.HasPrefix(msg, calc.ErrorPrefix) {
			if strings.Contains(msg, calc.MsgInvalidDOB) {
				return "", domain.ErrInvalidDateOfBirth
			}
			return "", fmt.Errorf("calculator %s: %s", args[0], strings.TrimPrefix(msg, calc.ErrorPrefix))
		}
		return "", fmt.Errorf("calculator %s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// formatArg renders a float argument at full precision; rounding happens on
// the output side only.
func formatArg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
