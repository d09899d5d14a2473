// Package calc implements the weight-challenge calculator commands: age,
// weight_lost and percentage_lost. The same code backs the slimcalc binary
// and the in-process calculator, so both produce identical output.
package calc

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"slimdown/internal/domain"
)

// User-facing error messages. These are part of the command contract and are
// matched verbatim by callers that drive the binary.
const (
	MsgInvalidDOB     = "Invalid date of birth"
	MsgMissingDOB     = "Missing date of birth"
	MsgMissingWeights = "Missing starting or current weight"
	MsgInvalidWeights = "Invalid starting or current weight"
	MsgMissingLost    = "Missing weight lost or starting weight"
	MsgInvalidLost    = "Invalid weight lost or starting weight"
	MsgNoCommand      = "No command specified"
)

// ErrorPrefix starts every error line written to stderr.
const ErrorPrefix = "ERROR: "

// Run executes one calculator command with args as passed on the command
// line, command name first. The result goes to stdout as a single line;
// errors go to stderr prefixed with ErrorPrefix. The returned value is the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, domain.DateOf(time.Now()))
}

func run(args []string, stdout, stderr io.Writer, today domain.Date) int {
	if len(args) == 0 {
		return fail(stderr, MsgNoCommand)
	}
	switch args[0] {
	case "age":
		if len(args) < 2 {
			return fail(stderr, MsgMissingDOB)
		}
		dob, err := domain.ParseDOB(args[1])
		if err != nil || dob.After(today) {
			return fail(stderr, MsgInvalidDOB)
		}
		fmt.Fprintf(stdout, "%d\n", domain.AgeOn(dob, today))
	case "weight_lost":
		if len(args) < 3 {
			return fail(stderr, MsgMissingWeights)
		}
		starting, err1 := strconv.ParseFloat(args[1], 64)
		current, err2 := strconv.ParseFloat(args[2], 64)
		if err1 != nil || err2 != nil {
			return fail(stderr, MsgInvalidWeights)
		}
		fmt.Fprintf(stdout, "%.2f\n", domain.WeightLost(starting, current))
	case "percentage_lost":
		if len(args) < 3 {
			return fail(stderr, MsgMissingLost)
		}
		lost, err1 := strconv.ParseFloat(args[1], 64)
		starting, err2 := strconv.ParseFloat(args[2], 64)
		if err1 != nil || err2 != nil {
			return fail(stderr, MsgInvalidLost)
		}
		fmt.Fprintf(stdout, "%.2f\n", domain.PercentageLost(lost, starting))
	default:
		return fail(stderr, "Unknown command: "+args[0])
	}
	return 0
}

func fail(stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "%s%s\n", ErrorPrefix, msg)
	return 1
}
