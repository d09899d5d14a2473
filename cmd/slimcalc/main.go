package main

import (
	"os"

	"slimdown/internal/calc"
)

func main() {
	os.Exit(calc.Run(os.Args[1:], os.Stdout, os.Stderr))
}
