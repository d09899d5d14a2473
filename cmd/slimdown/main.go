package main

import (
	"os"

	"github.com/joho/godotenv"

	"slimdown/internal/cli"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
