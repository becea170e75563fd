package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kundendash-dev/kundendash/internal/commands"
)

func main() {
	// A .env next to the binary may carry KUNDENDASH_* overrides.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
