package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"paperbot/config"
	"paperbot/orchestrator"

	"github.com/joho/godotenv"
)

// One invocation performs one fetch-dedupe-publish cycle and exits.
// Scheduling repeated runs is cron's job, not ours.
func main() {
	log.SetOutput(os.Stderr)

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paperbot: %v\n", err)
		os.Exit(1)
	}

	if err := orchestrator.RunOnce(context.Background(), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "paperbot: %v\n", err)
		os.Exit(1)
	}
}
