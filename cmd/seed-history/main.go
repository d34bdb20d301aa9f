package main

import (
	"context"
	"flag"
	"os"
	"time"

	"balancewheel/internal/seed"
	"balancewheel/pkg/logger"
)

// Default configuration constants.
const (
	defaultSnapshots = 8
	defaultInterval  = 1100 * time.Millisecond // distinct second-resolution keys
	defaultTimeout   = 10 * time.Second
	defaultRunBudget = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8090", "Base URL of the service")
		snapshots = flag.Int("snapshots", defaultSnapshots, "Number of snapshots to seed")
		interval  = flag.Duration("interval", defaultInterval, "Pause between saves")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunBudget)
	defer cancel()

	runner := seed.NewRunner(seed.Config{
		BaseURL:   *baseURL,
		Snapshots: *snapshots,
		Interval:  *interval,
		Timeout:   *timeout,
	})
	if err := runner.Run(ctx); err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
