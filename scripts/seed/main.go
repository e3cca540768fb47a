package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/blaisecz/sleep-stats/internal/config"
	"github.com/blaisecz/sleep-stats/internal/logging"
	"github.com/blaisecz/sleep-stats/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	if err := seed.Run(context.Background(), db, log, time.Now()); err != nil {
		log.Fatal("failed to seed", zap.Error(err))
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s  %-16s (%s)\n", user.ID, user.Name, user.Timezone)
	}
}
