// Command seed resets the database to the OpenRide demo snapshot.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"openride/internal/cache"
	"openride/internal/config"
	"openride/internal/logger"
	"openride/internal/seeder"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("seeding failed")
		fmt.Fprintf(os.Stderr, "\n❌ Error seeding data: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	logger.Setup(cfg.LogFile, cfg.LogLevel)

	rule := strings.Repeat("=", 60)
	fmt.Printf("%s\n🌱 OPENRIDE DEMO DATA SEEDER\n%s\n", rule, rule)

	fmt.Println("\n📦 Initializing database...")
	db, err := config.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.Close(db); err != nil {
			logrus.WithError(err).Warn("closing database")
		}
	}()

	if err := config.Migrate(db); err != nil {
		return err
	}

	ctx := context.Background()
	var opts []seeder.Option
	if cfg.RedisURL != "" {
		rc, err := cache.Connect(ctx, cfg.RedisURL, cfg.RouteCacheTTL)
		if err != nil {
			logrus.WithError(err).Warn("route cache unavailable, skipping invalidation")
		} else {
			defer rc.Close()
			opts = append(opts, seeder.WithCache(rc))
		}
	}

	_, err = seeder.New(db, os.Stdout, opts...).Run(ctx)
	return err
}
