package main

import (
	"context"
	"flag"
	"log"
	"time"

	"mentor-match/internal/app"
	"mentor-match/internal/config"
	"mentor-match/internal/database/migration"
	"mentor-match/internal/importer"
	"mentor-match/internal/logger"
	"mentor-match/internal/repository"
)

func main() {
	workers := flag.Int("workers", 4, "number of fetch workers")
	rps := flag.Int("rps", 2, "max requests per second across all workers")
	headless := flag.Bool("headless", false, "render JS pages in headless Chrome when the plain fetch comes back empty")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	c, err := app.NewContainer(cfg, zl)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			zl.Sugar().Errorf("cleanup error: %v", err)
		}
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	if err := (migration.Runner{Dir: "migrations"}).Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repo := repository.NewPostgresRecordRepository(c.DB)
	imp := importer.New(repo, zl, *headless)
	if err := imp.Run(ctx, *workers, *rps); err != nil {
		log.Fatalf("import failed: %v", err)
	}
}
