package importer

import (
	"context"
	"fmt"
	"strings"

	"mentor-match/internal/domain/record"

	"go.uber.org/zap"
)

// Importer backfills name and description on resource documents by
// fetching the page each resource URL points at.
type Importer struct {
	repo        record.Repository
	logger      *zap.Logger
	fetch       func(ctx context.Context, pageURL string) (PageMetadata, error)
	headless    func(ctx context.Context, pageURL string) (PageMetadata, error)
	useHeadless bool
}

func New(repo record.Repository, logger *zap.Logger, useHeadless bool) *Importer {
	return &Importer{
		repo:        repo,
		logger:      logger,
		fetch:       fetchMetadata,
		headless:    fetchMetadataHeadless,
		useHeadless: useHeadless,
	}
}

// Run walks every resource document and fetches metadata for the ones
// still missing a name or description. Individual fetch failures are
// logged and do not stop the run.
func (i *Importer) Run(ctx context.Context, workers, rps int) error {
	if i == nil || i.repo == nil {
		return fmt.Errorf("nil importer/repository")
	}

	resources, err := i.repo.Read(ctx, record.CollectionResources, nil)
	if err != nil {
		return fmt.Errorf("read resources: %w", err)
	}

	type job struct {
		itemID  string
		pageURL string
	}
	jobs := make([]job, 0, len(resources))
	for _, res := range resources {
		itemID := stringValue(res, "item_id")
		pageURL := stringValue(res, "url")
		if itemID == "" || pageURL == "" {
			continue
		}
		if stringValue(res, "name") != "" && stringValue(res, "description") != "" {
			continue
		}
		jobs = append(jobs, job{itemID: itemID, pageURL: pageURL})
	}

	pool := NewWorkerPool(workers, workers*2)
	if rps > 0 {
		pool.SetRateLimit(rps)
	}
	results := pool.Run(ctx)

	// Submit from a separate goroutine: the results channel is bounded,
	// so draining it here must overlap with submission or a large
	// backlog stalls the workers and Submit with them.
	go func() {
		for _, j := range jobs {
			j := j
			pool.Submit(func(ctx context.Context) error {
				return i.importOne(ctx, j.itemID, j.pageURL)
			})
		}
		pool.Close()
	}()

	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
			i.logger.Warn("resource import failed", zap.Error(res.Err))
		}
	}

	i.logger.Info("resource import finished",
		zap.Int("submitted", len(jobs)),
		zap.Int("failed", failed),
	)
	return nil
}

func (i *Importer) importOne(ctx context.Context, itemID, pageURL string) error {
	meta, err := i.fetch(ctx, pageURL)
	if (err != nil || meta.empty()) && i.useHeadless && i.headless != nil {
		meta, err = i.headless(ctx, pageURL)
	}
	if err != nil {
		return fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	if meta.empty() {
		return fmt.Errorf("no metadata found at %s", pageURL)
	}

	changes := record.Record{}
	if meta.Title != "" {
		changes["name"] = meta.Title
	}
	if meta.Description != "" {
		changes["description"] = meta.Description
	}

	n, err := i.repo.Update(ctx, record.CollectionResources, record.Filter{"item_id": itemID}, changes)
	if err != nil {
		return fmt.Errorf("update resource %s: %w", itemID, err)
	}
	if n == 0 {
		return fmt.Errorf("resource %s vanished during import", itemID)
	}
	return nil
}

func stringValue(doc record.Record, key string) string {
	v, ok := doc[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
