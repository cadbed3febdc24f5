package seeder

import (
	"context"
	"errors"
	"fmt"

	"mentor-match/internal/domain/record"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, repo record.Repository) error {
	if repo == nil {
		return fmt.Errorf("nil repository")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, repo); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

// ensureDoc inserts a document unless one with the same identifying
// field already exists, so reseeding stays idempotent.
func ensureDoc(ctx context.Context, repo record.Repository, collection, idField string, doc record.Record) error {
	_, err := repo.First(ctx, collection, record.Filter{idField: doc[idField]})
	if err == nil {
		return nil
	}
	if !errors.Is(err, record.ErrNotFound) {
		return err
	}
	_, err = repo.Create(ctx, collection, doc)
	return err
}
