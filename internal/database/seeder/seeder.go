package seeder

import (
	"context"

	"mentor-match/internal/domain/record"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, repo record.Repository) error
}
