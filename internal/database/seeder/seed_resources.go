package seeder

import (
	"context"

	"mentor-match/internal/domain/record"
)

type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "resources" }

func (ResourcesSeeder) Run(ctx context.Context, repo record.Repository) error {
	resources := []record.Record{
		{
			"item_id": "resource-001",
			"name":    "Responsive Web Design",
			"subject": "Web: HTML, CSS, JavaScript",
			"url":     "https://www.freecodecamp.org/learn/2022/responsive-web-design/",
		},
		{
			"item_id": "resource-002",
			"name":    "Data Analysis with Python",
			"subject": "Data Science",
			"url":     "https://www.freecodecamp.org/learn/data-analysis-with-python/",
		},
		{
			"item_id": "resource-003",
			"subject": "Mobile: Android",
			"url":     "https://developer.android.com/courses",
		},
	}

	for _, doc := range resources {
		if err := ensureDoc(ctx, repo, record.CollectionResources, "item_id", doc); err != nil {
			return err
		}
	}
	return nil
}
