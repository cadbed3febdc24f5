package seeder

import (
	"context"

	"mentor-match/internal/domain/record"
)

type MenteesSeeder struct{}

func (MenteesSeeder) Name() string { return "mentees" }

func (MenteesSeeder) Run(ctx context.Context, repo record.Repository) error {
	mentees := []record.Record{
		{
			"profile_id":            "mentee-001",
			"name":                  "Ayu Lestari",
			"subject":               "Web: HTML, CSS, JavaScript",
			"experience_level":      "Beginner",
			"pair_programming":      true,
			"low_income":            true,
			"formerly_incarcerated": false,
		},
		{
			"profile_id":            "mentee-002",
			"name":                  "Budi Santoso",
			"subject":               "Data Science",
			"experience_level":      "Intermediate",
			"pair_programming":      false,
			"low_income":            false,
			"formerly_incarcerated": false,
		},
		{
			"profile_id":            "mentee-003",
			"name":                  "Citra Dewi",
			"subject":               "Mobile: Android",
			"experience_level":      "Beginner",
			"pair_programming":      true,
			"low_income":            true,
			"formerly_incarcerated": true,
		},
		{
			"profile_id":            "mentee-004",
			"name":                  "Dimas Pratama",
			"subject":               "Web: HTML, CSS, JavaScript",
			"experience_level":      "Advanced",
			"pair_programming":      false,
			"low_income":            false,
			"formerly_incarcerated": false,
		},
	}

	for _, doc := range mentees {
		if err := ensureDoc(ctx, repo, record.CollectionMentees, "profile_id", doc); err != nil {
			return err
		}
	}
	return nil
}
