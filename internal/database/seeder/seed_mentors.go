package seeder

import (
	"context"

	"mentor-match/internal/domain/record"
)

type MentorsSeeder struct{}

func (MentorsSeeder) Name() string { return "mentors" }

func (MentorsSeeder) Run(ctx context.Context, repo record.Repository) error {
	mentors := []record.Record{
		{
			"profile_id":         "mentor-001",
			"name":               "Eka Wijaya",
			"subject":            "Web: HTML, CSS, JavaScript",
			"experience_level":   "Beginner",
			"pair_programming":   true,
			"industry_knowledge": false,
		},
		{
			"profile_id":         "mentor-002",
			"name":               "Fajar Nugroho",
			"subject":            "Web: HTML, CSS, JavaScript",
			"experience_level":   "Advanced",
			"pair_programming":   false,
			"industry_knowledge": true,
		},
		{
			"profile_id":         "mentor-003",
			"name":               "Gita Maharani",
			"subject":            "Data Science",
			"experience_level":   "Intermediate",
			"pair_programming":   true,
			"industry_knowledge": true,
		},
		{
			"profile_id":         "mentor-004",
			"name":               "Hendra Gunawan",
			"subject":            "Mobile: Android",
			"experience_level":   "Beginner",
			"pair_programming":   false,
			"industry_knowledge": false,
		},
		{
			"profile_id":         "mentor-005",
			"name":               "Indah Permata",
			"subject":            "Data Science",
			"experience_level":   "Beginner",
			"pair_programming":   true,
			"industry_knowledge": false,
		},
	}

	for _, doc := range mentors {
		if err := ensureDoc(ctx, repo, record.CollectionMentors, "profile_id", doc); err != nil {
			return err
		}
	}
	return nil
}
