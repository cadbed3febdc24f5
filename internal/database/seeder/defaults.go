package seeder

func Defaults() []Seeder {
	return []Seeder{
		MenteesSeeder{},
		MentorsSeeder{},
		ResourcesSeeder{},
	}
}
