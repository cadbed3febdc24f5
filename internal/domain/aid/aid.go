package aid

import "mentor-match/internal/domain/record"

// Weights for the financial aid estimate. Income and incarceration
// history dominate; experience level contributes on the assumption
// that beginners are further from employment.
const (
	lowIncomeWeight    = 0.35
	incarceratedWeight = 0.35
)

var experienceWeights = map[string]float64{
	"Beginner":     0.30,
	"Intermediate": 0.15,
	"Advanced":     0.0,
}

// Probability estimates how likely a mentee is to need financial aid,
// in [0, 1]. Unknown experience levels contribute nothing.
func Probability(mentee record.Record) (float64, error) {
	lowIncome, err := mentee.BoolField("low_income")
	if err != nil {
		return 0, err
	}
	incarcerated, err := mentee.BoolField("formerly_incarcerated")
	if err != nil {
		return 0, err
	}
	level, err := mentee.StringField("experience_level")
	if err != nil {
		return 0, err
	}

	p := 0.0
	if lowIncome {
		p += lowIncomeWeight
	}
	if incarcerated {
		p += incarceratedWeight
	}
	p += experienceWeights[level]

	if p > 1 {
		p = 1
	}
	return p, nil
}
