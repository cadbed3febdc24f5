package aid

import (
	"errors"
	"testing"

	"mentor-match/internal/domain/record"
)

func menteeDoc(lowIncome, incarcerated bool, level string) record.Record {
	return record.Record{
		"profile_id":            "m1",
		"low_income":            lowIncome,
		"formerly_incarcerated": incarcerated,
		"experience_level":      level,
	}
}

func TestProbability(t *testing.T) {
	cases := []struct {
		name   string
		mentee record.Record
		want   float64
	}{
		{"no factors", menteeDoc(false, false, "Advanced"), 0.0},
		{"low income only", menteeDoc(true, false, "Advanced"), 0.35},
		{"all factors beginner", menteeDoc(true, true, "Beginner"), 1.0},
		{"intermediate both flags", menteeDoc(true, true, "Intermediate"), 0.85},
		{"unknown level ignored", menteeDoc(false, true, "Expert"), 0.35},
	}

	for _, tc := range cases {
		got, err := Probability(tc.mentee)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tc.name, err)
		}
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestProbability_MissingField(t *testing.T) {
	_, err := Probability(record.Record{"profile_id": "m1"})
	if !errors.Is(err, record.ErrMalformedField) {
		t.Fatalf("expected ErrMalformedField, got %v", err)
	}
}
