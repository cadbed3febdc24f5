package usecase

import (
	"context"
	"errors"
	"strings"

	"mentor-match/internal/domain/aid"
	"mentor-match/internal/domain/record"
)

var ErrMenteeNotFound = errors.New("mentee not found")

type FinancialAidUsecase interface {
	Estimate(ctx context.Context, profileID string) (float64, error)
}

type FinancialAid struct {
	repo record.Repository
}

func NewFinancialAidUsecase(repo record.Repository) *FinancialAid {
	return &FinancialAid{repo: repo}
}

func (u *FinancialAid) Estimate(ctx context.Context, profileID string) (float64, error) {
	profileID = strings.TrimSpace(profileID)
	if profileID == "" {
		return 0, ErrInvalidInput
	}

	mentee, err := u.repo.First(ctx, record.CollectionMentees, record.Filter{"profile_id": profileID})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return 0, ErrMenteeNotFound
		}
		return 0, err
	}

	return aid.Probability(mentee)
}
