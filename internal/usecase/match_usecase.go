package usecase

import (
	"context"
	"strings"

	"mentor-match/internal/domain/matching"
)

type MatchUsecase interface {
	MatchMentors(ctx context.Context, nMatches int, profileID string) ([]string, error)
	MatchResource(ctx context.Context, nMatches int, itemID string) ([]string, error)
}

// Match runs the configured mentor matching strategy and the resource
// matcher. Results are never persisted or cached; every call reads the
// store afresh.
type Match struct {
	mentors   matching.Matcher
	resources *matching.Resource
}

func NewMatchUsecase(mentors matching.Matcher, resources *matching.Resource) *Match {
	return &Match{mentors: mentors, resources: resources}
}

func (u *Match) MatchMentors(ctx context.Context, nMatches int, profileID string) ([]string, error) {
	if strings.TrimSpace(profileID) == "" {
		return nil, ErrInvalidInput
	}
	return u.mentors.Match(ctx, nMatches, profileID)
}

func (u *Match) MatchResource(ctx context.Context, nMatches int, itemID string) ([]string, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, ErrInvalidInput
	}
	return u.resources.Match(ctx, nMatches, itemID)
}
