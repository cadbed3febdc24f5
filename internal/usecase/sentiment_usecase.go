package usecase

import (
	"context"
	"strings"

	"github.com/jonreiter/govader"
)

type SentimentScores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

type SentimentUsecase interface {
	Score(ctx context.Context, text string) (SentimentScores, error)
}

// Sentiment scores free text with a VADER analyzer. The analyzer is
// stateless after construction and safe to share across requests.
type Sentiment struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentUsecase() *Sentiment {
	return &Sentiment{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (u *Sentiment) Score(_ context.Context, text string) (SentimentScores, error) {
	if strings.TrimSpace(text) == "" {
		return SentimentScores{}, ErrInvalidInput
	}

	s := u.analyzer.PolarityScores(text)
	return SentimentScores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}, nil
}
