package dto

import "mentor-match/internal/domain/record"

// MatchResponse carries the matched profile ids as a bare list under
// "result".
type MatchResponse struct {
	Result []string `json:"result"`
}

type FinancialAidResponse struct {
	Result float64 `json:"result"`
}

type SentimentResponse struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
	Compound float64 `json:"compound"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

type RecordsResponse struct {
	Result []record.Record `json:"result"`
}

type RecordResponse struct {
	Result record.Record `json:"result"`
}

type CountResponse struct {
	Result int64 `json:"result"`
}

type DeletedResponse struct {
	Deleted string `json:"deleted"`
}

type CollectionsResponse struct {
	Result map[string]int64 `json:"result"`
}
