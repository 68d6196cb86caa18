package domain

import (
	"time"
)

// RankingGroupAboveAvg is the single ranking group the verdict scheme consumes.
// Other groups may exist in the table but are ignored by the resolver.
const RankingGroupAboveAvg = "above_avg"

// BenchmarkEntry is one percentile snapshot for a
// (metric, rankingType, rankingGroup, creativeType) segment, produced by the
// benchmark batch job and read-only to the engine.
//
// The percentile fields (P25/P50/P75/P90) are stored and served as-is but only
// AboveAvg drives verdicts and scores; the percentile display was pulled from
// the product and the columns are kept for a possible comeback.
type BenchmarkEntry struct {
	ID           int64        `json:"id"`
	MetricKey    string       `json:"metric_key"`
	RankingType  RankingType  `json:"ranking_type"`
	RankingGroup string       `json:"ranking_group"`
	CreativeType CreativeType `json:"creative_type"`
	P25          *float64     `json:"p25,omitempty"`
	P50          *float64     `json:"p50,omitempty"`
	P75          *float64     `json:"p75,omitempty"`
	P90          *float64     `json:"p90,omitempty"`
	AboveAvg     *float64     `json:"above_avg,omitempty"`
	CalculatedAt time.Time    `json:"calculated_at"`
	CreatedAt    time.Time    `json:"created_at"`
}
