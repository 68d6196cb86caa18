package domain

import (
	"time"
)

// Diagnostic part names. Weights live in the scoring engine.
const (
	PartFoundation = "foundation"
	PartEngagement = "engagement"
	PartConversion = "conversion"
)

// MetricDiagnosis is one metric's slice of the composite score: the account's
// value over the period, the benchmark it was judged against, the tier verdict
// and the 0-100 sub-score. Value, AboveAvg and Score are nil when the underlying
// data or benchmark is missing.
type MetricDiagnosis struct {
	Key      string     `json:"key"`
	Label    string     `json:"label"`
	Unit     MetricUnit `json:"unit"`
	Value    *float64   `json:"value"`
	AboveAvg *float64   `json:"above_avg"`
	Status   string     `json:"status"`
	Score    *float64   `json:"score"`
}

// PartScore is a named group of metric diagnoses with its mean score. Score is
// nil when no metric in the part had a resolvable benchmark.
type PartScore struct {
	Name    string             `json:"name"`
	Weight  float64            `json:"weight"`
	Score   *float64           `json:"score"`
	Metrics []*MetricDiagnosis `json:"metrics"`
}

// T3Score is the composite diagnosis for an account over a period. Score and
// Grade are nil when the period has no rows at all; the UI distinguishes
// "no data yet" from a real but poor score through that nil.
type T3Score struct {
	AccountID            string       `json:"account_id"`
	Score                *float64     `json:"score"`
	Grade                *string      `json:"grade"`
	GradeLabel           *string      `json:"grade_label"`
	Parts                []*PartScore `json:"parts"`
	DominantCreativeType CreativeType `json:"dominant_creative_type"`
	DataAvailableDays    int          `json:"data_available_days"`
	PeriodDays           int          `json:"period_days"`
	StartDate            string       `json:"start_date"`
	EndDate              string       `json:"end_date"`
	ComputedAt           time.Time    `json:"computed_at"`
}
