package domain

// Verdict tier labels. These are product wire constants; the web layer renders
// them verbatim.
const (
	VerdictExcellent = "우수"
	VerdictAverage   = "보통"
	VerdictBelow     = "미달"
	VerdictNoData    = "데이터 없음"
)

// Classes the UI keys styling off, direction-aware and computed per comparison.
const (
	VerdictClassExcellent = "excellent"
	VerdictClassAverage   = "average"
	VerdictClassBelow     = "below"
	VerdictClassNoData    = "no-data"
)

// VerdictResult is a single value-vs-benchmark classification. Ephemeral, never
// persisted.
type VerdictResult struct {
	Label string `json:"label"`
	Class string `json:"class"`
}
