package domain

// Metric keys referenced by the catalog, the scoring engine and the benchmark
// tables. Adding a metric means adding a catalog entry below; no other component
// hardcodes metric lists.
const (
	MetricCTR              = "ctr"
	MetricCPM              = "cpm"
	MetricVideoRetention   = "video_retention"
	MetricEngagementPer10k = "engagement_per_10k"
	MetricROAS             = "roas"
	MetricClickToCart      = "click_to_cart"
	MetricClickToPurchase  = "click_to_purchase"
	MetricCostPerPurchase  = "cost_per_purchase"
)

type MetricUnit string

const (
	UnitRatio    MetricUnit = "ratio"
	UnitPercent  MetricUnit = "percent"
	UnitCurrency MetricUnit = "currency"
	UnitCount    MetricUnit = "count"
	UnitPer10k   MetricUnit = "per10k"
)

// RankingType is the benchmark dimension a metric is judged against.
type RankingType string

const (
	RankingTypeEngagement RankingType = "engagement"
	RankingTypeConversion RankingType = "conversion"
)

// MetricDefinition is one catalog entry. Ascending means higher is better.
type MetricDefinition struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Unit       MetricUnit  `json:"unit"`
	Ascending  bool        `json:"ascending"`
	BenchGroup RankingType `json:"bench_group"`
}

var metricCatalog = []MetricDefinition{
	{Key: MetricCTR, Label: "클릭률 (CTR)", Unit: UnitPercent, Ascending: true, BenchGroup: RankingTypeEngagement},
	{Key: MetricCPM, Label: "1,000회 노출당 비용 (CPM)", Unit: UnitCurrency, Ascending: false, BenchGroup: RankingTypeEngagement},
	{Key: MetricVideoRetention, Label: "영상 시청 유지율", Unit: UnitPercent, Ascending: true, BenchGroup: RankingTypeEngagement},
	{Key: MetricEngagementPer10k, Label: "노출 1만회당 반응수", Unit: UnitPer10k, Ascending: true, BenchGroup: RankingTypeEngagement},
	{Key: MetricROAS, Label: "광고 수익률 (ROAS)", Unit: UnitRatio, Ascending: true, BenchGroup: RankingTypeConversion},
	{Key: MetricClickToCart, Label: "클릭 대비 장바구니 전환율", Unit: UnitPercent, Ascending: true, BenchGroup: RankingTypeConversion},
	{Key: MetricClickToPurchase, Label: "클릭 대비 구매 전환율", Unit: UnitPercent, Ascending: true, BenchGroup: RankingTypeConversion},
	{Key: MetricCostPerPurchase, Label: "구매당 비용", Unit: UnitCurrency, Ascending: false, BenchGroup: RankingTypeConversion},
}

// AllMetrics returns the full metric catalog. The returned slice is a copy; the
// catalog itself is never mutated after process start.
func AllMetrics() []MetricDefinition {
	out := make([]MetricDefinition, len(metricCatalog))
	copy(out, metricCatalog)
	return out
}
