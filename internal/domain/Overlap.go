package domain

import (
	"fmt"
	"time"
)

// Adset is an active ad-set as reported by the reach oracle, with its period
// reach filled in by the estimator.
type Adset struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CampaignName string `json:"campaign_name"`
	Reach        int    `json:"reach"`
}

// OverlapPair is the estimated audience overlap between two ad-sets,
// inclusion-exclusion against the combined-reach oracle, clamped to [0, 100].
type OverlapPair struct {
	AdsetAID      string  `json:"adset_a_id"`
	AdsetAName    string  `json:"adset_a_name"`
	AdsetBID      string  `json:"adset_b_id"`
	AdsetBName    string  `json:"adset_b_name"`
	ReachA        int     `json:"reach_a"`
	ReachB        int     `json:"reach_b"`
	CombinedReach int     `json:"combined_reach"`
	OverlapRate   float64 `json:"overlap_rate"`
}

// OverlapResult is the account-level overlap estimate for a period.
type OverlapResult struct {
	AccountID          string         `json:"account_id"`
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	OverallRate        float64        `json:"overall_rate"`
	TotalUniqueReach   int            `json:"total_unique_reach"`
	IndividualReachSum int            `json:"individual_reach_sum"`
	Pairs              []*OverlapPair `json:"pairs"`
	Truncated          bool           `json:"truncated"`
	Cached             bool           `json:"cached"`
	ComputedAt         time.Time      `json:"computed_at"`
}

// OverlapKeyOverall is the cache key of the whole-period result row; pair rows
// use PairKey.
const OverlapKeyOverall = "overall"

// PairKey builds the cache key for an unordered ad-set pair. IDs are ordered
// lexicographically so (a,b) and (b,a) share a row.
func PairKey(adsetA, adsetB string) string {
	if adsetB < adsetA {
		adsetA, adsetB = adsetB, adsetA
	}
	return fmt.Sprintf("pair:%s:%s", adsetA, adsetB)
}

// CachedOverlap is one overlap cache row. Exactly one of Result and Pair is set
// depending on the key.
type CachedOverlap struct {
	ID          string         `json:"id"`
	AccountID   string         `json:"account_id"`
	Key         string         `json:"key"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Result      *OverlapResult `json:"result,omitempty"`
	Pair        *OverlapPair   `json:"pair,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
