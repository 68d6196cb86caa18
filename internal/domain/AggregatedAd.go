package domain

// AggregatedAd is one ad's totals over a period. Additive fields are summed
// across the ad's daily rows; ROAS and CTR are recomputed from the summed
// numerators and denominators, never averaged across days.
type AggregatedAd struct {
	AdID          string       `json:"ad_id"`
	AdName        string       `json:"ad_name"`
	AdsetID       string       `json:"adset_id"`
	AdsetName     string       `json:"adset_name"`
	CampaignID    string       `json:"campaign_id"`
	CampaignName  string       `json:"campaign_name"`
	CreativeType  CreativeType `json:"creative_type"`
	Spend         float64      `json:"spend"`
	Impressions   int          `json:"impressions"`
	Reach         int          `json:"reach"`
	Clicks        int          `json:"clicks"`
	Purchases     int          `json:"purchases"`
	PurchaseValue float64      `json:"purchase_value"`
	ROAS          float64      `json:"roas"`
	CTR           float64      `json:"ctr"`
	Days          int          `json:"days"`
}

// AccountSummary is the account-level total across every ad of the period,
// with the same recompute rule as AggregatedAd.
type AccountSummary struct {
	AccountID     string  `json:"account_id"`
	Spend         float64 `json:"spend"`
	Impressions   int     `json:"impressions"`
	Reach         int     `json:"reach"`
	Clicks        int     `json:"clicks"`
	Purchases     int     `json:"purchases"`
	PurchaseValue float64 `json:"purchase_value"`
	ROAS          float64 `json:"roas"`
	CTR           float64 `json:"ctr"`
	AdCount       int     `json:"ad_count"`
	DataDays      int     `json:"data_days"`
}

// AggregatesResponse is the payload of the aggregates endpoint.
type AggregatesResponse struct {
	Summary   *AccountSummary `json:"summary"`
	Ads       []*AggregatedAd `json:"ads"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
}
