package domain

import (
	"time"
)

type CreativeType string

const (
	CreativeTypeVideo CreativeType = "VIDEO"
	CreativeTypeImage CreativeType = "IMAGE"
	// CreativeTypeAll is the aggregate benchmark segment used as fallback when no
	// type-specific benchmark row exists.
	CreativeTypeAll CreativeType = "ALL"
)

// Rates holds the optional derived rates of a metric row. A nil field means the
// denominator was zero on that day; the collector never writes NaN or Inf.
type Rates struct {
	CTR              *float64 `json:"ctr,omitempty"`
	ROAS             *float64 `json:"roas,omitempty"`
	CPM              *float64 `json:"cpm,omitempty"`
	CostPerPurchase  *float64 `json:"cost_per_purchase,omitempty"`
	VideoRetention   *float64 `json:"video_retention,omitempty"`
	ClickToCart      *float64 `json:"click_to_cart,omitempty"`
	ClickToPurchase  *float64 `json:"click_to_purchase,omitempty"`
	EngagementPer10k *float64 `json:"engagement_per_10k,omitempty"`
}

// ByKey resolves a rate by its catalog metric key. Unknown keys resolve to nil,
// the same as a missing value.
func (r Rates) ByKey(key string) *float64 {
	switch key {
	case MetricCTR:
		return r.CTR
	case MetricROAS:
		return r.ROAS
	case MetricCPM:
		return r.CPM
	case MetricCostPerPurchase:
		return r.CostPerPurchase
	case MetricVideoRetention:
		return r.VideoRetention
	case MetricClickToCart:
		return r.ClickToCart
	case MetricClickToPurchase:
		return r.ClickToPurchase
	case MetricEngagementPer10k:
		return r.EngagementPer10k
	}
	return nil
}

// MetricRow is one ad on one day, as written by the collection pipeline.
// Rows are immutable facts; the engine only ever reads them.
type MetricRow struct {
	ID            int64        `json:"id"`
	AccountID     string       `json:"account_id"`
	Date          time.Time    `json:"date"`
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
	Rates         Rates        `json:"rates"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
