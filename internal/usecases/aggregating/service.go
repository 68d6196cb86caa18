// Package aggregating collapses daily per-ad metric rows into period totals.
//
// Additive fields are summed; ratio fields (ROAS, CTR) are recomputed from the
// summed numerators and denominators. Averaging per-day ratios would bias the
// result whenever daily spend is uneven, so the recompute rule is an invariant
// here. CalcAverage is the one sanctioned exception: benchmark comparisons
// target an averaged benchmark, so they compare against an averaged rate.
package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

type Service struct {
	metricRowRepo repository.MetricRowRepository
}

func NewService(metricRowRepo repository.MetricRowRepository) *Service {
	return &Service{metricRowRepo: metricRowRepo}
}

// GetAggregates loads the account's rows for the period and returns the
// per-ad and account-level totals.
func (s *Service) GetAggregates(accountID string, startDate, endDate time.Time) (*domain.AggregatesResponse, error) {
	rows, err := s.metricRowRepo.GetByDateRange(accountID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "loading metric rows for aggregation")
	}

	summary := AggregateSummary(rows)
	summary.AccountID = accountID

	return &domain.AggregatesResponse{
		Summary:   summary,
		Ads:       AggregateByAd(rows),
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
	}, nil
}

type adAccumulator struct {
	ad    *domain.AggregatedAd
	dates map[string]bool
}

// AggregateByAd groups rows by ad id, sums additive fields, recomputes ROAS and
// CTR from the sums and returns ads sorted by spend, highest first. Empty input
// yields an empty slice, never an error.
func AggregateByAd(rows []*domain.MetricRow) []*domain.AggregatedAd {
	accumulators := make(map[string]*adAccumulator)

	for _, row := range rows {
		acc, exists := accumulators[row.AdID]
		if !exists {
			acc = &adAccumulator{
				ad: &domain.AggregatedAd{
					AdID:         row.AdID,
					AdName:       row.AdName,
					AdsetID:      row.AdsetID,
					AdsetName:    row.AdsetName,
					CampaignID:   row.CampaignID,
					CampaignName: row.CampaignName,
					CreativeType: row.CreativeType,
				},
				dates: make(map[string]bool),
			}
			accumulators[row.AdID] = acc
		}

		acc.ad.Spend += row.Spend
		acc.ad.Impressions += row.Impressions
		acc.ad.Reach += row.Reach
		acc.ad.Clicks += row.Clicks
		acc.ad.Purchases += row.Purchases
		acc.ad.PurchaseValue += row.PurchaseValue
		acc.dates[row.Date.Format(time.DateOnly)] = true

		// Any video-play signal marks the whole ad as VIDEO.
		if row.CreativeType == domain.CreativeTypeVideo {
			acc.ad.CreativeType = domain.CreativeTypeVideo
		}
	}

	ads := lo.Map(lo.Values(accumulators), func(acc *adAccumulator, _ int) *domain.AggregatedAd {
		acc.ad.Days = len(acc.dates)
		acc.ad.ROAS = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(acc.ad.PurchaseValue, acc.ad.Spend))
		acc.ad.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(acc.ad.Clicks), float64(acc.ad.Impressions)) * 100)
		return acc.ad
	})

	sort.Slice(ads, func(i, j int) bool {
		return ads[i].Spend > ads[j].Spend
	})

	return ads
}

// AggregateSummary totals every ad of the period into one account-level
// summary, with the same recompute rule.
func AggregateSummary(rows []*domain.MetricRow) *domain.AccountSummary {
	summary := &domain.AccountSummary{}

	adIDs := make(map[string]bool)
	dates := make(map[string]bool)

	for _, row := range rows {
		if summary.AccountID == "" {
			summary.AccountID = row.AccountID
		}

		summary.Spend += row.Spend
		summary.Impressions += row.Impressions
		summary.Reach += row.Reach
		summary.Clicks += row.Clicks
		summary.Purchases += row.Purchases
		summary.PurchaseValue += row.PurchaseValue

		adIDs[row.AdID] = true
		dates[row.Date.Format(time.DateOnly)] = true
	}

	summary.AdCount = len(adIDs)
	summary.DataDays = len(dates)
	summary.ROAS = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(summary.PurchaseValue, summary.Spend))
	summary.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(summary.Clicks), float64(summary.Impressions)) * 100)

	return summary
}

// CalcAverage returns the arithmetic mean of a named rate across rows, ignoring
// nil and non-finite entries. Returns nil when no row carries a usable value.
func CalcAverage(rows []*domain.MetricRow, key string) *float64 {
	var sum float64
	var count int

	for _, row := range rows {
		value := row.Rates.ByKey(key)
		if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
			continue
		}
		sum += *value
		count++
	}

	if count == 0 {
		return nil
	}

	avg := sum / float64(count)
	return &avg
}

// DominantCreativeType picks the creative type carrying the largest spend
// share, falling back to impressions when nothing was spent, then to VIDEO.
func DominantCreativeType(ads []*domain.AggregatedAd) domain.CreativeType {
	spendByType := make(map[domain.CreativeType]float64)
	impressionsByType := make(map[domain.CreativeType]int)

	for _, ad := range ads {
		spendByType[ad.CreativeType] += ad.Spend
		impressionsByType[ad.CreativeType] += ad.Impressions
	}

	if spendByType[domain.CreativeTypeVideo] != spendByType[domain.CreativeTypeImage] {
		if spendByType[domain.CreativeTypeVideo] > spendByType[domain.CreativeTypeImage] {
			return domain.CreativeTypeVideo
		}
		return domain.CreativeTypeImage
	}

	if impressionsByType[domain.CreativeTypeImage] > impressionsByType[domain.CreativeTypeVideo] {
		return domain.CreativeTypeImage
	}

	return domain.CreativeTypeVideo
}
