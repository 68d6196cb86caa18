package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

func metricRow(adID string, date time.Time, spend float64, impressions, clicks int, purchaseValue float64) *domain.MetricRow {
	return &domain.MetricRow{
		AccountID:     "ACC001",
		Date:          date,
		AdID:          adID,
		AdName:        "ad " + adID,
		CreativeType:  domain.CreativeTypeVideo,
		Spend:         spend,
		Impressions:   impressions,
		Clicks:        clicks,
		PurchaseValue: purchaseValue,
	}
}

func TestAggregateByAd(t *testing.T) {
	tests := []struct {
		name     string
		rows     []*domain.MetricRow
		validate func(t *testing.T, ads []*domain.AggregatedAd)
	}{
		{
			name: "two days of one ad recompute ratios from sums",
			rows: []*domain.MetricRow{
				metricRow("x", day(1), 100, 10000, 100, 150),
				metricRow("x", day(2), 200, 20000, 200, 450),
			},
			validate: func(t *testing.T, ads []*domain.AggregatedAd) {
				assert.Len(t, ads, 1)
				assert.Equal(t, 300.0, ads[0].Spend)
				assert.Equal(t, 600.0, ads[0].PurchaseValue)
				assert.Equal(t, 2.0, ads[0].ROAS)
				assert.Equal(t, 1.0, ads[0].CTR)
				assert.Equal(t, 2, ads[0].Days)
			},
		},
		{
			name: "uneven daily spend biases an averaged ratio but not the recompute",
			rows: []*domain.MetricRow{
				// Daily ROAS 5.0 on a tiny day, 1.0 on a big day; averaging
				// the two would report 3.0.
				metricRow("x", day(1), 10, 1000, 10, 50),
				metricRow("x", day(2), 990, 99000, 990, 990),
			},
			validate: func(t *testing.T, ads []*domain.AggregatedAd) {
				assert.Len(t, ads, 1)
				assert.Equal(t, 1.04, ads[0].ROAS)
			},
		},
		{
			name: "ads sorted by spend descending",
			rows: []*domain.MetricRow{
				metricRow("small", day(1), 50, 1000, 10, 0),
				metricRow("big", day(1), 500, 1000, 10, 0),
			},
			validate: func(t *testing.T, ads []*domain.AggregatedAd) {
				assert.Len(t, ads, 2)
				assert.Equal(t, "big", ads[0].AdID)
				assert.Equal(t, "small", ads[1].AdID)
			},
		},
		{
			name: "zero denominators yield zero ratios",
			rows: []*domain.MetricRow{
				metricRow("x", day(1), 0, 0, 0, 0),
			},
			validate: func(t *testing.T, ads []*domain.AggregatedAd) {
				assert.Len(t, ads, 1)
				assert.Equal(t, 0.0, ads[0].ROAS)
				assert.Equal(t, 0.0, ads[0].CTR)
			},
		},
		{
			name: "empty input yields empty slice",
			rows: []*domain.MetricRow{},
			validate: func(t *testing.T, ads []*domain.AggregatedAd) {
				assert.Empty(t, ads)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, AggregateByAd(tt.rows))
		})
	}
}

func TestAggregateSummary(t *testing.T) {
	rows := []*domain.MetricRow{
		metricRow("a", day(1), 100, 10000, 100, 150),
		metricRow("b", day(1), 200, 20000, 200, 450),
		metricRow("a", day(2), 100, 10000, 100, 200),
	}

	summary := AggregateSummary(rows)

	assert.Equal(t, "ACC001", summary.AccountID)
	assert.Equal(t, 400.0, summary.Spend)
	assert.Equal(t, 800.0, summary.PurchaseValue)
	assert.Equal(t, 2.0, summary.ROAS)
	assert.Equal(t, 1.0, summary.CTR)
	assert.Equal(t, 2, summary.AdCount)
	assert.Equal(t, 2, summary.DataDays)
}

func TestCalcAverage(t *testing.T) {
	tests := []struct {
		name     string
		rows     []*domain.MetricRow
		key      string
		expected *float64
	}{
		{
			name: "nil entries are ignored, not counted as zero",
			rows: []*domain.MetricRow{
				{Rates: domain.Rates{CPM: utils.Float64Ptr(10)}},
				{Rates: domain.Rates{CPM: nil}},
				{Rates: domain.Rates{CPM: utils.Float64Ptr(20)}},
			},
			key:      domain.MetricCPM,
			expected: utils.Float64Ptr(15),
		},
		{
			name: "all nil yields nil",
			rows: []*domain.MetricRow{
				{Rates: domain.Rates{}},
				{Rates: domain.Rates{}},
			},
			key:      domain.MetricVideoRetention,
			expected: nil,
		},
		{
			name:     "no rows yields nil",
			rows:     []*domain.MetricRow{},
			key:      domain.MetricCTR,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcAverage(tt.rows, tt.key)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 0.0001)
		})
	}
}

func TestDominantCreativeType(t *testing.T) {
	video := &domain.AggregatedAd{CreativeType: domain.CreativeTypeVideo}
	image := &domain.AggregatedAd{CreativeType: domain.CreativeTypeImage}

	t.Run("spend share decides", func(t *testing.T) {
		v, i := *video, *image
		v.Spend = 100
		i.Spend = 300
		assert.Equal(t, domain.CreativeTypeImage, DominantCreativeType([]*domain.AggregatedAd{&v, &i}))
	})

	t.Run("impressions break a spend tie", func(t *testing.T) {
		v, i := *video, *image
		v.Impressions = 100
		i.Impressions = 500
		assert.Equal(t, domain.CreativeTypeImage, DominantCreativeType([]*domain.AggregatedAd{&v, &i}))
	})

	t.Run("video is the default", func(t *testing.T) {
		assert.Equal(t, domain.CreativeTypeVideo, DominantCreativeType(nil))
	})
}
