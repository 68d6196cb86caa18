package diagnosing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/internal/usecases/benchmarking"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Diagnosis: config.Diagnosis{
			DefaultPeriodDays: 7,
			MaxPeriodDays:     90,
		},
	}
}

func testRow(adID string, date time.Time, spend float64, impressions, clicks int, purchaseValue float64) *domain.MetricRow {
	return &domain.MetricRow{
		AccountID:     "ACC001",
		Date:          date,
		AdID:          adID,
		CreativeType:  domain.CreativeTypeVideo,
		Spend:         spend,
		Impressions:   impressions,
		Clicks:        clicks,
		PurchaseValue: purchaseValue,
	}
}

func testBenchmark(metricKey string, rankingType domain.RankingType, aboveAvg float64) *domain.BenchmarkEntry {
	return &domain.BenchmarkEntry{
		MetricKey:    metricKey,
		RankingType:  rankingType,
		RankingGroup: domain.RankingGroupAboveAvg,
		CreativeType: domain.CreativeTypeVideo,
		AboveAvg:     utils.Float64Ptr(aboveAvg),
		CalculatedAt: time.Date(2026, 8, 30, 4, 0, 0, 0, time.UTC),
	}
}

func TestService_ComputeT3Score(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	today := time.Now()
	dayOne := today.AddDate(0, 0, -1)
	dayTwo := today.AddDate(0, 0, -2)

	tests := []struct {
		name       string
		rows       []*domain.MetricRow
		rowsErr    error
		benchmarks []*domain.BenchmarkEntry
		benchErr   error
		skipBench  bool
		validate   func(t *testing.T, got *domain.T3Score, err error)
	}{
		{
			name:      "empty period yields nil score and grade",
			rows:      []*domain.MetricRow{},
			skipBench: true,
			validate: func(t *testing.T, got *domain.T3Score, err error) {
				assert.NoError(t, err)
				assert.Nil(t, got.Score)
				assert.Nil(t, got.Grade)
				assert.Equal(t, 0, got.DataAvailableDays)
				assert.Equal(t, 7, got.PeriodDays)
			},
		},
		{
			name:    "storage failure is a hard error",
			rowsErr: assert.AnError,
			validate: func(t *testing.T, got *domain.T3Score, err error) {
				assert.Error(t, err)
				assert.Nil(t, got)
			},
		},
		{
			name: "parts renormalize and compose with benchmarks present",
			rows: []*domain.MetricRow{
				testRow("a", dayOne, 100, 10000, 100, 300),
				testRow("a", dayTwo, 100, 10000, 100, 300),
			},
			benchmarks: []*domain.BenchmarkEntry{
				testBenchmark(domain.MetricCTR, domain.RankingTypeEngagement, 1.0),
				testBenchmark(domain.MetricROAS, domain.RankingTypeConversion, 3.0),
			},
			validate: func(t *testing.T, got *domain.T3Score, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, got.Score)

				// foundation 2/7 days, engagement and conversion each a single
				// at-benchmark metric scoring 80
				expected := 0.2*(2.0/7.0*100) + 0.4*80 + 0.4*80
				assert.InDelta(t, expected, *got.Score, 0.01)
				assert.Equal(t, "C", *got.Grade)
				assert.Equal(t, domain.CreativeTypeVideo, got.DominantCreativeType)
				assert.Equal(t, 2, got.DataAvailableDays)
				assert.Len(t, got.Parts, 3)
			},
		},
		{
			name: "benchmark failure degrades to foundation-only score",
			rows: []*domain.MetricRow{
				testRow("a", dayOne, 100, 10000, 100, 300),
			},
			benchErr: assert.AnError,
			validate: func(t *testing.T, got *domain.T3Score, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, got.Score)

				// Only the availability part can score without benchmarks.
				assert.InDelta(t, 1.0/7.0*100, *got.Score, 0.01)

				for _, part := range got.Parts {
					if part.Name == domain.PartFoundation {
						continue
					}
					assert.Nil(t, part.Score)
					for _, metric := range part.Metrics {
						assert.Equal(t, domain.VerdictNoData, metric.Status)
						assert.Nil(t, metric.Score)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricRowRepo := mocks.NewMockMetricRowRepository(ctrl)
			metricRowRepo.EXPECT().
				GetByDateRange("ACC001", gomock.Any(), gomock.Any()).
				Return(tt.rows, tt.rowsErr)

			benchmarkRepo := mocks.NewMockBenchmarkRepository(ctrl)
			if tt.rowsErr == nil && !tt.skipBench {
				benchmarkRepo.EXPECT().List().Return(tt.benchmarks, tt.benchErr)
			}

			service := NewService(testConfig(), metricRowRepo, benchmarking.NewService(benchmarkRepo))
			got, err := service.ComputeT3Score("ACC001", 7)
			tt.validate(t, got, err)
		})
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{95, "A"},
		{90, "A"},
		{89.99, "B"},
		{75, "B"},
		{60, "C"},
		{59.99, "D"},
		{40, "D"},
		{39.99, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		grade, label := gradeFor(tt.score)
		assert.Equal(t, tt.expected, grade, "score %.2f", tt.score)
		assert.NotEmpty(t, label)
	}
}
