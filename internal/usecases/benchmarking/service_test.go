package benchmarking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func entry(metricKey string, rankingType domain.RankingType, group string, creativeType domain.CreativeType, aboveAvg float64, calculatedAt time.Time) *domain.BenchmarkEntry {
	return &domain.BenchmarkEntry{
		MetricKey:    metricKey,
		RankingType:  rankingType,
		RankingGroup: group,
		CreativeType: creativeType,
		AboveAvg:     utils.Float64Ptr(aboveAvg),
		CalculatedAt: calculatedAt,
	}
}

func TestFindBenchmark(t *testing.T) {
	now := time.Now()

	entries := []*domain.BenchmarkEntry{
		entry(domain.MetricCTR, domain.RankingTypeEngagement, "top_10", domain.CreativeTypeVideo, 9.0, now),
		entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 2.0, now),
		entry(domain.MetricCTR, domain.RankingTypeConversion, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 3.0, now),
	}

	t.Run("matches ranking type, group and creative type", func(t *testing.T) {
		got := FindBenchmark(entries, domain.RankingTypeEngagement, domain.CreativeTypeVideo)
		assert.NotNil(t, got)
		assert.Equal(t, 2.0, *got.AboveAvg)
	})

	t.Run("other ranking groups are invisible", func(t *testing.T) {
		got := FindBenchmark(entries, domain.RankingTypeEngagement, domain.CreativeTypeImage)
		assert.Nil(t, got)
	})

	t.Run("nil on no match", func(t *testing.T) {
		assert.Nil(t, FindBenchmark(nil, domain.RankingTypeEngagement, domain.CreativeTypeVideo))
	})
}

func TestService_FetchBenchmarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	latest := time.Date(2026, 8, 30, 4, 0, 0, 0, time.UTC)
	stale := latest.AddDate(0, 0, -7)

	tests := []struct {
		name     string
		entries  []*domain.BenchmarkEntry
		listErr  error
		validate func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error)
	}{
		{
			name: "dominant type wins over ALL",
			entries: []*domain.BenchmarkEntry{
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 2.5, latest),
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeAll, 1.5, latest),
			},
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.5, *got[domain.MetricCTR].AboveAvg)
			},
		},
		{
			name: "ALL backfills metrics without a type-specific entry",
			entries: []*domain.BenchmarkEntry{
				entry(domain.MetricROAS, domain.RankingTypeConversion, domain.RankingGroupAboveAvg, domain.CreativeTypeAll, 3.0, latest),
			},
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3.0, *got[domain.MetricROAS].AboveAvg)
				_, hasCTR := got[domain.MetricCTR]
				assert.False(t, hasCTR)
			},
		},
		{
			name: "stale batches are ignored even when richer",
			entries: []*domain.BenchmarkEntry{
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 2.0, latest),
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 9.0, stale),
				entry(domain.MetricROAS, domain.RankingTypeConversion, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 9.0, stale),
			},
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.0, *got[domain.MetricCTR].AboveAvg)
				_, hasROAS := got[domain.MetricROAS]
				assert.False(t, hasROAS)
			},
		},
		{
			name: "latest batch wins regardless of row order",
			entries: []*domain.BenchmarkEntry{
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 9.0, stale),
				entry(domain.MetricCTR, domain.RankingTypeEngagement, domain.RankingGroupAboveAvg, domain.CreativeTypeVideo, 2.0, latest),
			},
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 2.0, *got[domain.MetricCTR].AboveAvg)
			},
		},
		{
			name:    "empty table yields empty map, not an error",
			entries: []*domain.BenchmarkEntry{},
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.NoError(t, err)
				assert.Empty(t, got)
			},
		},
		{
			name:    "storage failure propagates",
			listErr: assert.AnError,
			validate: func(t *testing.T, got map[string]*domain.BenchmarkEntry, err error) {
				assert.Error(t, err)
				assert.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			benchmarkRepo := mocks.NewMockBenchmarkRepository(ctrl)
			benchmarkRepo.EXPECT().List().Return(tt.entries, tt.listErr)

			service := NewService(benchmarkRepo)
			got, err := service.FetchBenchmarks(domain.CreativeTypeVideo)
			tt.validate(t, got, err)
		})
	}
}
