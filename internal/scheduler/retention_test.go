package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository/mocks"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"go.uber.org/mock/gomock"
)

func retentionConfig() *config.Config {
	return &config.Config{
		Retention: config.Retention{
			CronSchedule:      "0 5 * * *",
			Enabled:           true,
			MetricRowDays:     180,
			BenchmarkDays:     365,
			OverlapCacheHours: 48,
		},
	}
}

func TestRetentionService_runRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name  string
		setup func(
			metricRowRepo *mocks.MockMetricRowRepository,
			benchmarkRepo *mocks.MockBenchmarkRepository,
			overlapCacheRepo *mocks.MockOverlapCacheRepository,
		)
	}{
		{
			name: "prunes all three stores with configured horizons",
			setup: func(
				metricRowRepo *mocks.MockMetricRowRepository,
				benchmarkRepo *mocks.MockBenchmarkRepository,
				overlapCacheRepo *mocks.MockOverlapCacheRepository,
			) {
				metricRowRepo.EXPECT().DeleteOlderThan(180).Return(int64(42), nil)
				benchmarkRepo.EXPECT().DeleteOlderThan(365).Return(int64(8), nil)
				overlapCacheRepo.EXPECT().DeleteExpired(48 * time.Hour).Return(int64(3), nil)
			},
		},
		{
			name: "one failing store does not stop the others",
			setup: func(
				metricRowRepo *mocks.MockMetricRowRepository,
				benchmarkRepo *mocks.MockBenchmarkRepository,
				overlapCacheRepo *mocks.MockOverlapCacheRepository,
			) {
				metricRowRepo.EXPECT().DeleteOlderThan(180).Return(int64(0), assert.AnError)
				benchmarkRepo.EXPECT().DeleteOlderThan(365).Return(int64(8), nil)
				overlapCacheRepo.EXPECT().DeleteExpired(48 * time.Hour).Return(int64(3), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metricRowRepo := mocks.NewMockMetricRowRepository(ctrl)
			benchmarkRepo := mocks.NewMockBenchmarkRepository(ctrl)
			overlapCacheRepo := mocks.NewMockOverlapCacheRepository(ctrl)
			tt.setup(metricRowRepo, benchmarkRepo, overlapCacheRepo)

			service := NewRetentionService(retentionConfig(), metricRowRepo, benchmarkRepo, overlapCacheRepo)
			service.runRetention()

			status := service.Status()
			assert.False(t, status.Running)
			assert.NotNil(t, status.LastStartedAt)
			assert.NotNil(t, status.LastCompletedAt)
		})
	}
}

func TestRetentionService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewRetentionService(
		retentionConfig(),
		mocks.NewMockMetricRowRepository(ctrl),
		mocks.NewMockBenchmarkRepository(ctrl),
		mocks.NewMockOverlapCacheRepository(ctrl),
	)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 5 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}
