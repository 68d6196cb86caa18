// Package benchmarking resolves the benchmark table into per-metric targets.
package benchmarking

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

// FindBenchmark returns the first entry matching the ranking type and creative
// type within the above-average group, or nil when none matches. Percentile
// columns on the entry are display-only; AboveAvg is the comparison target.
func FindBenchmark(entries []*domain.BenchmarkEntry, rankingType domain.RankingType, creativeType domain.CreativeType) *domain.BenchmarkEntry {
	for _, entry := range entries {
		if entry.RankingType != rankingType {
			continue
		}
		if entry.RankingGroup != domain.RankingGroupAboveAvg {
			continue
		}
		if entry.CreativeType != creativeType {
			continue
		}
		return entry
	}
	return nil
}

type Service struct {
	benchmarkRepo repository.BenchmarkRepository
}

func NewService(benchmarkRepo repository.BenchmarkRepository) *Service {
	return &Service{benchmarkRepo: benchmarkRepo}
}

// FetchBenchmarks loads the most recent benchmark batch and resolves one entry
// per catalog metric for the given creative type. Entries restricted to the
// dominant type win; the ALL bucket backfills metrics the type has no entry
// for. Metrics with no entry at all are simply absent from the map, which
// downstream reads as "데이터 없음".
func (s *Service) FetchBenchmarks(creativeType domain.CreativeType) (map[string]*domain.BenchmarkEntry, error) {
	entries, err := s.benchmarkRepo.List()
	if err != nil {
		return nil, errors.Wrap(err, "listing benchmark entries")
	}

	if len(entries) == 0 {
		logrus.Warn("diagnosis: benchmark table is empty")
		return map[string]*domain.BenchmarkEntry{}, nil
	}

	// Keep only the latest batch so a partially written refresh never mixes
	// with the previous one. The max is found here; row order is not trusted.
	latest := entries[0].CalculatedAt
	for _, entry := range entries {
		if entry.CalculatedAt.After(latest) {
			latest = entry.CalculatedAt
		}
	}

	var current []*domain.BenchmarkEntry
	for _, entry := range entries {
		if entry.CalculatedAt.Equal(latest) {
			current = append(current, entry)
		}
	}

	byMetric := make(map[string][]*domain.BenchmarkEntry)
	for _, entry := range current {
		byMetric[entry.MetricKey] = append(byMetric[entry.MetricKey], entry)
	}

	resolved := make(map[string]*domain.BenchmarkEntry)
	for _, metric := range domain.AllMetrics() {
		candidates := byMetric[metric.Key]

		entry := FindBenchmark(candidates, metric.BenchGroup, creativeType)
		if entry == nil {
			entry = FindBenchmark(candidates, metric.BenchGroup, domain.CreativeTypeAll)
		}
		if entry == nil {
			continue
		}

		resolved[metric.Key] = entry
	}

	return resolved, nil
}
