// Package diagnosing composes the account-level T3 diagnosis: per-metric
// verdicts against benchmarks, part scores and the weighted composite grade.
package diagnosing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/value-protractor-api/infrastructure/repository"
	"github.com/vfg2006/value-protractor-api/internal/config"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/internal/usecases/aggregating"
	"github.com/vfg2006/value-protractor-api/internal/usecases/benchmarking"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

// Part weights. They renormalize at composition time when a part has no
// scorable metric, so partial data still yields a 0-100 composite.
const (
	weightFoundation = 0.2
	weightEngagement = 0.4
	weightConversion = 0.4
)

type Service struct {
	cfg           *config.Config
	metricRowRepo repository.MetricRowRepository
	resolver      *benchmarking.Service
}

func NewService(
	cfg *config.Config,
	metricRowRepo repository.MetricRowRepository,
	resolver *benchmarking.Service,
) *Service {
	return &Service{
		cfg:           cfg,
		metricRowRepo: metricRowRepo,
		resolver:      resolver,
	}
}

// ComputeT3Score diagnoses the account over the last periodDays ending
// yesterday. A period with zero rows returns a result with nil score and
// grade rather than an error; a storage failure is a real error.
func (s *Service) ComputeT3Score(accountID string, periodDays int) (*domain.T3Score, error) {
	startDate, endDate := utils.PeriodEndingYesterday(periodDays, time.Now())

	rows, err := s.metricRowRepo.GetByDateRange(accountID, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "loading metric rows for diagnosis")
	}

	result := &domain.T3Score{
		AccountID:            accountID,
		DominantCreativeType: domain.CreativeTypeVideo,
		PeriodDays:           periodDays,
		StartDate:            startDate.Format(time.DateOnly),
		EndDate:              endDate.Format(time.DateOnly),
		ComputedAt:           time.Now(),
	}

	if len(rows) == 0 {
		logrus.WithField("account_id", accountID).Info("diagnosis: no metric rows in period")
		return result, nil
	}

	ads := aggregating.AggregateByAd(rows)
	summary := aggregating.AggregateSummary(rows)
	dominantType := aggregating.DominantCreativeType(ads)

	result.DominantCreativeType = dominantType
	result.DataAvailableDays = summary.DataDays

	benchmarks, err := s.resolver.FetchBenchmarks(dominantType)
	if err != nil {
		// A broken benchmark table degrades every verdict to no-data instead of
		// failing the diagnosis.
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("diagnosis: benchmark fetch failed, continuing without benchmarks")
		benchmarks = map[string]*domain.BenchmarkEntry{}
	}

	var engagement, conversion []*domain.MetricDiagnosis
	for _, metric := range domain.AllMetrics() {
		diagnosis := s.diagnoseMetric(metric, rows, summary, benchmarks)
		if metric.BenchGroup == domain.RankingTypeEngagement {
			engagement = append(engagement, diagnosis)
		} else {
			conversion = append(conversion, diagnosis)
		}
	}

	parts := []*domain.PartScore{
		foundationPart(summary.DataDays, periodDays),
		meanPart(domain.PartEngagement, weightEngagement, engagement),
		meanPart(domain.PartConversion, weightConversion, conversion),
	}
	result.Parts = parts

	if score := composite(parts); score != nil {
		rounded := utils.RoundWithTwoDecimalPlace(*score)
		grade, gradeLabel := gradeFor(rounded)
		result.Score = &rounded
		result.Grade = &grade
		result.GradeLabel = &gradeLabel
	}

	return result, nil
}

// diagnoseMetric resolves the period value for one catalog metric and judges it
// against its benchmark. ROAS and CTR come from the summary recompute; the
// remaining rates are nil-ignoring averages of the daily values.
func (s *Service) diagnoseMetric(
	metric domain.MetricDefinition,
	rows []*domain.MetricRow,
	summary *domain.AccountSummary,
	benchmarks map[string]*domain.BenchmarkEntry,
) *domain.MetricDiagnosis {
	var value *float64
	switch metric.Key {
	case domain.MetricROAS:
		value = utils.Float64Ptr(summary.ROAS)
	case domain.MetricCTR:
		value = utils.Float64Ptr(summary.CTR)
	default:
		value = aggregating.CalcAverage(rows, metric.Key)
	}

	var target *float64
	if entry, ok := benchmarks[metric.Key]; ok {
		target = entry.AboveAvg
	}

	verdict := GetVerdict(value, target, metric.Ascending)

	return &domain.MetricDiagnosis{
		Key:      metric.Key,
		Label:    metric.Label,
		Unit:     metric.Unit,
		Value:    value,
		AboveAvg: target,
		Status:   verdict.Label,
		Score:    MetricScore(value, target, metric.Ascending),
	}
}

// foundationPart scores data availability: how much of the requested window
// actually has rows.
func foundationPart(dataDays, periodDays int) *domain.PartScore {
	availability := 100.0
	if periodDays > 0 {
		availability = float64(dataDays) / float64(periodDays) * 100
		if availability > 100 {
			availability = 100
		}
	}

	return &domain.PartScore{
		Name:    domain.PartFoundation,
		Weight:  weightFoundation,
		Score:   &availability,
		Metrics: []*domain.MetricDiagnosis{},
	}
}

// meanPart averages the scorable metrics of a group. No scorable metric means
// a nil part score, excluded from the composite.
func meanPart(name string, weight float64, metrics []*domain.MetricDiagnosis) *domain.PartScore {
	part := &domain.PartScore{
		Name:    name,
		Weight:  weight,
		Metrics: metrics,
	}

	var sum float64
	var count int
	for _, m := range metrics {
		if m.Score == nil {
			continue
		}
		sum += *m.Score
		count++
	}

	if count > 0 {
		mean := sum / float64(count)
		part.Score = &mean
	}

	return part
}

// composite combines part scores with weights renormalized over the parts that
// actually scored. All-nil parts yield nil.
func composite(parts []*domain.PartScore) *float64 {
	var weighted, totalWeight float64
	for _, part := range parts {
		if part.Score == nil {
			continue
		}
		weighted += *part.Score * part.Weight
		totalWeight += part.Weight
	}

	if totalWeight == 0 {
		return nil
	}

	score := weighted / totalWeight
	return &score
}

func gradeFor(score float64) (string, string) {
	switch {
	case score >= 90:
		return "A", "매우 우수"
	case score >= 75:
		return "B", "우수"
	case score >= 60:
		return "C", "보통"
	case score >= 40:
		return "D", "개선 필요"
	default:
		return "F", "미흡"
	}
}
