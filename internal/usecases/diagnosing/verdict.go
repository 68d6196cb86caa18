package diagnosing

import (
	"github.com/vfg2006/value-protractor-api/internal/domain"
)

const (
	bandLowerFactor = 0.75
	bandUpperFactor = 1.25
	scoreScale      = 80.0
	scoreRatioCap   = 1.25
)

// GetVerdict classifies a metric value against its above-average benchmark.
// A nil value, nil benchmark or zero benchmark yields the no-data verdict;
// zero is unusable as a ratio denominator, not a real target.
func GetVerdict(value, benchmark *float64, higherIsBetter bool) domain.VerdictResult {
	if value == nil || benchmark == nil || *benchmark == 0 {
		return domain.VerdictResult{
			Label: domain.VerdictNoData,
			Class: domain.VerdictClassNoData,
		}
	}

	if higherIsBetter {
		switch {
		case *value >= *benchmark:
			return domain.VerdictResult{Label: domain.VerdictExcellent, Class: domain.VerdictClassExcellent}
		case *value >= *benchmark*bandLowerFactor:
			return domain.VerdictResult{Label: domain.VerdictAverage, Class: domain.VerdictClassAverage}
		default:
			return domain.VerdictResult{Label: domain.VerdictBelow, Class: domain.VerdictClassBelow}
		}
	}

	switch {
	case *value <= *benchmark:
		return domain.VerdictResult{Label: domain.VerdictExcellent, Class: domain.VerdictClassExcellent}
	case *value <= *benchmark*bandUpperFactor:
		return domain.VerdictResult{Label: domain.VerdictAverage, Class: domain.VerdictClassAverage}
	default:
		return domain.VerdictResult{Label: domain.VerdictBelow, Class: domain.VerdictClassBelow}
	}
}

// MetricScore maps a value/benchmark pair onto a 0-100 score. The performance
// ratio is capped at 1.25 so one runaway metric cannot mask weak siblings;
// hitting the benchmark exactly scores 80. Returns nil when the pair is
// unusable.
func MetricScore(value, benchmark *float64, higherIsBetter bool) *float64 {
	if value == nil || benchmark == nil || *benchmark == 0 {
		return nil
	}

	var ratio float64
	if higherIsBetter {
		ratio = *value / *benchmark
	} else {
		if *value == 0 {
			ratio = scoreRatioCap
		} else {
			ratio = *benchmark / *value
		}
	}

	if ratio < 0 {
		ratio = 0
	}
	if ratio > scoreRatioCap {
		ratio = scoreRatioCap
	}

	score := ratio * scoreScale
	return &score
}
