package diagnosing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/value-protractor-api/internal/domain"
	"github.com/vfg2006/value-protractor-api/pkg/utils"
)

func TestGetVerdict_HigherIsBetter(t *testing.T) {
	benchmark := utils.Float64Ptr(2.0)

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"at benchmark is excellent", 2.0, domain.VerdictExcellent},
		{"above benchmark is excellent", 3.5, domain.VerdictExcellent},
		{"at 75% of benchmark is average", 1.5, domain.VerdictAverage},
		{"just below benchmark is average", 1.9, domain.VerdictAverage},
		{"below 75% of benchmark is below", 1.4, domain.VerdictBelow},
		{"zero is below", 0, domain.VerdictBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetVerdict(utils.Float64Ptr(tt.value), benchmark, true)
			assert.Equal(t, tt.expected, got.Label)
		})
	}
}

func TestGetVerdict_LowerIsBetter(t *testing.T) {
	benchmark := utils.Float64Ptr(10000.0)

	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"at benchmark is excellent", 10000, domain.VerdictExcellent},
		{"below benchmark is excellent", 8000, domain.VerdictExcellent},
		{"at 125% of benchmark is average", 12500, domain.VerdictAverage},
		{"above 125% of benchmark is below", 12501, domain.VerdictBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetVerdict(utils.Float64Ptr(tt.value), benchmark, false)
			assert.Equal(t, tt.expected, got.Label)
		})
	}
}

func TestGetVerdict_NoData(t *testing.T) {
	tests := []struct {
		name      string
		value     *float64
		benchmark *float64
	}{
		{"nil value", nil, utils.Float64Ptr(10)},
		{"nil benchmark", utils.Float64Ptr(10), nil},
		{"zero benchmark", utils.Float64Ptr(10), utils.Float64Ptr(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetVerdict(tt.value, tt.benchmark, true)
			assert.Equal(t, domain.VerdictNoData, got.Label)
			assert.Equal(t, domain.VerdictClassNoData, got.Class)
		})
	}
}

func TestMetricScore(t *testing.T) {
	tests := []struct {
		name           string
		value          *float64
		benchmark      *float64
		higherIsBetter bool
		expected       *float64
	}{
		{"at benchmark scores 80", utils.Float64Ptr(2.0), utils.Float64Ptr(2.0), true, utils.Float64Ptr(80)},
		{"half the benchmark scores 40", utils.Float64Ptr(1.0), utils.Float64Ptr(2.0), true, utils.Float64Ptr(40)},
		{"ratio caps at 1.25 for 100", utils.Float64Ptr(10.0), utils.Float64Ptr(2.0), true, utils.Float64Ptr(100)},
		{"descending at benchmark scores 80", utils.Float64Ptr(100.0), utils.Float64Ptr(100.0), false, utils.Float64Ptr(80)},
		{"descending cheaper caps at 100", utils.Float64Ptr(10.0), utils.Float64Ptr(100.0), false, utils.Float64Ptr(100)},
		{"descending twice the cost scores 40", utils.Float64Ptr(200.0), utils.Float64Ptr(100.0), false, utils.Float64Ptr(40)},
		{"nil value scores nil", nil, utils.Float64Ptr(2.0), true, nil},
		{"zero benchmark scores nil", utils.Float64Ptr(2.0), utils.Float64Ptr(0), true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MetricScore(tt.value, tt.benchmark, tt.higherIsBetter)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.InDelta(t, *tt.expected, *got, 0.0001)
		})
	}
}

func TestMetricScore_Monotonic(t *testing.T) {
	benchmark := utils.Float64Ptr(2.0)

	var previous float64 = -1
	for _, value := range []float64{0, 0.5, 1.0, 1.5, 2.0, 2.4, 2.5} {
		score := MetricScore(utils.Float64Ptr(value), benchmark, true)
		assert.NotNil(t, score)
		assert.GreaterOrEqual(t, *score, previous)
		previous = *score
	}
}
