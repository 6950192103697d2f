package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// series returns [0, 1, 2, ... n-1] as float64 so kept values reveal their
// original index.
func series(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

func TestDownsample(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		history []float64
		want    []float64
	}{
		{
			name:    "empty history is unavailable",
			history: nil,
			want:    nil,
		},
		{
			name:    "single point is unavailable",
			history: series(1),
			want:    nil,
		},
		{
			name:    "24 points keep only one sample, unavailable",
			history: series(24),
			want:    nil,
		},
		{
			name:    "69 points keep three samples, still unavailable",
			history: series(70),
			want:    nil,
		},
		{
			name:    "four kept samples is the minimum usable series",
			history: series(93),
			want:    []float64{23, 46, 69, 92},
		},
		{
			name:    "7-day hourly history keeps one sample per day",
			history: series(168),
			want:    []float64{23, 46, 69, 92, 115, 138, 161},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Downsample(tt.history))
		})
	}
}

func TestDownsample_IndexZeroExcluded(t *testing.T) {
	t.Parallel()

	// Index 0 is a multiple of 23 but must never be kept.
	got := Downsample(series(168))
	assert.NotContains(t, got, float64(0))
}

func TestSparkLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		series []float64
		want   []string
	}{
		{
			name:   "nil series yields no labels",
			series: nil,
			want:   []string{},
		},
		{
			name:   "four samples count back four days",
			series: []float64{1, 2, 3, 4},
			want:   []string{"J-4", "J-3", "J-2", "J-1"},
		},
		{
			name:   "seven samples cover the trailing week",
			series: []float64{1, 2, 3, 4, 5, 6, 7},
			want:   []string{"J-7", "J-6", "J-5", "J-4", "J-3", "J-2", "J-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, SparkLabels(tt.series))
		})
	}
}
