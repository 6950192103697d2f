package usecase

import "fmt"

// sparklineStep is the raw-point stride of the downsampler. A 7-day hourly
// history (~168 points) compresses to roughly one sample per day.
const sparklineStep = 23

// Downsample reduces a raw price history to a compact trend series by
// keeping every element whose index is a positive multiple of 23.
// It returns nil when the history is empty or the kept series has three or
// fewer samples, since such a chart carries no usable trend.
func Downsample(history []float64) []float64 {
	if len(history) == 0 {
		return nil
	}
	var kept []float64
	for i, v := range history {
		if i != 0 && i%sparklineStep == 0 {
			kept = append(kept, v)
		}
	}
	if len(kept) <= 3 {
		return nil
	}
	return kept
}

// SparkLabels returns one x-axis label per sample, counting days backward
// from the most recent sample: a 5-sample series labels as
// "J-5" ... "J-1". An empty or nil series yields an empty result.
func SparkLabels(series []float64) []string {
	labels := make([]string, 0, len(series))
	for i := range series {
		labels = append(labels, fmt.Sprintf("J%d", i-len(series)))
	}
	return labels
}
