package pitch

// SpeedDistribution counts words per speed bucket. Every bucket is present
// in the result even when its count is zero, so an empty word list yields
// all four buckets at 0.
func SpeedDistribution(words []WordAnalysis) map[string]int {
	dist := map[string]int{
		SpeedSlow:     0,
		SpeedMedium:   0,
		SpeedFast:     0,
		SpeedVeryFast: 0,
	}
	for _, w := range words {
		if _, ok := dist[w.Speed]; ok {
			dist[w.Speed]++
		}
	}
	return dist
}

// AverageSPM computes the mean syllables-per-minute rate over the word
// annotations. An empty list yields 0.
func AverageSPM(words []WordAnalysis) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.SyllablesPerMinute
	}
	return sum / float64(len(words))
}

// SeriesSummary describes a time-series of samples for display.
type SeriesSummary struct {
	Min float64
	Max float64
	Avg float64
}

// SummarizeSeries reduces a sample series to min/max/avg of its values.
// The zero summary is returned for an empty series.
func SummarizeSeries(samples []Sample) SeriesSummary {
	if len(samples) == 0 {
		return SeriesSummary{}
	}
	s := SeriesSummary{Min: samples[0].Value(), Max: samples[0].Value()}
	var sum float64
	for _, sample := range samples {
		v := sample.Value()
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Avg = sum / float64(len(samples))
	return s
}

// BucketSeries downsamples a series into n equal-width time buckets,
// averaging the values that fall into each. Buckets with no samples carry
// the previous bucket's value so sparkline rendering stays continuous.
// Used by the delivery view to fit long series into a fixed terminal width.
func BucketSeries(samples []Sample, n int) []float64 {
	if n <= 0 || len(samples) == 0 {
		return nil
	}

	start := samples[0].Time()
	end := samples[len(samples)-1].Time()
	span := end - start
	if span <= 0 {
		// All samples share a timestamp; a single flat bucket.
		out := make([]float64, n)
		avg := SummarizeSeries(samples).Avg
		for i := range out {
			out[i] = avg
		}
		return out
	}

	sums := make([]float64, n)
	counts := make([]int, n)
	for _, s := range samples {
		i := int((s.Time() - start) / span * float64(n))
		if i >= n {
			i = n - 1
		}
		sums[i] += s.Value()
		counts[i]++
	}

	out := make([]float64, n)
	var last float64
	for i := range out {
		if counts[i] > 0 {
			last = sums[i] / float64(counts[i])
		}
		out[i] = last
	}
	return out
}
