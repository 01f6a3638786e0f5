package pitch

import (
	"math"
	"testing"
)

// TestSpeedDistribution tests the four-bucket word speed reduction
func TestSpeedDistribution(t *testing.T) {
	t.Run("empty list yields all buckets at zero", func(t *testing.T) {
		dist := SpeedDistribution(nil)
		if len(dist) != 4 {
			t.Fatalf("expected 4 buckets, got %d", len(dist))
		}
		for _, label := range SpeedLabels {
			if dist[label] != 0 {
				t.Errorf("expected bucket %q at 0, got %d", label, dist[label])
			}
		}
	})

	t.Run("bucket sums equal word count", func(t *testing.T) {
		words := []WordAnalysis{
			{Word: "we", Speed: SpeedSlow},
			{Word: "build", Speed: SpeedMedium},
			{Word: "rockets", Speed: SpeedMedium},
			{Word: "fast", Speed: SpeedFast},
			{Word: "really", Speed: SpeedVeryFast},
			{Word: "fast", Speed: SpeedVeryFast},
		}
		dist := SpeedDistribution(words)

		total := 0
		for _, n := range dist {
			total += n
		}
		if total != len(words) {
			t.Errorf("expected bucket sum %d, got %d", len(words), total)
		}
		if dist[SpeedMedium] != 2 {
			t.Errorf("expected 2 medium words, got %d", dist[SpeedMedium])
		}
	})

	t.Run("unknown labels are not counted", func(t *testing.T) {
		dist := SpeedDistribution([]WordAnalysis{{Word: "um", Speed: "Warp"}})
		for label, n := range dist {
			if n != 0 {
				t.Errorf("expected bucket %q at 0, got %d", label, n)
			}
		}
	})
}

// TestAverageSPM tests the mean speaking-rate reduction
func TestAverageSPM(t *testing.T) {
	if got := AverageSPM(nil); got != 0 {
		t.Errorf("expected 0 for empty list, got %v", got)
	}

	words := []WordAnalysis{
		{SyllablesPerMinute: 100},
		{SyllablesPerMinute: 300},
	}
	if got := AverageSPM(words); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}
}

// TestSummarizeSeries tests min/max/avg over sample series
func TestSummarizeSeries(t *testing.T) {
	if s := SummarizeSeries(nil); s != (SeriesSummary{}) {
		t.Errorf("expected zero summary for empty series, got %+v", s)
	}

	s := SummarizeSeries([]Sample{{0, -24}, {1, -18}, {2, -30}})
	if s.Min != -30 || s.Max != -18 {
		t.Errorf("expected min -30 max -18, got min %v max %v", s.Min, s.Max)
	}
	if math.Abs(s.Avg-(-24)) > 1e-9 {
		t.Errorf("expected avg -24, got %v", s.Avg)
	}
}

// TestBucketSeries tests sparkline downsampling
func TestBucketSeries(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := BucketSeries(nil, 10); got != nil {
			t.Errorf("expected nil for empty series, got %v", got)
		}
	})

	t.Run("bucket count", func(t *testing.T) {
		samples := make([]Sample, 100)
		for i := range samples {
			samples[i] = Sample{float64(i), float64(i % 10)}
		}
		got := BucketSeries(samples, 20)
		if len(got) != 20 {
			t.Errorf("expected 20 buckets, got %d", len(got))
		}
	})

	t.Run("single timestamp flattens", func(t *testing.T) {
		got := BucketSeries([]Sample{{1, 10}, {1, 20}}, 4)
		if len(got) != 4 {
			t.Fatalf("expected 4 buckets, got %d", len(got))
		}
		for i, v := range got {
			if v != 15 {
				t.Errorf("bucket %d: expected 15, got %v", i, v)
			}
		}
	})

	t.Run("sparse buckets carry forward", func(t *testing.T) {
		got := BucketSeries([]Sample{{0, 5}, {10, 9}}, 5)
		if got[0] != 5 {
			t.Errorf("expected first bucket 5, got %v", got[0])
		}
		// Middle buckets have no samples and repeat the previous value.
		if got[2] != 5 {
			t.Errorf("expected carried value 5, got %v", got[2])
		}
		if got[4] != 9 {
			t.Errorf("expected last bucket 9, got %v", got[4])
		}
	})
}
