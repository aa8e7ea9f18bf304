package vesseldb

import "math"

// TrackQuality scores how complete and regular a track's reporting was.
// Score is a blunt ranking instrument, not a calibrated metric; the
// counters alongside it say what dragged it down.
type TrackQuality struct {
	Score          float64 // [0,1]
	NumPoints      int
	NumGaps        int     // intervals longer than Config.MaxGap
	AvgIntervalSec float64
	MaxGapSec      float64
	Completeness   float64 // [0,1]; points seen vs points expected
}

// Scoring policy. The weights and tolerance are tunable heuristics with
// no empirical calibration behind them.
const(
	kCompletenessWeight      = 0.4
	kConsistencyWeight       = 0.3
	kGapWeight               = 0.3
	kConsistencyToleranceSec = 600.0
	kGapPenalty              = 0.1 // per qualifying gap
)

// AssessQuality scores the full point sequence of a track. Tracks of
// fewer than two points have no intervals to judge, and score zero.
func AssessQuality(t Track, cfg Config) TrackQuality {
	if len(t) < 2 {
		return TrackQuality{}
	}

	maxGapSec := cfg.MaxGap.Seconds()
	sum, maxGap := 0.0, 0.0
	gaps, n := 0, 0
	for _,tp := range t {
		if tp.ElapsedSec == nil { continue }
		d := *tp.ElapsedSec
		sum += d
		n++
		if d > maxGapSec { gaps++ }
		if d > maxGap { maxGap = d }
	}

	avg := 0.0
	if n > 0 { avg = sum / float64(n) }

	expectedSec := cfg.ExpectedUpdateInterval.Seconds()
	expectedPoints := t.Duration().Seconds() / expectedSec
	completeness := math.Min(1.0, float64(len(t))/math.Max(1.0, expectedPoints))

	consistency := math.Max(0.0, 1.0-math.Abs(avg-expectedSec)/kConsistencyToleranceSec)
	gapScore := math.Max(0.0, 1.0-float64(gaps)*kGapPenalty)

	score := kCompletenessWeight*completeness +
		kConsistencyWeight*consistency +
		kGapWeight*gapScore

	return TrackQuality{
		Score: round2(score),
		NumPoints: len(t),
		NumGaps: gaps,
		AvgIntervalSec: avg,
		MaxGapSec: maxGap,
		Completeness: completeness,
	}
}

func round2(x float64) float64 { return math.Round(x*100.0) / 100.0 }
