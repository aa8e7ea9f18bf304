package vesseldb

import(
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TotalDistKM sums the point-to-point great-circle distances along the
// track, rounded to two decimals. Points with no delta (the first one)
// contribute nothing.
func (t Track)TotalDistKM() float64 {
	total := 0.0
	for _,tp := range t {
		if tp.DistanceKM != nil {
			total += *tp.DistanceKM
		}
	}
	return round2(total)
}

// SpeedStats returns the mean and max of the self-reported SOG values,
// rounded to two decimals. These are sensor-claimed speeds, not the
// geometry-derived ComputedKts; anomaly detection cross-validates one
// against the other, so the aggregates must not mix them.
func (t Track)SpeedStats() (avgKts, maxKts float64) {
	if len(t) == 0 {
		return 0, 0
	}
	sogs := make([]float64, len(t))
	for i,tp := range t {
		sogs[i] = tp.GroundSpeed
	}
	return round2(stat.Mean(sogs, nil)), round2(floats.Max(sogs))
}
