package vesseldb

import(
	"fmt"
	"math"
	"time"

	"github.com/skypies/geo"
)

// A TrackGap is a stretch of missing reports: a pause between two
// consecutive points long enough to be worth investigating. Gaps are
// purely descriptive; finding them never alters or splits the track,
// and the reporting threshold is independent of the one Segments uses.
type TrackGap struct {
	StartIndex, EndIndex     int
	StartTimeUTC, EndTimeUTC time.Time
	DurationMinutes          float64 // rounded to whole minutes
	StartPos, EndPos         geo.Latlong
	DistanceKM               float64 // ground covered while dark
}

func (g TrackGap)String() string {
	return fmt.Sprintf("gap [%d->%d] %.0fmin, %.2fKM, %s -> %s",
		g.StartIndex, g.EndIndex, g.DurationMinutes, g.DistanceKM,
		g.StartTimeUTC.Format("2006.01.02 15:04:05"),
		g.EndTimeUTC.Format("15:04:05"))
}

// FindGaps returns every pause of at least minGap between consecutive
// points, in chronological order.
func (t Track)FindGaps(minGap time.Duration) []TrackGap {
	gaps := []TrackGap{}

	for i:=1; i<len(t); i++ {
		elapsed := t[i].TimestampUTC.Sub(t[i-1].TimestampUTC)
		if elapsed < minGap { continue }

		dist := 0.0
		if t[i].DistanceKM != nil { dist = *t[i].DistanceKM }

		gaps = append(gaps, TrackGap{
			StartIndex: i-1,
			EndIndex: i,
			StartTimeUTC: t[i-1].TimestampUTC,
			EndTimeUTC: t[i].TimestampUTC,
			DurationMinutes: math.Round(elapsed.Minutes()),
			StartPos: t[i-1].Latlong,
			EndPos: t[i].Latlong,
			DistanceKM: round2(dist),
		})
	}

	return gaps
}
