package vesseldb

import(
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// TrackPoint locates a vessel in space and time. The reported fields are
// copied straight off the source PositionReport; the delta fields are
// derived against the immediately preceding point in the same series,
// and are nil on the first point (nothing to diff against).
type TrackPoint struct {
	TimestampUTC time.Time

	geo.Latlong            // Embedded type, so we can call all the geo stuff directly

	GroundSpeed      float64   // Self-reported SOG, in knots
	CourseOverGround float64   // [0.0, 360.0) degrees
	Heading          float64   // [0.0, 360.0) degrees; where the bow points
	RateOfTurn       float64   // Degrees per minute
	NavStatus        NavStatus

	// Derived deltas. ComputedKts is the geometry-implied speed; the
	// anomaly detector compares it against the self-reported
	// GroundSpeed, so the two must stay independent. ComputedKts is
	// also nil on zero-elapsed pairs (duplicate timestamps), where
	// there is no speed to compute.
	ElapsedSec    *float64 `json:"ElapsedSec,omitempty"`
	DistanceKM    *float64 `json:"DistanceKM,omitempty"`
	ComputedKts   *float64 `json:"ComputedKts,omitempty"`
	CourseChange  *float64 `json:"CourseChange,omitempty"`  // Degrees, wrapped to <=180
	HeadingChange *float64 `json:"HeadingChange,omitempty"` // Degrees, wrapped to <=180
}

func TrackpointFromReport(r PositionReport) TrackPoint {
	return TrackPoint{
		TimestampUTC: r.TimestampUTC,
		Latlong: r.Latlong,
		GroundSpeed: r.GroundSpeed,
		CourseOverGround: r.CourseOverGround,
		Heading: r.Heading,
		RateOfTurn: r.RateOfTurn,
		NavStatus: r.NavStatus,
	}
}

func (tp TrackPoint)String() string {
	str := fmt.Sprintf("[%s] %s %.1fkts, %.0fdeg", tp.TimestampUTC, tp.Latlong,
		tp.GroundSpeed, tp.CourseOverGround)
	if tp.ComputedKts != nil {
		str += fmt.Sprintf(" (geom %.1fkts)", *tp.ComputedKts)
	}
	return str
}
