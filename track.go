package vesseldb

import(
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// A Track is a slice of TrackPoints. They are ordered in time, beginning
// to end; BuildTrack trusts its caller to have sorted the raw reports.
type Track []TrackPoint

func (t Track)Start() time.Time { return t[0].TimestampUTC }
func (t Track)End() time.Time { return t[len(t)-1].TimestampUTC }
func (t Track)Times() (s,e time.Time) { return t.Start(), t.End() }
func (t Track)Duration() time.Duration { return t.End().Sub(t.Start()) }

func (t Track)String() string {
	if len(t) == 0 { return "Track: 0 points" }
	str := fmt.Sprintf("Track: %d points, start=%s", len(t),
		t[0].TimestampUTC.Format("2006.01.02 15:04:05"))
	if len(t) > 1 {
		s,e := t[0],t[len(t)-1]
		str += fmt.Sprintf(", %s, %.1fKM (%.0f deg)",
			e.TimestampUTC.Sub(s.TimestampUTC), DistKM(s.Latlong, e.Latlong),
			BearingDeg(s.Latlong, e.Latlong))
	}
	return str
}

// BuildTrack turns a chronologically sorted run of reports for one
// vessel (at least one element) into trackpoints, deriving each point's
// kinematic deltas from its immediate predecessor. No plausibility
// checking happens here; garbage positions flow into garbage deltas.
func BuildTrack(reports []PositionReport) Track {
	t := make(Track, 0, len(reports))

	for i,r := range reports {
		tp := TrackpointFromReport(r)

		if i > 0 {
			prev := reports[i-1]
			elapsed := r.TimestampUTC.Sub(prev.TimestampUTC).Seconds()
			dist := DistKM(prev.Latlong, r.Latlong)
			course := AngularDiff(prev.CourseOverGround, r.CourseOverGround)
			heading := AngularDiff(prev.Heading, r.Heading)

			tp.ElapsedSec = &elapsed
			tp.DistanceKM = &dist
			tp.CourseChange = &course
			tp.HeadingChange = &heading

			// Duplicate timestamps happen; leave the speed absent
			// rather than divide by zero.
			if elapsed > 0 {
				kts := (dist / elapsed) * 3600.0 * geo.KNauticalMilePerKM
				tp.ComputedKts = &kts
			}
		}

		t = append(t, tp)
	}

	return t
}
