package vesseldb

import(
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// NavStatus is the navigational-status field of an AIS position report
// (the ITU-R M.1371 values we actually see, as a closed enum).
type NavStatus int

const(
	NavUnderWayEngine            NavStatus = 0
	NavAtAnchor                  NavStatus = 1
	NavNotUnderCommand           NavStatus = 2
	NavRestrictedManoeuvrability NavStatus = 3
	NavConstrainedByDraught      NavStatus = 4
	NavMoored                    NavStatus = 5
	NavAground                   NavStatus = 6
	NavFishing                   NavStatus = 7
	NavUnderWaySailing           NavStatus = 8
	NavUndefined                 NavStatus = 15
)

func (ns NavStatus)LongString() string {
	switch ns {
	case NavUnderWayEngine:            return "Under way using engine"
	case NavAtAnchor:                  return "At anchor"
	case NavNotUnderCommand:           return "Not under command"
	case NavRestrictedManoeuvrability: return "Restricted manoeuvrability"
	case NavConstrainedByDraught:      return "Constrained by her draught"
	case NavMoored:                    return "Moored"
	case NavAground:                   return "Aground"
	case NavFishing:                   return "Engaged in fishing"
	case NavUnderWaySailing:           return "Under way sailing"
	case NavUndefined:                 return "(undefined)"
	}
	return "(unknown)"
}

// A PositionReport is one AIS-style broadcast from a vessel's
// transponder, as handed to us by the ingestion feed. We never mutate
// these; everything derived lives on TrackPoint instead.
type PositionReport struct {
	VesselID     string    // MMSI
	TimestampUTC time.Time // Always in UTC, to make life SIMPLE

	geo.Latlong            // Embedded type, so we can call all the geo stuff directly

	GroundSpeed      float64   // SOG, in knots
	CourseOverGround float64   // COG, [0.0, 360.0) degrees
	Heading          float64   // True heading, [0.0, 360.0) degrees
	RateOfTurn       float64   // Degrees per minute; negative is to port
	NavStatus        NavStatus
}

type byReportTimeAscending []PositionReport
func (a byReportTimeAscending) Len() int           { return len(a) }
func (a byReportTimeAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byReportTimeAscending) Less(i, j int) bool {
	return a[i].TimestampUTC.Before(a[j].TimestampUTC)
}

func (r PositionReport)String() string {
	return fmt.Sprintf("[%s] %s %s %.1fkts, %.0fdeg", r.VesselID,
		r.TimestampUTC.Format("2006.01.02 15:04:05"), r.Latlong, r.GroundSpeed,
		r.CourseOverGround)
}
