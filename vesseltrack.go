package vesseldb

import(
	"fmt"
	"time"
)

// An Anomaly is a finding the downstream detector attaches to a track.
// Reconstruction defines the slot and always leaves it empty.
type Anomaly struct {
	Type         string
	TimestampUTC time.Time
	Description  string
}

// A VesselTrack is the reconstructed movement history for one vessel:
// the enriched point sequence plus the aggregates computed over it.
// It is rebuilt from the source's current contents on every call, and
// never persisted or incrementally updated.
type VesselTrack struct {
	VesselID  string // MMSI
	Metadata  VesselMetadata
	Points    Track
	Anomalies []Anomaly // populated later, by the anomaly detector

	Quality      TrackQuality
	StartTimeUTC time.Time
	EndTimeUTC   time.Time
	TotalDistKM  float64
	AvgSpeedKts  float64 // From self-reported SOG
	MaxSpeedKts  float64 // From self-reported SOG
}

func (vt VesselTrack)String() string {
	return fmt.Sprintf("VesselTrack[%s]: %d points, %s, %.2fKM, q=%.2f",
		vt.VesselID, len(vt.Points), vt.EndTimeUTC.Sub(vt.StartTimeUTC),
		vt.TotalDistKM, vt.Quality.Score)
}

// Segments applies the structural gap split to the track's points.
func (vt VesselTrack)Segments(cfg Config) []Track {
	return vt.Points.Segments(cfg.MaxGap, cfg.MinPointsForTrack)
}

// Gaps lists the reportable pauses, using the looser audit threshold.
func (vt VesselTrack)Gaps(cfg Config) []TrackGap {
	return vt.Points.FindGaps(cfg.MinReportableGap)
}
