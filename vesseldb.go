package vesseldb

import(
	"sort"
	"time"
)

// Config is the reconstruction policy. It is a plain value; copy it,
// tweak it, and hand it to as many VesselDBs as you like.
type Config struct {
	// MaxGap is how large a pause between reports can get before we
	// conclude the track is structurally broken there.
	MaxGap time.Duration

	// MinPointsForTrack is the fewest reports worth reconstructing;
	// below it we return no track at all rather than a degenerate one.
	MinPointsForTrack int

	// ExpectedUpdateInterval is how often a healthy transponder reports.
	ExpectedUpdateInterval time.Duration

	// MinReportableGap is the (looser) audit threshold for FindGaps;
	// gaps worth flagging aren't necessarily worth splitting over.
	MinReportableGap time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxGap: 60 * time.Minute,
		MinPointsForTrack: 5,
		ExpectedUpdateInterval: 180 * time.Second,
		MinReportableGap: 30 * time.Minute,
	}
}

// A ReportSource is the ingestion side of the house: wherever the raw
// AIS feed has been accumulated. Read-only from our side. Reports may
// come back in any order. Implementations are responsible for handing
// out a consistent snapshot if callers reconstruct concurrently.
type ReportSource interface {
	Reports(vesselID string) []PositionReport
	Metadata(vesselID string) (VesselMetadata, bool)
	VesselIDs() []string
}

// A VesselDB reconstructs tracks from whatever its source currently
// holds. It keeps no state of its own between calls; every
// reconstruction is a fresh pure transform over the source snapshot.
type VesselDB struct {
	Source ReportSource
	Config Config
}

func NewVesselDB(source ReportSource) *VesselDB {
	return &VesselDB{Source: source, Config: DefaultConfig()}
}

// ReconstructTrack rebuilds one vessel's track. Returns nil when the
// source holds fewer than MinPointsForTrack reports; thin data is not
// an error. A caller-supplied metadata value wins over whatever the
// source knows.
func (db *VesselDB)ReconstructTrack(vesselID string, md *VesselMetadata) *VesselTrack {
	reports := db.Source.Reports(vesselID)
	if len(reports) < db.Config.MinPointsForTrack {
		return nil
	}

	// The source doesn't promise ordering, so don't assume it
	sorted := make([]PositionReport, len(reports))
	copy(sorted, reports)
	sort.Sort(byReportTimeAscending(sorted))

	points := BuildTrack(sorted)
	avgKts, maxKts := points.SpeedStats()

	return &VesselTrack{
		VesselID: vesselID,
		Metadata: db.resolveMetadata(vesselID, md),
		Points: points,
		Anomalies: []Anomaly{},
		Quality: AssessQuality(points, db.Config),
		StartTimeUTC: points.Start(),
		EndTimeUTC: points.End(),
		TotalDistKM: points.TotalDistKM(),
		AvgSpeedKts: avgKts,
		MaxSpeedKts: maxKts,
	}
}

// Metadata is best-effort; a vessel nobody knows anything about still
// gets a track, under placeholder metadata.
func (db *VesselDB)resolveMetadata(vesselID string, md *VesselMetadata) VesselMetadata {
	if md != nil {
		return *md
	}
	if m,ok := db.Source.Metadata(vesselID); ok {
		return m
	}
	return PlaceholderMetadata(vesselID)
}

// ReconstructAllTracks rebuilds every vessel the source knows about.
// Vessels without enough reports are silently omitted, not errors.
func (db *VesselDB)ReconstructAllTracks() []*VesselTrack {
	tracks := []*VesselTrack{}
	for _,id := range db.Source.VesselIDs() {
		if vt := db.ReconstructTrack(id, nil); vt != nil {
			tracks = append(tracks, vt)
		}
	}
	return tracks
}
