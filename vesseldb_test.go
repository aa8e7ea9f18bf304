package vesseldb

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestDB(reports ...PositionReport) *VesselDB {
	src := NewMemSource()
	src.Add(reports...)
	return NewVesselDB(src)
}

func TestReconstructTrack(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reports := steadyReports("366100001", 8, start, 3*time.Minute, 10)

	// Feed them in out of order; the source makes no promises
	shuffled := []PositionReport{reports[5], reports[0], reports[7], reports[2],
		reports[1], reports[6], reports[3], reports[4]}
	db := newTestDB(shuffled...)

	vt := db.ReconstructTrack("366100001", nil)
	if vt == nil {
		t.Fatalf("got nil track for 8 reports")
	}
	if len(vt.Points) != 8 {
		t.Errorf("got %d points, want 8", len(vt.Points))
	}
	for i := 1; i < len(vt.Points); i++ {
		if vt.Points[i].TimestampUTC.Before(vt.Points[i-1].TimestampUTC) {
			t.Errorf("points not re-sorted at %d", i)
		}
	}

	if !vt.StartTimeUTC.Equal(start) || !vt.EndTimeUTC.Equal(start.Add(21*time.Minute)) {
		t.Errorf("track window %s -> %s", vt.StartTimeUTC, vt.EndTimeUTC)
	}
	if len(vt.Anomalies) != 0 {
		t.Errorf("fresh track already has %d anomalies", len(vt.Anomalies))
	}
	if vt.Quality.NumPoints != 8 {
		t.Errorf("quality counted %d points", vt.Quality.NumPoints)
	}
}

func TestReconstructTrackTooThin(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	db := newTestDB(steadyReports("366100002", 4, start, 3*time.Minute, 10)...)

	if vt := db.ReconstructTrack("366100002", nil); vt != nil {
		t.Errorf("4 reports under a 5-point minimum produced a track")
	}
	if vt := db.ReconstructTrack("no-such-vessel", nil); vt != nil {
		t.Errorf("unknown vessel produced a track")
	}
}

func TestReconstructTrackStats(t *testing.T) {
	db := newTestDB(gapScenario()...)
	db.Config.MinPointsForTrack = 5

	vt := db.ReconstructTrack("366000001", nil)
	if vt == nil {
		t.Fatalf("nil track")
	}

	// Aggregates come from the claimed SOG, not the geometry
	if vt.AvgSpeedKts != 10.0 || vt.MaxSpeedKts != 10.0 {
		t.Errorf("speeds %f/%f, want 10/10 from SOG", vt.AvgSpeedKts, vt.MaxSpeedKts)
	}

	// 102min under way at 10kts is ~31.5KM over the ground
	wantKM := 10 * 1.852 * (102.0 / 60.0)
	if math.Abs(vt.TotalDistKM-wantKM) > 0.5 {
		t.Errorf("total distance %f, want ~%f", vt.TotalDistKM, wantKM)
	}

	if vt.Quality.NumGaps != 1 || vt.Quality.MaxGapSec != 5400 {
		t.Errorf("quality gaps off: %+v", vt.Quality)
	}
}

func TestMetadataResolution(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	src := NewMemSource()
	src.Add(steadyReports("366100003", 5, start, 3*time.Minute, 10)...)
	db := NewVesselDB(src)

	// Nobody knows this vessel: placeholder
	vt := db.ReconstructTrack("366100003", nil)
	want := VesselMetadata{VesselID: "366100003", Type: VTUnknown, DeviceClass: DCClassA}
	if diff := cmp.Diff(want, vt.Metadata); diff != "" {
		t.Errorf("placeholder metadata:\n%s", diff)
	}

	// The source knows it: source wins over placeholder
	fromSource := VesselMetadata{VesselID: "366100003", Type: VTCargo, DeviceClass: DCClassA,
		Dim: Dimensions{ToBowM: 120, ToSternM: 80, ToPortM: 10, ToStarboardM: 22}}
	src.SetMetadata(fromSource)
	vt = db.ReconstructTrack("366100003", nil)
	if diff := cmp.Diff(fromSource, vt.Metadata); diff != "" {
		t.Errorf("source metadata:\n%s", diff)
	}

	// The caller knows better: caller wins over source
	fromCaller := VesselMetadata{VesselID: "366100003", Type: VTTanker, DeviceClass: DCClassB}
	vt = db.ReconstructTrack("366100003", &fromCaller)
	if diff := cmp.Diff(fromCaller, vt.Metadata); diff != "" {
		t.Errorf("caller metadata:\n%s", diff)
	}
}

func TestReconstructAllTracks(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	src := NewMemSource()
	src.Add(steadyReports("366100004", 6, start, 3*time.Minute, 10)...)
	src.Add(steadyReports("366100005", 2, start, 3*time.Minute, 8)...) // too thin
	src.Add(steadyReports("366100006", 9, start, 3*time.Minute, 14)...)
	db := NewVesselDB(src)

	tracks := db.ReconstructAllTracks()
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2 (thin vessel skipped)", len(tracks))
	}
	if tracks[0].VesselID != "366100004" || tracks[1].VesselID != "366100006" {
		t.Errorf("got vessels %s,%s", tracks[0].VesselID, tracks[1].VesselID)
	}
}

// Different vessels can reconstruct concurrently against one source.
func TestReconstructConcurrent(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	src := NewMemSource()
	ids := []string{"366100007", "366100008", "366100009"}
	for _, id := range ids {
		src.Add(steadyReports(id, 20, start, 3*time.Minute, 10)...)
	}
	db := NewVesselDB(src)

	done := make(chan *VesselTrack, len(ids))
	for _, id := range ids {
		go func(id string) { done <- db.ReconstructTrack(id, nil) }(id)
	}
	for range ids {
		if vt := <-done; vt == nil || len(vt.Points) != 20 {
			t.Errorf("concurrent reconstruction came back wrong: %v", vt)
		}
	}
}
