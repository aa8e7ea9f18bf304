package vesseldb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSegmentsNoGaps(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	track := BuildTrack(steadyReports("366000010", 6, start, 3*time.Minute, 10))

	segments := track.Segments(60*time.Minute, 5)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if diff := cmp.Diff(track, segments[0]); diff != "" {
		t.Errorf("lone segment differs from track:\n%s", diff)
	}

	// Same track, under a minimum it can't meet: nothing comes back
	if segments := track.Segments(60*time.Minute, 7); len(segments) != 0 {
		t.Errorf("sub-threshold track yielded %d segments", len(segments))
	}
}

func TestSegmentsOneGap(t *testing.T) {
	track := BuildTrack(gapScenario()) // 3 points, 90min hole, 3 points

	segments := track.Segments(60*time.Minute, 3)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if len(segments[0]) != 3 || len(segments[1]) != 3 {
		t.Errorf("segment lengths %d/%d, want 3/3", len(segments[0]), len(segments[1]))
	}
	if !segments[1][0].TimestampUTC.After(segments[0][2].TimestampUTC) {
		t.Errorf("segments out of order")
	}

	// The post-gap point keeps the delta it was built with, even though
	// its predecessor now lives in another segment
	if segments[1][0].ElapsedSec == nil || *segments[1][0].ElapsedSec != 5400 {
		t.Errorf("boundary point lost its original delta")
	}

	// With the minimum above either side's length, both get dropped
	if segments := track.Segments(60*time.Minute, 4); len(segments) != 0 {
		t.Errorf("thin sides should be dropped, got %d segments", len(segments))
	}
}

func TestSegmentsThinSideDropped(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := steadyReports("366000011", 2, start, 3*time.Minute, 10)
	b := steadyReports("366000011", 5, start.Add(2*time.Hour), 3*time.Minute, 10)
	track := BuildTrack(append(a, b...))

	segments := track.Segments(60*time.Minute, 3)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if len(segments[0]) != 5 {
		t.Errorf("kept segment has %d points, want the 5 post-gap ones", len(segments[0]))
	}
}

func TestSegmentsEmpty(t *testing.T) {
	if segments := (Track{}).Segments(60*time.Minute, 5); len(segments) != 0 {
		t.Errorf("empty track yielded segments")
	}
}
