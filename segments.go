package vesseldb

import "time"

// Segments splits the track into continuous runs, breaking wherever the
// time since the previous point exceeds maxGap. Runs shorter than
// minPoints are dropped outright, never returned short; a track made
// entirely of thin runs yields no segments at all.
//
// Splitting never touches the points themselves: each point keeps the
// deltas it was built with, even when its predecessor lands in another
// segment.
func (t Track)Segments(maxGap time.Duration, minPoints int) []Track {
	segments := []Track{}
	if len(t) == 0 { return segments }

	maxGapSec := maxGap.Seconds()
	start := 0
	for i:=1; i<len(t); i++ {
		elapsed := t[i].TimestampUTC.Sub(t[i-1].TimestampUTC).Seconds()
		if elapsed > maxGapSec {
			if i-start >= minPoints {
				segments = append(segments, t[start:i])
			}
			start = i
		}
	}
	if len(t)-start >= minPoints {
		segments = append(segments, t[start:])
	}

	return segments
}
