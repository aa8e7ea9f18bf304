package vesseldb

import "github.com/skypies/geo"

// TrackBounds is the geographic bounding box of a track, in degrees.
// The min/max fold is planar: a track crossing the antimeridian comes
// back with east/west inverted.
type TrackBounds struct {
	North, South, East, West float64
}

// Bounds folds every point into a running min/max box. An empty track
// returns the untouched worst-case extremes.
func (t Track)Bounds() TrackBounds {
	b := TrackBounds{North: -90.0, South: 90.0, East: -180.0, West: 180.0}
	for _,tp := range t {
		if tp.Lat > b.North { b.North = tp.Lat }
		if tp.Lat < b.South { b.South = tp.Lat }
		if tp.Long > b.East { b.East = tp.Long }
		if tp.Long < b.West { b.West = tp.Long }
	}
	return b
}

// Box returns the bounds as a geo box, SW to NE.
func (b TrackBounds)Box() geo.LatlongBox {
	return geo.LatlongBox{
		SW: geo.Latlong{Lat: b.South, Long: b.West},
		NE: geo.Latlong{Lat: b.North, Long: b.East},
	}
}
