package vesseldb

import(
	"math"

	"github.com/skypies/geo"
)

// Spherical earth. AIS positions aren't precise enough for an ellipsoid
// to matter.
const kEarthRadiusKM = 6371.0

// DistKM returns the great-circle (haversine) distance between two
// points, in kilometers. Symmetric; zero for identical points.
func DistKM(from, to geo.Latlong) float64 {
	lat1, lat2 := rad(from.Lat), rad(to.Lat)
	dLat := rad(to.Lat - from.Lat)
	dLong := rad(to.Long - from.Long)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLong/2)*math.Sin(dLong/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return kEarthRadiusKM * c
}

// BearingDeg returns the initial bearing from one point towards another,
// in degrees [0,360).
func BearingDeg(from, to geo.Latlong) float64 {
	lat1, lat2 := rad(from.Lat), rad(to.Lat)
	dLong := rad(to.Long - from.Long)

	y := math.Sin(dLong) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLong)

	return math.Mod(deg(math.Atan2(y, x))+360.0, 360.0)
}

// AngularDiff returns the absolute difference between two bearings or
// courses, wrapped to [0,180]; 350 vs 10 is 20, not 340.
func AngularDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360.0)
	if d > 180.0 {
		d = 360.0 - d
	}
	return d
}

func rad(d float64) float64 { return d * math.Pi / 180.0 }
func deg(r float64) float64 { return r * 180.0 / math.Pi }
