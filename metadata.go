package vesseldb

import "fmt"

// VesselType is the broad ship-type category carried in AIS static
// data, as a closed enum rather than the raw two-digit code.
type VesselType string
const(
	VTUnknown   VesselType = "unknown"
	VTCargo     VesselType = "cargo"
	VTTanker    VesselType = "tanker"
	VTPassenger VesselType = "passenger"
	VTFishing   VesselType = "fishing"
	VTTug       VesselType = "tug"
	VTPleasure  VesselType = "pleasure"
	VTOther     VesselType = "other"
)

// DeviceClass says which grade of transponder produced the reports.
type DeviceClass string
const(
	DCUnknown DeviceClass = "?"
	DCClassA  DeviceClass = "A" // SOLAS-grade, the common case
	DCClassB  DeviceClass = "B" // Lower power, sparser reporting
)

func (dc DeviceClass)LongString() string {
	switch dc {
	case DCClassA:  return "Class A transponder"
	case DCClassB:  return "Class B transponder"
	case DCUnknown: return "(unknown)"
	default:        return "(unknown2)"
	}
}

// Dimensions is the AIS antenna-relative hull footprint, in meters.
type Dimensions struct {
	ToBowM       int
	ToSternM     int
	ToPortM      int
	ToStarboardM int
}

func (d Dimensions)LengthM() int { return d.ToBowM + d.ToSternM }
func (d Dimensions)BeamM() int { return d.ToPortM + d.ToStarboardM }

// VesselMetadata is static reference data about a vessel. It is
// resolved from the ingestion feed, never computed here.
type VesselMetadata struct {
	VesselID    string // MMSI
	Type        VesselType
	DeviceClass DeviceClass
	Dim         Dimensions
}

func (vm VesselMetadata)String() string {
	return fmt.Sprintf("%s %s/%s %dx%dm", vm.VesselID, vm.Type,
		vm.DeviceClass, vm.Dim.LengthM(), vm.Dim.BeamM())
}

// PlaceholderMetadata is what a vessel gets when neither the caller nor
// the feed knows anything about it. Metadata never blocks a track.
func PlaceholderMetadata(vesselID string) VesselMetadata {
	return VesselMetadata{
		VesselID: vesselID,
		Type: VTUnknown,
		DeviceClass: DCClassA,
	}
}
