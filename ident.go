package vesseldb

// An MMSI is the nine-digit Maritime Mobile Service Identity that keys
// every AIS broadcast back to a vessel (or a coast station, SAR
// aircraft, etc; the leading digit says which).
type MMSI string

func (m MMSI)IsValid() bool {
	if len(m) != 9 { return false }
	for _,c := range m {
		if c < '0' || c > '9' { return false }
	}
	return true
}

// IsShipStation reports whether the MMSI belongs to an ordinary ship
// station (leading digit 2-7, one per ITU region).
func (m MMSI)IsShipStation() bool {
	return m.IsValid() && m[0] >= '2' && m[0] <= '7'
}

// MID returns the three-digit Maritime Identification Digits (the flag
// state prefix), or "" for identities that don't carry one up front.
func (m MMSI)MID() string {
	if !m.IsShipStation() { return "" }
	return string(m[0:3])
}
