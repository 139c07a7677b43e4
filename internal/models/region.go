package models

import "strings"

// Region selects the content variant served to a reader. It is a closed
// enumeration: anything outside the four known codes is normalized to us
// at the boundary and never travels further into the system.
type Region string

const (
	RegionUS Region = "us"
	RegionUK Region = "uk"
	RegionAU Region = "au"
	RegionCA Region = "ca"
)

// Regions lists every supported region code.
var Regions = []Region{RegionUS, RegionUK, RegionAU, RegionCA}

// ParseRegion strictly parses a region code. The boolean is false for
// anything that is not one of the four known codes.
func ParseRegion(raw string) (Region, bool) {
	r := Region(strings.ToLower(strings.TrimSpace(raw)))
	switch r {
	case RegionUS, RegionUK, RegionAU, RegionCA:
		return r, true
	}
	return "", false
}

// NormalizeRegion maps an arbitrary string onto the closed enum, falling
// back to us for unknown codes. This is the documented default, not an
// error.
func NormalizeRegion(raw string) Region {
	if r, ok := ParseRegion(raw); ok {
		return r
	}
	return RegionUS
}

// DisplayName returns the human-readable country name for email copy.
func (r Region) DisplayName() string {
	switch r {
	case RegionUK:
		return "United Kingdom"
	case RegionAU:
		return "Australia"
	case RegionCA:
		return "Canada"
	default:
		return "United States"
	}
}

// Upper returns the uppercased wire form, used in attachment names and
// operator notification subjects.
func (r Region) Upper() string {
	return strings.ToUpper(string(r))
}
