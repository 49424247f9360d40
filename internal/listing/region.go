package listing

import (
	"fmt"
	"strings"
)

// Region is the Blu-ray region code domain.
type Region string

const (
	RegionA    Region = "A"
	RegionB    Region = "B"
	RegionC    Region = "C"
	RegionFree Region = "Free"
)

var regionAliases = map[string]Region{
	"a":           RegionA,
	"region a":    RegionA,
	"b":           RegionB,
	"region b":    RegionB,
	"c":           RegionC,
	"region c":    RegionC,
	"free":        RegionFree,
	"region free": RegionFree,
	"all":         RegionFree,
}

// Regions returns the region domain in declaration order.
func Regions() []Region {
	return []Region{RegionA, RegionB, RegionC, RegionFree}
}

// Valid reports whether r is a member of the region domain.
func (r Region) Valid() bool {
	switch r {
	case RegionA, RegionB, RegionC, RegionFree:
		return true
	}
	return false
}

// CoerceRegion resolves a caller-supplied region phrase through the alias
// table. Unrecognized values return ErrUnrecognizedOverride.
func CoerceRegion(value string) (Region, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if region, ok := regionAliases[key]; ok {
		return region, nil
	}
	return "", fmt.Errorf("%w: region code %q", ErrUnrecognizedOverride, value)
}
