package inventor

import (
	"fmt"

	"goinvent/mathutil"
)

// Units selects the document unit system. The host stores lengths in
// centimeters internally regardless of the display units, so every length
// crossing the COM boundary is converted here.
type Units string

const (
	// Metric documents take lengths in millimeters.
	Metric Units = "metric"
	// Imperial documents take lengths in inches.
	Imperial Units = "imperial"
)

// ParseUnits validates a unit system name.
func ParseUnits(name string) (Units, error) {
	switch Units(name) {
	case Metric, Imperial:
		return Units(name), nil
	case "":
		return Metric, nil
	}
	return "", fmt.Errorf("inventor: invalid units %q (must be metric or imperial)", name)
}

// lengthUnitsEnum returns the host LengthUnits constant for the system.
func (u Units) lengthUnitsEnum() int {
	if u == Imperial {
		return kInchLengthUnits
	}
	return kMillimeterLengthUnits
}

// angleUnitsEnum returns the host AngleUnits constant for the system.
func (u Units) angleUnitsEnum() int {
	if u == Imperial {
		return kDegreeAngleUnits
	}
	return kRadianAngleUnits
}

// toHostLength converts a document-unit length to host centimeters.
func (u Units) toHostLength(v float64) float64 {
	if u == Imperial {
		return v * 2.54
	}
	return v * 0.1
}

// fromHostLength converts host centimeters back to document units.
func (u Units) fromHostLength(v float64) float64 {
	if u == Imperial {
		return v / 2.54
	}
	return v / 0.1
}

// toHostAngle converts a rotation angle in degrees to host radians.
// Rotations are degrees at the API surface regardless of unit system.
func toHostAngle(deg float64) float64 {
	return mathutil.Deg2Rad(deg)
}
