// Package grid models the integer placement lattice used for cube-style
// assemblies: grid coordinates, per-axis spacing, and the component tables
// that drive batch placement.
package grid

import (
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// Coord identifies a lattice cell. It is not a physical position; the
// world position is Coord × spacing, componentwise.
type Coord struct {
	X, Y, Z int
}

// DefaultSpacing is the UC2 cube convention: 50 mm in X and Y, 55 mm in Z.
var DefaultSpacing = r3.Vec{X: 50, Y: 50, Z: 55}

// Position converts a grid coordinate to a world position using the given
// per-axis spacing.
func Position(c Coord, spacing r3.Vec) r3.Vec {
	return r3.Vec{
		X: float64(c.X) * spacing.X,
		Y: float64(c.Y) * spacing.Y,
		Z: float64(c.Z) * spacing.Z,
	}
}

// Component is one row of a placement table: a component file placed at a
// grid cell with an optional Z-Y-X Euler rotation in degrees.
type Component struct {
	Name     string
	File     string
	Pos      Coord
	Rotation r3.Vec
}

// Validate splits a component table into entries whose files exist and the
// paths that are missing. Placement itself re-checks existence; this lets
// callers report all missing files up front.
func Validate(table []Component) (valid []Component, missing []string) {
	for _, c := range table {
		if _, err := os.Stat(c.File); err != nil {
			missing = append(missing, c.File)
			continue
		}
		valid = append(valid, c)
	}
	return valid, missing
}
