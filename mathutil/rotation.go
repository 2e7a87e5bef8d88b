package mathutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// EulerZYX composes a rotation from Euler angles applied Z first, then Y,
// then X. Angles in radians. This is the rotation order the host
// application's occurrence placement uses.
func EulerZYX(rx, ry, rz float64) Mat3 {
	return Mat3Mul(RotX(rx), Mat3Mul(RotY(ry), RotZ(rz)))
}

// Placement builds the full affine placement transform from Euler angles
// (radians, Z-Y-X order) and a world position.
func Placement(rot, pos r3.Vec) Mat4 {
	return FromMat3Translation(EulerZYX(rot.X, rot.Y, rot.Z), pos)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
