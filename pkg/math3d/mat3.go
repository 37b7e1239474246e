package math3d

import "math"

// Mat3 is a 3x3 matrix stored as three rows. The pipeline only rotates and
// scales, so there is no homogeneous row.
type Mat3 [3]Vec3

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diag returns a matrix scaling each axis by the matching component of v.
func Diag(v Vec3) Mat3 {
	return Mat3{
		{v.X, 0, 0},
		{0, v.Y, 0},
		{0, 0, v.Z},
	}
}

// RotateX rotates counter-clockwise about +X when looking down the axis;
// +Y goes to +Z.
func RotateX(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY sends +Z to +X.
func RotateY(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotateZ sends +X to +Y.
func RotateZ(angle float64) Mat3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// EulerZYX returns Rz·Ry·Rx for the given angles in radians. Applied to a
// vector, the X rotation happens first, then Y, then Z.
func EulerZYX(angles Vec3) Mat3 {
	return RotateZ(angles.Z).Mul(RotateY(angles.Y)).Mul(RotateX(angles.X))
}

// Mul returns m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	nt := n.Transpose()
	var out Mat3
	for i, row := range m {
		out[i] = Vec3{row.Dot(nt[0]), row.Dot(nt[1]), row.Dot(nt[2])}
	}
	return out
}

// MulVec3 returns m·v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// Transpose swaps rows and columns. For a rotation this is the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}
