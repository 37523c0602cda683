package sez2ecef

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotY rotates the local SEZ axes about the East axis by (90° - latitude).
// The matrix is written directly in terms of the latitude in radians.
func RotY(latRad float64) *mat.Dense {
	s, c := math.Sincos(latRad)
	return mat.NewDense(3, 3, []float64{
		s, 0, c,
		0, 1, 0,
		-c, 0, s,
	})
}

// RotZ rotation about the 3rd axis by the longitude in radians.
func RotZ(lonRad float64) *mat.Dense {
	s, c := math.Sincos(lonRad)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// SEZRotation returns Rz·Ry, the full rotation from SEZ into ECEF orientation.
func SEZRotation(latRad, lonRad float64) *mat.Dense {
	var r mat.Dense
	r.Mul(RotZ(lonRad), RotY(latRad))
	return &r
}

// mxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func mxV33(m mat.Matrix, v Vector) Vector {
	var r mat.VecDense
	r.MulVec(m, v.VecDense())
	return FromVec(&r)
}
