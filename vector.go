package sez2ecef

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Vector is a 3x1 column vector in km.
// In the topocentric frame X, Y, Z are the South, East and Zenith components;
// in the Earth fixed frame they are the ECEF axes.
type Vector struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by k
func (v Vector) Scale(k float64) Vector { return Vector{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// VecDense returns the vector as a gonum column vector.
func (v Vector) VecDense() *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X, v.Y, v.Z})
}

// FromVec builds a Vector from the first three elements of a gonum vector.
// There is no dimension check.
func FromVec(v mat.Vector) Vector {
	return Vector{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)}
}
