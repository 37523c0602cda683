package sez2ecef

import "math"

// Mathematical and physical constants
const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi

	// Reference ellipsoid
	ReKm = 6378.1363      // Earth's equatorial radius in km
	EccE = 0.081819221456 // Earth's first eccentricity
)

// Earth is the reference ellipsoid used by the package level helpers.
var Earth = Ellipsoid{Radius: ReKm, Eccentricity: EccE}
