package sez2ecef

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Location represents an observer on the ellipsoid.
// Latitude and longitude are not range checked: out of range values are
// computed as given.
type Location struct {
	Latitude  float64 // Geodetic latitude in degrees (North positive)
	Longitude float64 // Longitude in degrees (East positive)
	Altitude  float64 // Height above the ellipsoid in km
}

// Ellipsoid is a reference ellipsoid described by its semi-major axis and first eccentricity.
type Ellipsoid struct {
	Radius       float64 // Semi-major axis in km
	Eccentricity float64
}

// LookAngles represents the direction and distance of a topocentric vector
// in the local horizontal frame.
type LookAngles struct {
	Azimuth   float64 // degrees clockwise from true North (0° to 360°)
	Elevation float64 // degrees above the local horizon (-90° to 90°)
	Range     float64 // km
}

// Denominator returns sqrt(1 - e²·sin²(lat)), the term shared by both radii of curvature.
// It is always real and positive since e² < 1.
func (e Ellipsoid) Denominator(latRad float64) float64 {
	sinLat := math.Sin(latRad)
	return math.Sqrt(1.0 - e.Eccentricity*e.Eccentricity*sinLat*sinLat)
}

// TransverseRadius returns the radius of curvature in the prime vertical (c_E) in km.
func (e Ellipsoid) TransverseRadius(latRad float64) float64 {
	return e.Radius / e.Denominator(latRad)
}

// MeridionalTerm returns c_E·(1 - e²) (s_E) in km, used for the ECEF Z component.
func (e Ellipsoid) MeridionalTerm(latRad float64) float64 {
	return e.Radius * (1.0 - e.Eccentricity*e.Eccentricity) / e.Denominator(latRad)
}

// ECEF returns the Earth fixed position of the observer in km.
func (e Ellipsoid) ECEF(loc Location) Vector {
	latRad := loc.Latitude * deg2rad
	lonRad := loc.Longitude * deg2rad

	cE := e.TransverseRadius(latRad)
	sE := e.MeridionalTerm(latRad)

	sinLat, cosLat := math.Sincos(latRad)
	sinLon, cosLon := math.Sincos(lonRad)

	return Vector{
		X: (cE + loc.Altitude) * cosLat * cosLon,
		Y: (cE + loc.Altitude) * cosLat * sinLon,
		Z: (sE + loc.Altitude) * sinLat,
	}
}

// SEZToECEF converts a topocentric SEZ vector seen from loc into an ECEF position.
// The vector is rotated by Ry then Rz and translated by the observer position.
func (e Ellipsoid) SEZToECEF(loc Location, sez Vector) Vector {
	latRad := loc.Latitude * deg2rad
	lonRad := loc.Longitude * deg2rad

	rot1 := mxV33(RotY(latRad), sez)
	rotated := mxV33(RotZ(lonRad), rot1)

	return rotated.Add(e.ECEF(loc))
}

// ECEFToSEZ converts an ECEF position into the SEZ frame of loc.
// It is the inverse of SEZToECEF.
func (e Ellipsoid) ECEFToSEZ(loc Location, ecef Vector) Vector {
	r := SEZRotation(loc.Latitude*deg2rad, loc.Longitude*deg2rad)
	return mxV33(r.T(), ecef.Sub(e.ECEF(loc)))
}

// Geodetic converts an ECEF position (km) to geodetic latitude, longitude and height.
// Longitude is in [-180°, 180°].
func (e Ellipsoid) Geodetic(ecef Vector) Location {
	e2 := e.Eccentricity * e.Eccentricity

	x, y, z := ecef.X, ecef.Y, ecef.Z
	lon := math.Atan2(y, x)
	r := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, r*(1.0-e2))

	const maxIter = 10
	const tol = 1e-12
	for i := 0; i < maxIter; i++ {
		oldLat := lat
		lat = math.Atan2(z+e.TransverseRadius(lat)*e2*math.Sin(lat), r)
		if math.Abs(lat-oldLat) < tol {
			break
		}
	}

	var alt float64
	cosLat := math.Cos(lat)
	if math.Abs(cosLat) < 1e-10 {
		alt = math.Abs(z) - e.Radius*math.Sqrt(1.0-e2)
	} else {
		alt = r/cosLat - e.TransverseRadius(lat)
	}

	return Location{
		Latitude:  lat * rad2deg,
		Longitude: lon * rad2deg,
		Altitude:  alt,
	}
}

// LookAngles returns azimuth, elevation and range of a SEZ vector.
// Straight up (or down) and the zero vector have an azimuth of 0.
// Range is always the norm of v.
func (v Vector) LookAngles() LookAngles {
	rng := v.Norm()
	if rng == 0 {
		return LookAngles{}
	}

	var azimuth float64
	// North is -S.
	if !scalar.EqualWithinAbs(math.Hypot(v.X, v.Y)/rng, 0, 1e-12) {
		azimuth = math.Atan2(v.Y, -v.X) * rad2deg
		if azimuth < 0.0 {
			azimuth += 360.0
		}
	}

	return LookAngles{
		Azimuth:   azimuth,
		Elevation: math.Asin(math.Max(-1, math.Min(1, v.Z/rng))) * rad2deg,
		Range:     rng,
	}
}

// SEZToECEF converts sez seen from loc into ECEF using the Earth ellipsoid.
func SEZToECEF(loc Location, sez Vector) Vector {
	return Earth.SEZToECEF(loc, sez)
}

// ECEFToSEZ converts ecef into the SEZ frame of loc using the Earth ellipsoid.
func ECEFToSEZ(loc Location, ecef Vector) Vector {
	return Earth.ECEFToSEZ(loc, ecef)
}
