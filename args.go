package sez2ecef

import (
	"errors"
	"strconv"
)

// ArgNames lists the positional arguments in the order they are expected.
var ArgNames = [...]string{"o_lat_deg", "o_lon_deg", "o_hae_km", "s_km", "e_km", "z_km"}

// Usage returns the one line usage message for program.
func Usage(program string) string {
	return "Usage: " + program + " o_lat_deg o_lon_deg o_hae_km s_km e_km z_km"
}

// ParseArgs parses the six positional arguments (program name excluded)
// into the observer location and the SEZ vector.
// Only syntactically invalid numbers are rejected; overflowing values become ±Inf.
func ParseArgs(args []string) (Location, Vector, error) {
	if len(args) != len(ArgNames) {
		return Location{}, Vector{}, ErrUsage
	}

	var vals [len(ArgNames)]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		// Out of range values parse to ±Inf and are computed as given.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Location{}, Vector{}, &ParseError{Name: ArgNames[i], Value: arg, Err: err}
		}
		vals[i] = v
	}

	loc := Location{Latitude: vals[0], Longitude: vals[1], Altitude: vals[2]}
	sez := Vector{X: vals[3], Y: vals[4], Z: vals[5]}
	return loc, sez, nil
}
