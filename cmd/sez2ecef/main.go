// Command sez2ecef converts a topocentric SEZ vector into an ECEF position.
//
// Usage:
//
//	sez2ecef o_lat_deg o_lon_deg o_hae_km s_km e_km z_km
//
// The observer is given by its geodetic latitude and longitude in degrees and
// its height above the ellipsoid in km. The S, E and Z components are in km.
// The resulting ECEF x, y and z components (km) are printed as a column vector.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/yong0429/sez2ecef"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		if errors.Is(err, sez2ecef.ErrUsage) {
			os.Exit(2)
		}
		log.Fatalf("sez2ecef: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	program := "sez2ecef"
	if len(args) > 0 {
		program = filepath.Base(args[0])
		args = args[1:]
	}

	loc, sez, err := sez2ecef.ParseArgs(args)
	if errors.Is(err, sez2ecef.ErrUsage) {
		fmt.Fprintln(stdout, sez2ecef.Usage(program))
		return err
	}
	if err != nil {
		return err
	}

	ecef := sez2ecef.SEZToECEF(loc, sez)

	if _, err := fmt.Fprintf(stdout, "%v\n", mat.Formatted(ecef.VecDense())); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
