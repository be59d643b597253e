package waveletbench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/go-wavelet-bench/internal/scaling"
)

const (
	// DefaultRMax is the refinement level of the dense reference grid.
	DefaultRMax = 17

	// minLevel is the coarsest candidate refinement level. Below r = 2
	// the grids are too short for several of the spline stencils.
	minLevel = 2
)

// Sentinel errors returned by the benchmark.
var (
	// ErrInvalidConfig indicates invalid benchmark configuration.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")

	// ErrPrecisionTooNarrow indicates the reference float type is
	// narrower than the sample type under study.
	ErrPrecisionTooNarrow = errors.New("reference type narrower than sample type")
)

// Config holds benchmark configuration.
type Config struct {
	// Moments lists the vanishing-moment counts p to benchmark, each
	// producing one CSV file. Supported range 2..15.
	Moments []int

	// RMax is the refinement level of the dense reference grid.
	// Candidate grids run r = 2..RMax-2.
	RMax int

	// OutputDir receives one daubechies_<p>_scaling_convergence.csv
	// per entry of Moments.
	OutputDir string

	// Console receives progress and ranking lines. Nil means os.Stdout.
	Console io.Writer
}

// DefaultConfig returns the configuration the shipped binary runs with:
// every supported p, the full reference depth, CSVs in the working
// directory.
func DefaultConfig() Config {
	moments := make([]int, 0, scaling.MaxMoments-scaling.MinMoments+1)
	for p := scaling.MinMoments; p <= scaling.MaxMoments; p++ {
		moments = append(moments, p)
	}
	return Config{
		Moments:   moments,
		RMax:      DefaultRMax,
		OutputDir: ".",
		Console:   os.Stdout,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Moments) == 0 {
		return fmt.Errorf("%w: no vanishing-moment counts given", ErrInvalidConfig)
	}
	for _, p := range c.Moments {
		if p < scaling.MinMoments || p > scaling.MaxMoments {
			return fmt.Errorf("%w: p=%d outside supported range %d..%d",
				ErrInvalidConfig, p, scaling.MinMoments, scaling.MaxMoments)
		}
	}
	if c.RMax < minLevel+2 {
		return fmt.Errorf("%w: r_max=%d leaves no candidate levels (need at least %d)",
			ErrInvalidConfig, c.RMax, minLevel+2)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}
	return nil
}
