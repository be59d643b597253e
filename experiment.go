package waveletbench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tphakala/go-wavelet-bench/internal/interp"
	"github.com/tphakala/go-wavelet-bench/internal/mathutil"
	"github.com/tphakala/go-wavelet-bench/internal/scaling"
	"github.com/tphakala/go-wavelet-bench/internal/supnorm"
	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// Run executes the benchmark for every configured p. R is the sample type
// under study; P is the type the dense reference is computed in and must be
// at least as wide as R. A CSV I/O failure aborts the affected p only; the
// remaining entries still run and the errors are joined.
func Run[R, P vecops.Float](cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if mathutil.Bits[P]() < mathutil.Bits[R]() {
		return fmt.Errorf("%w: %d-bit reference for %d-bit samples",
			ErrPrecisionTooNarrow, mathutil.Bits[P](), mathutil.Bits[R]())
	}
	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}
	var errs []error
	for _, p := range cfg.Moments {
		if err := runMoment[R, P](&cfg, console, p); err != nil {
			fmt.Fprintf(console, "p = %d aborted: %v\n", p, err)
			errs = append(errs, fmt.Errorf("p=%d: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// runMoment benchmarks all candidates for one scaling function phi_p and
// writes its convergence CSV.
func runMoment[R, P vecops.Float](cfg *Config, console io.Writer, p int) (err error) {
	name := fmt.Sprintf("daubechies_%d_scaling_convergence.csv", p)
	f, err := os.Create(filepath.Join(cfg.OutputDir, name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(f)

	// The reference is computed at full precision, then narrowed once.
	// The wide copy is released before the candidate loop allocates.
	fmt.Fprintln(console, "Computing phi_dense_precise")
	dense, err := scaling.DyadicGrid[P](p, 0, cfg.RMax)
	if err != nil {
		return err
	}
	reference := make([]R, len(dense))
	for i, v := range dense {
		reference[i] = R(v)
	}
	dense = nil
	fmt.Fprintln(console, "Done")

	support := R(scaling.SupportWidth(p))
	dxDense := support / R(len(reference)-1)
	catalog := interp.Catalog[R](p)
	rep := newReporter[R](w, console, catalog)
	rep.writeHeader()

	for r := minLevel; r < cfg.RMax-1; r++ {
		grids, err := buildGrids[R](p, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(console, "dx = 1/%d = %s\n", 1<<r, rep.format(grids.Dx))

		rep.beginRow(r)
		for _, cand := range catalog {
			fn, err := cand.Build(grids)
			if err != nil {
				fmt.Fprintf(console, "\tskipping %s at r = %d: %v\n", cand.Display, r, err)
				rep.skipCell()
				continue
			}
			res := supnorm.Evaluate(reference, fn, dxDense, supnorm.Options[R]{
				SkipLast: cand.SkipLastDense,
			})
			rep.addCell(res.Sup, cand.Display)
		}
		rep.endRow(p)
	}

	return w.Flush()
}

// buildGrids generates the sample grids candidate interpolators consume at
// level r. Derivative grids beyond what p supports stay nil.
func buildGrids[R vecops.Float](p, r int) (*interp.Grids[R], error) {
	phi, err := scaling.DyadicGrid[R](p, 0, r)
	if err != nil {
		return nil, err
	}
	phiPrime, err := scaling.DyadicGrid[R](p, 1, r)
	if err != nil {
		return nil, err
	}
	g := &interp.Grids[R]{
		Moments:  p,
		Level:    r,
		Phi:      phi,
		PhiPrime: phiPrime,
	}
	g.Dx = g.Support() / R(len(phi)-1)
	if p >= 3 {
		if g.PhiDbl, err = scaling.DyadicGrid[R](p, 2, r); err != nil {
			return nil, err
		}
	}
	if p >= 4 {
		if g.PhiTriple, err = scaling.DyadicGrid[R](p, 3, r); err != nil {
			return nil, err
		}
	}
	return g, nil
}
