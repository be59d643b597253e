package waveletbench

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-wavelet-bench/internal/interp"
)

// runCapture runs a small benchmark instance and returns the console text
// and the CSV bytes for each p.
func runCapture(t *testing.T, moments []int, rmax int) (string, map[int][]byte) {
	t.Helper()
	dir := t.TempDir()
	var console bytes.Buffer
	cfg := Config{Moments: moments, RMax: rmax, OutputDir: dir, Console: &console}
	require.NoError(t, Run[float64, float64](cfg))
	files := map[int][]byte{}
	for _, p := range moments {
		b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("daubechies_%d_scaling_convergence.csv", p)))
		require.NoError(t, err)
		files[p] = b
	}
	return console.String(), files
}

func winners(console string) []string {
	var w []string
	for _, line := range strings.Split(console, "\n") {
		if rest, ok := strings.CutPrefix(line, "\tThe best method for p = "); ok {
			_, name, found := strings.Cut(rest, " is the ")
			if found {
				w = append(w, name)
			}
		}
	}
	return w
}

func TestRunHeaderColumns(t *testing.T) {
	tests := []struct {
		p      int
		header string
	}{
		{2, "r, matched_holder, linear, quadratic_b_spline, cubic_b_spline, quintic_b_spline, cubic_hermite, pchip, makima, fo_taylor"},
		{3, "r, matched_holder, linear, quadratic_b_spline, cubic_b_spline, quintic_b_spline, cubic_hermite, pchip, makima, fo_taylor, quintic_hermite, second_order_taylor"},
		{4, "r, matched_holder, linear, quadratic_b_spline, cubic_b_spline, quintic_b_spline, cubic_hermite, pchip, makima, fo_taylor, quintic_hermite, second_order_taylor, third_order_taylor, septic_hermite"},
	}
	_, files := runCapture(t, []int{2, 3, 4}, 5)
	for _, tt := range tests {
		lines := strings.Split(string(files[tt.p]), "\n")
		require.NotEmpty(t, lines)
		assert.Equal(t, tt.header, lines[0], "p=%d", tt.p)
	}
}

func TestRunRowShape(t *testing.T) {
	const rmax = 6
	_, files := runCapture(t, []int{2}, rmax)
	lines := strings.Split(strings.TrimRight(string(files[2]), "\n"), "\n")
	require.Len(t, lines, 1+(rmax-2-2)+1) // header + rows r=2..rmax-2
	for i, line := range lines[1:] {
		cells := strings.Split(line, ", ")
		require.Len(t, cells, 10, "row %d", i)
		r, err := strconv.Atoi(cells[0])
		require.NoError(t, err)
		assert.Equal(t, 2+i, r)
		for j, cell := range cells[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err, "row %d col %d", i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			// fixed notation, 18 decimals for float64
			_, frac, ok := strings.Cut(cell, ".")
			require.True(t, ok, "cell %q not fixed notation", cell)
			assert.Len(t, frac, 18, "cell %q", cell)
		}
	}
}

func TestRunLinearWinsForSmallMoments(t *testing.T) {
	console, _ := runCapture(t, []int{2, 3}, 6)
	w := winners(console)
	require.Len(t, w, 2*3) // two p values, r = 2..4
	for i, name := range w {
		assert.Equal(t, "linear interpolation", name, "winner %d", i)
	}
}

func TestRunCubicHermiteWinsForP4(t *testing.T) {
	console, files := runCapture(t, []int{4}, 8)
	w := winners(console)
	require.Len(t, w, 5) // r = 2..6
	assert.Equal(t, "cubic_hermite_spline", w[3], "winner at r=5")

	// The announced winner must be the argmin of its CSV row.
	catalog := interp.Catalog[float64](4)
	lines := strings.Split(strings.TrimRight(string(files[4]), "\n"), "\n")
	for i, line := range lines[1:] {
		cells := strings.Split(line, ", ")
		require.Len(t, cells, len(catalog)+1)
		best, bestV := -1, 0.0
		for j, cell := range cells[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			require.NoError(t, err)
			if best < 0 || v < bestV {
				best, bestV = j, v
			}
		}
		assert.Equal(t, catalog[best].Display, w[i], "row %d", i)
	}
}

func TestRunQuinticHermiteWinsForP8(t *testing.T) {
	console, _ := runCapture(t, []int{8}, 12)
	w := winners(console)
	require.Len(t, w, 9) // r = 2..10
	for i, name := range w {
		assert.Equal(t, "quintic_hermite_spline", name, "winner at r=%d", 2+i)
	}
}

func TestRunSepticHermiteWinsForP12(t *testing.T) {
	console, _ := runCapture(t, []int{12}, 13)
	w := winners(console)
	require.Len(t, w, 10) // r = 2..11
	assert.Equal(t, "septic_hermite_spline", w[8], "winner at r=10")
}

// The cubic Hermite spline has a proven convergence rate on phi_4, so its
// sup error must shrink at every refinement step.
func TestRunErrorsShrinkWithRefinement(t *testing.T) {
	_, files := runCapture(t, []int{4}, 7)
	lines := strings.Split(strings.TrimRight(string(files[4]), "\n"), "\n")
	header := strings.Split(lines[0], ", ")
	col := -1
	for j, name := range header {
		if name == "cubic_hermite" {
			col = j
		}
	}
	require.GreaterOrEqual(t, col, 0)
	prev := 0.0
	for i, line := range lines[1:] {
		v, err := strconv.ParseFloat(strings.Split(line, ", ")[col], 64)
		require.NoError(t, err)
		if i > 0 {
			assert.Less(t, v, prev, "row %d", i)
		}
		prev = v
	}
}

func TestRunDeterministic(t *testing.T) {
	console1, files1 := runCapture(t, []int{3}, 6)
	console2, files2 := runCapture(t, []int{3}, 6)
	assert.Equal(t, console1, console2)
	assert.Equal(t, files1[3], files2[3])
}

func TestRunConsoleProtocol(t *testing.T) {
	console, _ := runCapture(t, []int{2}, 5)
	assert.True(t, strings.HasPrefix(console, "Computing phi_dense_precise\nDone\n"))
	assert.Contains(t, console, "dx = 1/4 = 0.250000000000000000\n")
	assert.Contains(t, console, "dx = 1/8 = 0.125000000000000000\n")
	assert.Contains(t, console, " is error of linear interpolation\n")
	assert.Contains(t, console, " is error of First-order Taylor\n")
	assert.Contains(t, console, "\tThe best method for p = 2 is the ")
}

func TestRunPrecisionTooNarrow(t *testing.T) {
	cfg := Config{Moments: []int{2}, RMax: 5, OutputDir: t.TempDir()}
	err := Run[float64, float32](cfg)
	assert.ErrorIs(t, err, ErrPrecisionTooNarrow)
}

func TestRunFloat32Pair(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	cfg := Config{Moments: []int{2}, RMax: 5, OutputDir: dir, Console: &console}
	require.NoError(t, Run[float32, float64](cfg))
	b, err := os.ReadFile(filepath.Join(dir, "daubechies_2_scaling_convergence.csv"))
	require.NoError(t, err)
	lines := strings.Split(string(b), "\n")
	cells := strings.Split(lines[1], ", ")
	// float32 cells carry digits10+3 = 9 decimals
	_, frac, ok := strings.Cut(cells[1], ".")
	require.True(t, ok)
	assert.Len(t, frac, 9)
}

func TestRunInvalidConfig(t *testing.T) {
	err := Run[float64, float64](Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunUnwritableOutputDirContinues(t *testing.T) {
	var console bytes.Buffer
	cfg := Config{
		Moments:   []int{2, 3},
		RMax:      5,
		OutputDir: filepath.Join(t.TempDir(), "missing", "nested"),
		Console:   &console,
	}
	err := Run[float64, float64](cfg)
	assert.Error(t, err)
	assert.Contains(t, console.String(), "p = 2 aborted")
	assert.Contains(t, console.String(), "p = 3 aborted")
}
