package waveletbench

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tphakala/go-wavelet-bench/internal/interp"
	"github.com/tphakala/go-wavelet-bench/internal/mathutil"
	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// reporter accumulates one CSV row of sup errors at a time and emits the
// ranked candidate list to the console after each row. Cells are written in
// catalog order; the ranking is sorted ascending by sup error with ties
// kept in catalog order.
type reporter[R vecops.Float] struct {
	csv     io.Writer
	console io.Writer
	catalog []interp.Candidate[R]

	// digits10 of R plus 3, the fixed-notation precision of every
	// numeric cell and console error line.
	prec    int
	bitSize int

	cells []string
	ranks []rankEntry[R]
}

type rankEntry[R vecops.Float] struct {
	sup     R
	display string
}

func newReporter[R vecops.Float](csv, console io.Writer, catalog []interp.Candidate[R]) *reporter[R] {
	return &reporter[R]{
		csv:     csv,
		console: console,
		catalog: catalog,
		prec:    mathutil.Digits10[R]() + 3,
		bitSize: mathutil.Bits[R](),
	}
}

// format renders v in fixed notation at the reporter's precision.
func (rep *reporter[R]) format(v R) string {
	return strconv.FormatFloat(float64(v), 'f', rep.prec, rep.bitSize)
}

func (rep *reporter[R]) writeHeader() {
	cols := make([]string, 0, len(rep.catalog)+1)
	cols = append(cols, "r")
	for _, c := range rep.catalog {
		cols = append(cols, c.Column)
	}
	fmt.Fprintf(rep.csv, "%s\n", strings.Join(cols, ", "))
}

func (rep *reporter[R]) beginRow(r int) {
	rep.cells = rep.cells[:0]
	rep.ranks = rep.ranks[:0]
	rep.cells = append(rep.cells, strconv.Itoa(r))
}

// skipCell leaves the current candidate's column empty.
func (rep *reporter[R]) skipCell() {
	rep.cells = append(rep.cells, "")
}

func (rep *reporter[R]) addCell(sup R, display string) {
	rep.cells = append(rep.cells, rep.format(sup))
	rep.ranks = append(rep.ranks, rankEntry[R]{sup: sup, display: display})
}

// endRow writes the CSV row and prints the ascending ranking followed by
// the winner line.
func (rep *reporter[R]) endRow(p int) {
	fmt.Fprintf(rep.csv, "%s\n", strings.Join(rep.cells, ", "))

	sort.SliceStable(rep.ranks, func(i, j int) bool {
		return rep.ranks[i].sup < rep.ranks[j].sup
	})
	best := "none"
	for i, e := range rep.ranks {
		fmt.Fprintf(rep.console, "\t%s is error of %s\n", rep.format(e.sup), e.display)
		if i == 0 {
			best = e.display
		}
	}
	fmt.Fprintf(rep.console, "\tThe best method for p = %d is the %s\n", p, best)
}
