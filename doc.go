// Package waveletbench benchmarks interpolation schemes against the
// Daubechies scaling functions. For each supported number of vanishing
// moments p it builds a dense high-precision reference grid of phi_p,
// reconstructs the function from coarser grids with every candidate
// interpolator, and reports per-refinement-level sup-norm errors to a CSV
// file while announcing the ranked candidates on the console.
//
// The scaling functions are a deliberately hard target: phi_2 is only
// Hölder continuous, so smooth high-order schemes do not automatically win
// and the ranking genuinely depends on p.
package waveletbench
