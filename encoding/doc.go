// Package encoding implements the deflation-side analysis passes of the
// rlepack codec: the run collector, the per-format analytic efficiency
// estimator, the format selector, and the parallel node table builder.
//
// The passes share one Run representation and are strictly layered: the
// collector scans raw bytes once, the estimator predicts each format's
// saving without materializing nodes, the selector picks the winner, and the
// builder materializes the node table for the chosen layout only.
package encoding
