// Package codec implements the container-level deflate writer and inflate
// reader of rlepack.
//
// Deflation is two-pass: Plan analyzes the input (runs, format selection,
// node table) and predicts the exact output size, then Execute materializes
// the container into a pre-sized writable range. The prediction and the
// writer's final cursor are asserted equal, so any drift between the
// analytic estimator and the builder surfaces as an error instead of a
// corrupted file.
package codec
