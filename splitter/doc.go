// Package splitter segments source code and assigns each segment a
// target language based on a comfort-value heuristic.
//
// Splitting is structural (blank lines and a fixed-size cap), not
// grammar-driven; the comfort model scores each segment by weighing
// familiar scripting idioms against estimated runtime cost, and the
// score maps onto a target language through fixed thresholds.
package splitter
