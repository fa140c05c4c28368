// Package density implements the Bertaud urban-economics model used to
// audit proposed development density.
//
// The model predicts density at distance x from an urban center as
//
//	D(x) = D0 * e^(-g*x)
//
// where D0 is the density at the center and g the decay gradient. An
// audit compares a proposed density against this prediction, classifies
// the ratio into a five-band status, and (when a legal FAR ceiling is
// known) reports the gap between theoretical demand and the law.
//
// All functions are pure: model parameters are immutable value objects
// and every query is stack-local, so a single parameter set may be used
// concurrently without synchronization.
package density
