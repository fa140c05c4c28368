// Package finance implements the financial feasibility engine for land
// audits: discounted cash-flow NPV of the state's return under an
// escalating rent schedule, return on asset, a closed-form break-even
// lease term, construction-cost benchmarking against the catalog, and
// a discount-rate sensitivity sweep.
//
// Monetary values are decimal throughout; rates are float64. Every
// operation takes a validated Params value and never mutates it, so
// concurrent use needs no synchronization. Degenerate-but-well-formed
// inputs (zero investment, cash flow that never recovers the
// investment, unknown building type) produce defined sentinel results,
// not errors.
package finance
