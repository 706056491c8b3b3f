// Package engine implements the financial projection and debt scheduling
// computations: period aggregation, debt obligations, cash-flow
// simulation, week-by-week planning and the purchase advisory scorer.
//
// Every function is pure. Records are passed in by the caller, the
// current time is always an explicit parameter, and inputs are never
// mutated. Replaying a call with the same inputs reproduces the
// identical result.
package engine
